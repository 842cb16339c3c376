package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:generate go run . -kind Expr -out ../../internal/expr.go
//go:generate go run . -kind Stmt -out ../../internal/stmt.go

var nodes = map[string][]string{
	"Expr": {
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Get: object expr, name *token",
		"Grouping: expression expr",
		"Literal: value loxValue",
		"Logical: left expr, operator *token, right expr",
		"Set: object expr, name *token, value expr",
		"Super: keyword *token, method *token",
		"This: keyword *token",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	},
	"Stmt": {
		"Block: stmts []stmt",
		"Class: name *token, superclass *variableExpr, methods []*fnStmt",
		"Expr: expression expr",
		"Fn: name *token, params []*token, body []stmt",
		"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
		"Print: keyword *token, expression expr",
		"Return: keyword *token, value expr",
		"Var: name *token, initializer expr",
		"While: keyword *token, condition expr, body stmt",
	},
}

func main() {
	kind := flag.String("kind", "", "node family to generate: Expr or Stmt")
	out := flag.String("out", "", "output file, stdout when empty")
	flag.Parse()

	types, ok := nodes[*kind]
	if !ok {
		logrus.Fatalf("unknown node kind %q", *kind)
	}

	src, err := format.Source([]byte(generateAst(*kind, types)))
	if err != nil {
		logrus.WithError(err).Fatal("generated code does not parse")
	}

	if *out == "" {
		fmt.Print(string(src))
		return
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		logrus.WithError(err).WithField("file", *out).Fatal("cannot write generated code")
	}
}

func generateAst(baseName string, types []string) string {
	lower := strings.ToLower(baseName)
	marker := lower + "Node"

	out := "// Code generated by cmd/astgen. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Sealed base interface, only node types below implement it
	out += "type " + lower + " interface {\n"
	out += "\t" + marker + "()\n"
	out += "}\n\n"

	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, marker, structName, structFields)
	}

	return out
}

func generateType(baseName, marker, name, fields string) string {
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"

	out += "func (*" + structName + ") " + marker + "() {}\n\n"

	return out
}
