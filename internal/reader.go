package internal

import (
	"fmt"
	"strings"
)

// Tree parses and resolves source and returns it as s-expressions, one
// statement per line. Resolved names carry their scope distance as name@N.
func (s *Session) Tree(source string) (string, Status) {
	state, ok := s.analyze(source)
	if !ok {
		state.PrintErrors()
		return "", StatusStaticError
	}
	return printTree(state.stmts, s.exec.locals), StatusOK
}

func printTree(stmts []stmt, locals map[expr]int) string {
	p := treePrinter{locals: locals}
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(p.stmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

type treePrinter struct {
	locals map[expr]int
}

func (p treePrinter) stmt(s stmt) string {
	switch s := s.(type) {
	case *blockStmt:
		return p.parenthesize("block", p.stmts(s.stmts)...)
	case *classStmt:
		parts := []string{s.name.lexeme}
		if s.superclass != nil {
			parts = append(parts, "< "+p.expr(s.superclass))
		}
		for _, method := range s.methods {
			parts = append(parts, p.stmt(method))
		}
		return p.parenthesize("class", parts...)
	case *exprStmt:
		return p.parenthesize(";", p.expr(s.expression))
	case *fnStmt:
		params := make([]string, len(s.params))
		for i, param := range s.params {
			params[i] = param.lexeme
		}
		parts := append([]string{s.name.lexeme, "(" + strings.Join(params, " ") + ")"}, p.stmts(s.body)...)
		return p.parenthesize("fun", parts...)
	case *ifStmt:
		parts := []string{p.expr(s.condition), p.stmt(s.thenBranch)}
		if s.elseBranch != nil {
			parts = append(parts, p.stmt(s.elseBranch))
		}
		return p.parenthesize("if", parts...)
	case *printStmt:
		return p.parenthesize("print", p.expr(s.expression))
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return p.parenthesize("return", p.expr(s.value))
	case *varStmt:
		if s.initializer == nil {
			return p.parenthesize("var", s.name.lexeme)
		}
		return p.parenthesize("var", s.name.lexeme, p.expr(s.initializer))
	case *whileStmt:
		return p.parenthesize("while", p.expr(s.condition), p.stmt(s.body))
	}
	panic(fmt.Sprintf("printer: unhandled statement %T", s))
}

func (p treePrinter) stmts(stmts []stmt) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = p.stmt(s)
	}
	return out
}

func (p treePrinter) expr(e expr) string {
	switch e := e.(type) {
	case *assignExpr:
		return p.parenthesize("=", p.name(e, e.name.lexeme), p.expr(e.value))
	case *binaryExpr:
		return p.parenthesize(e.operator.lexeme, p.expr(e.left), p.expr(e.right))
	case *callExpr:
		parts := []string{p.expr(e.callee)}
		for _, argument := range e.arguments {
			parts = append(parts, p.expr(argument))
		}
		return p.parenthesize("call", parts...)
	case *getExpr:
		return p.parenthesize(".", p.expr(e.object), e.name.lexeme)
	case *groupingExpr:
		return p.parenthesize("group", p.expr(e.expression))
	case *literalExpr:
		if str, ok := e.value.(loxString); ok {
			return fmt.Sprintf("%q", string(str))
		}
		return e.value.String()
	case *logicalExpr:
		return p.parenthesize(e.operator.lexeme, p.expr(e.left), p.expr(e.right))
	case *setExpr:
		return p.parenthesize("=", p.expr(e.object)+"."+e.name.lexeme, p.expr(e.value))
	case *superExpr:
		return p.parenthesize("super", p.name(e, e.method.lexeme))
	case *thisExpr:
		return p.name(e, "this")
	case *unaryExpr:
		return p.parenthesize(e.operator.lexeme, p.expr(e.right))
	case *variableExpr:
		return p.name(e, e.name.lexeme)
	}
	panic(fmt.Sprintf("printer: unhandled expression %T", e))
}

// name renders a reference, with its distance when it is a local
func (p treePrinter) name(e expr, lexeme string) string {
	if distance, ok := p.locals[e]; ok {
		return fmt.Sprintf("%s@%d", lexeme, distance)
	}
	return lexeme
}

func (p treePrinter) parenthesize(name string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + name + ")"
	}
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}
