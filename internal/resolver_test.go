package internal

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestExec(source string) (*exec, *interpreterState) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	state := scanSource(source)
	parser := &parser{state: state}
	parser.parse()

	e := newExec(state.logger, logrus.NewEntry(logger), defaultMaxCallDepth)
	e.state = state
	return e, state
}

func TestResolverIdempotence(t *testing.T) {
	source := `
var g = 1;
fun outer(a) {
	var b = a;
	fun inner() {
		return a + b + g;
	}
	{
		var c = inner();
		b = c;
	}
	return inner;
}
class A < Base {
	init() { this.x = 1; }
	m() { return super.m() + this.x; }
}
`
	e, state := newTestExec(source)
	if diagnostics := e.resolveProgram(state.stmts); len(diagnostics) != 0 {
		t.Fatalf("Unexpected diagnostics %v", diagnostics)
	}

	first := make(map[expr]int, len(e.locals))
	for k, v := range e.locals {
		first[k] = v
	}
	if len(first) == 0 {
		t.Fatal("Expected locals to be recorded")
	}

	e.locals = make(map[expr]int)
	if diagnostics := e.resolveProgram(state.stmts); len(diagnostics) != 0 {
		t.Fatalf("Unexpected diagnostics %v", diagnostics)
	}

	if len(first) != len(e.locals) {
		t.Fatalf("Expected %d locals, found %d", len(first), len(e.locals))
	}
	for k, v := range first {
		if found, ok := e.locals[k]; !ok || found != v {
			t.Errorf("Distance changed for %T: %d != %d", k, v, found)
		}
	}
}

func TestResolverGlobalsAreNotRecorded(t *testing.T) {
	e, state := newTestExec("var a = 1; print a; a = 2;")
	e.resolveProgram(state.stmts)
	if len(e.locals) != 0 {
		t.Errorf("Expected no locals for globals, found %d", len(e.locals))
	}
}

func TestResolverDistances(t *testing.T) {
	e, state := newTestExec(`
{
	var a = 1;
	{
		var b = a;
		{
			print a + b;
		}
	}
}
`)
	e.resolveProgram(state.stmts)

	distances := map[string][]int{}
	var walk func(s stmt)
	var visit func(ex expr)
	visit = func(ex expr) {
		switch ex := ex.(type) {
		case *variableExpr:
			distances[ex.name.lexeme] = append(distances[ex.name.lexeme], e.locals[ex])
		case *binaryExpr:
			visit(ex.left)
			visit(ex.right)
		}
	}
	walk = func(s stmt) {
		switch s := s.(type) {
		case *blockStmt:
			for _, inner := range s.stmts {
				walk(inner)
			}
		case *varStmt:
			visit(s.initializer)
		case *printStmt:
			visit(s.expression)
		}
	}
	for _, s := range state.stmts {
		walk(s)
	}

	// a is read one scope away by b's initializer and two away by print
	if got := distances["a"]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Unexpected distances for a: %v", got)
	}
	if got := distances["b"]; len(got) != 1 || got[0] != 1 {
		t.Errorf("Unexpected distances for b: %v", got)
	}
}

func TestResolverContextRestored(t *testing.T) {
	// The class context ends with the class body, so this is rejected after it
	e, state := newTestExec("class A { m() { return this; } }\nfun f() { return this; }")
	diagnostics := e.resolveProgram(state.stmts)
	if len(diagnostics) != 1 {
		t.Fatalf("Expected one diagnostic, found %v", diagnostics)
	}
	if diagnostics[0].line != 2 || diagnostics[0].kind != resolveDiagnostic {
		t.Errorf("Unexpected diagnostic %v", diagnostics[0])
	}
}
