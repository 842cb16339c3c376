package internal

import (
	"testing"
)

// checkTree parses and resolves source and compares its printed tree
func checkTree(t *testing.T, source string, tree string) {
	t.Helper()
	session, tp := newTestSession(DefaultConfig())
	found, status := session.Tree(source)
	if status != StatusOK {
		t.Errorf("\nSource:\n----\n%s\n----\nUnexpected errors:\n%s", source, tp.printed)
		return
	}
	if found != tree+"\n" {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n%s\nFound:\n%s", source, tree, found)
	}
}

func TestParserPrecedence(t *testing.T) {
	checkTree(t, "print 1 + 2 * 3;", "(print (+ 1 (* 2 3)))")
	checkTree(t, "print (1 + 2) * 3;", "(print (* (group (+ 1 2)) 3))")
	checkTree(t, "print 1 - 2 - 3;", "(print (- (- 1 2) 3))")
	checkTree(t, "print -!x;", "(print (- (! x)))")
	checkTree(t, "print a or b and c;", "(print (or a (and b c)))")
	checkTree(t, "print 1 < 2 == true;", "(print (== (< 1 2) true))")
	checkTree(t, "print nil != \"s\";", "(print (!= nil \"s\"))")
	checkTree(t, "a = b = c;", "(; (= a (= b c)))")
}

func TestParserStatements(t *testing.T) {
	checkTree(t, "var x;", "(var x)")
	checkTree(t, "var x = 1.5;", "(var x 1.5)")
	checkTree(t, "if (x) print 1; else print 2;", "(if x (print 1) (print 2))")
	checkTree(t, "while (x) x = nil;", "(while x (; (= x nil)))")
	checkTree(t, "f(1, 2)(3);", "(; (call (call f 1 2) 3))")
	checkTree(t, "a.b = c.d;", "(= a.b (. c d))")
	checkTree(t, "fun f(a, b) { return; }", "(fun f (a b) (return))")
	checkTree(t, "class A { m() { return this; } }", "(class A (fun m () (return this@1)))")
	checkTree(t,
		"class B < A { m() { return super.m(); } }",
		"(class B < A (fun m () (return (call (super m@2)))))")
}

func TestParserForDesugaring(t *testing.T) {
	checkTree(t,
		"for (var i = 0; i < 3; i = i + 1) print i;",
		"(block (var i 0) (while (< i@0 3) (block (print i@1) (; (= i@1 (+ i@1 1))))))")
	checkTree(t, "for (;;) print 1;", "(while true (print 1))")
	checkTree(t, "for (x = 0; x < 1;) print x;", "(block (; (= x 0)) (while (< x 1) (print x)))")
}

func TestParserRecovery(t *testing.T) {
	session, tp := newTestSession(DefaultConfig())
	_, status := session.Tree("var = 1;\nprint 2;\nfun (;\nprint 3;")
	if status != StatusStaticError {
		t.Fatalf("Expected %s, found %s", StatusStaticError, status)
	}
	expected := "[line 1] Error at '=': Expect variable name.\n" +
		"[line 3] Error at '(': Expect function name.\n"
	if !tp.Equals(expected) {
		t.Errorf("Expected:\n%s\nFound:\n%s", expected, tp.printed)
	}
}

func TestParserLimits(t *testing.T) {
	args := "0"
	for i := 1; i < 256; i++ {
		args += ", 0"
	}
	session, tp := newTestSession(DefaultConfig())
	if _, status := session.Tree("f(" + args + ");"); status != StatusStaticError {
		t.Fatalf("Expected %s, found %s", StatusStaticError, status)
	}
	if !tp.Equals("[line 1] Error at '0': Can't have more than 255 arguments.\n") {
		t.Errorf("Unexpected diagnostics %q", tp.printed)
	}
}
