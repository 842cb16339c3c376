package internal

import (
	"errors"
	"testing"
)

func scanSource(source string) *interpreterState {
	state := newInterpreterState(source, &testPrinter{})
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	return state
}

func TestLexer(t *testing.T) {
	state := scanSource("var x = 1.5; // ignored ( ] @\nprint \"two\nlines\" >= x != nil;")
	if !state.Valid() {
		t.Fatalf("Unexpected errors %v", state.errors)
	}

	expected := []struct {
		tk   tokenType
		line int
	}{
		{tkVar, 1},
		{tkIdentifier, 1},
		{tkEqual, 1},
		{tkNumber, 1},
		{tkSemicolon, 1},
		{tkPrint, 2},
		{tkString, 3},
		{tkGreaterEqual, 3},
		{tkIdentifier, 3},
		{tkBangEqual, 3},
		{tkNil, 3},
		{tkSemicolon, 3},
		{tkEOF, 3},
	}
	if len(state.tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, found %d: %v", len(expected), len(state.tokens), state.tokens)
	}
	for i, e := range expected {
		tk := state.tokens[i]
		if tk.token != e.tk || tk.line != e.line {
			t.Errorf("Token %d: expected %v on line %d, found %v on line %d", i, e.tk, e.line, tk.token, tk.line)
		}
	}

	if n, ok := state.tokens[3].literal.(loxNumber); !ok || n != 1.5 {
		t.Errorf("Expected number literal 1.5, found %v", state.tokens[3].literal)
	}
	if s, ok := state.tokens[6].literal.(loxString); !ok || s != "two\nlines" {
		t.Errorf("Expected string literal without quotes, found %v", state.tokens[6].literal)
	}
}

func TestLexerKeywords(t *testing.T) {
	state := scanSource("and class else false for fun if nil or print return super this true var while orchid")
	expected := []tokenType{
		tkAnd, tkClass, tkElse, tkFalse, tkFor, tkFun, tkIf, tkNil, tkOr,
		tkPrint, tkReturn, tkSuper, tkThis, tkTrue, tkVar, tkWhile, tkIdentifier, tkEOF,
	}
	for i, tk := range expected {
		if state.tokens[i].token != tk {
			t.Errorf("Token %d: expected %v, found %v", i, tk, state.tokens[i].token)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	state := scanSource("var a = 1;\n#\n\"open")
	if len(state.errors) != 2 {
		t.Fatalf("Expected 2 errors, found %v", state.errors)
	}
	if !errors.Is(state.errors[0].err, errUnexpectedChar) || state.errors[0].line != 2 {
		t.Errorf("Expected unexpected character on line 2, found %v", state.errors[0])
	}
	if !errors.Is(state.errors[1].err, errUnclosedString) || state.errors[1].line != 3 {
		t.Errorf("Expected unterminated string on line 3, found %v", state.errors[1])
	}
	if state.errors[0].String() != "[line 2] Error: Unexpected character." {
		t.Errorf("Unexpected diagnostic %q", state.errors[0].String())
	}
}
