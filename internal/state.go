package internal

import (
	"errors"
	"fmt"
	"os"
)

type diagnosticKind int

const (
	lexDiagnostic diagnosticKind = iota
	parseDiagnostic
	resolveDiagnostic
)

func (k diagnosticKind) String() string {
	switch k {
	case lexDiagnostic:
		return "lex"
	case parseDiagnostic:
		return "parse"
	case resolveDiagnostic:
		return "resolve"
	}
	return "unknown"
}

// diagnostic is a static error found before evaluation starts
type diagnostic struct {
	kind  diagnosticKind
	err   error
	line  int
	where string
}

func (d diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.line, d.where, d.err)
}

// interpreterState stores the state of a single run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors       []diagnostic
	runtimeError *RuntimeError

	logger IPrinter
}

func newInterpreterState(source string, p IPrinter) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]diagnostic, 0),
		logger: p,
	}
}

func (s *interpreterState) setError(kind diagnosticKind, err error, line int, where string) {
	s.errors = append(s.errors, diagnostic{
		kind:  kind,
		err:   err,
		line:  line,
		where: where,
	})
}

// tokenError records err at the position of tk
func (s *interpreterState) tokenError(kind diagnosticKind, err error, tk *token) {
	if tk.token == tkEOF {
		s.setError(kind, err, tk.line, " at end")
		return
	}
	s.setError(kind, err, tk.line, fmt.Sprintf(" at '%s'", tk.lexeme))
}

// runtimeErr aborts evaluation with a runtime error located at tk
func (s *interpreterState) runtimeErr(err error, tk *token) {
	panic(&RuntimeError{token: tk, kind: err, message: err.Error()})
}

// raise aborts evaluation with an already built runtime error
func (s *interpreterState) raise(err *RuntimeError) {
	panic(err)
}

// runtimeErrf aborts evaluation with a formatted message, keeping err as its kind
func (s *interpreterState) runtimeErrf(err error, tk *token, format string, args ...interface{}) {
	panic(newRuntimeError(err, tk, format, args...))
}

// Valid returns true if no static errors were found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints every collected error, returns true if there was any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, e.String())
	}
	if s.runtimeError != nil {
		s.logger.Fprintf(os.Stderr, "%s\n[line %d]\n", s.runtimeError.Error(), s.runtimeError.Line())
	}
	return len(s.errors) != 0 || s.runtimeError != nil
}

// RuntimeError is an error raised while evaluating a program
type RuntimeError struct {
	token   *token
	kind    error
	message string
}

func newRuntimeError(kind error, tk *token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{token: tk, kind: kind, message: fmt.Sprintf(format, args...)}
}

func (r *RuntimeError) Error() string {
	return r.message
}

func (r *RuntimeError) Unwrap() error {
	return r.kind
}

// Line returns the source line of the token that failed
func (r *RuntimeError) Line() int {
	return r.token.line
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnclosedString = errors.New("Unterminated string.")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedArguments = errors.New("Expect ')' after arguments.")
var errUnclosedParams = errors.New("Expect ')' after parameters.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errExpectedSemicolon = errors.New("Expect ';' after statement.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedFunctionName = errors.New("Expect function name.")
var errExpectedParamName = errors.New("Expect parameter name.")
var errExpectedClassName = errors.New("Expect class name.")
var errExpectedSuperclassName = errors.New("Expect superclass name.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errExpectedDot = errors.New("Expect '.' after 'super'.")
var errExpectedOpeningParen = errors.New("Expect '(' here.")
var errExpectedOpeningBrace = errors.New("Expect '{' here.")
var errInvalidAssignTarget = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")

// Resolver errors
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errReadInInitializer = errors.New("Can't read local variable in its own initializer.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errSelfInheritance = errors.New("A class can't inherit from itself.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable.")
var errUndefinedProp = errors.New("Undefined property.")
var errOperandNumber = errors.New("Operand must be a number.")
var errOperandsNumbers = errors.New("Operands must be numbers.")
var errOperandsNumbersStrings = errors.New("Operands must be two numbers or two strings.")
var errOnlyCallable = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Wrong number of arguments.")
var errOnlyInstancesProps = errors.New("Only instances have properties.")
var errOnlyInstancesFields = errors.New("Only instances have fields.")
var errSuperclassNotClass = errors.New("Superclass must be a class.")
var errStackOverflow = errors.New("Stack overflow.")
var errNativeCall = errors.New("Native function failed.")
