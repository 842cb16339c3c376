package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type exec struct {
	state *interpreterState

	globals *env
	env     *env

	// locals holds the binding distance of every expression the resolver
	// found in a local scope, keyed by node identity
	locals map[expr]int

	depth    int
	maxDepth int

	printer IPrinter
	log     *logrus.Entry
}

func newExec(p IPrinter, log *logrus.Entry, maxDepth int) *exec {
	globals := newEnv(nil)
	defineGlobals(globals)
	return &exec{
		globals:  globals,
		env:      globals,
		locals:   make(map[expr]int),
		maxDepth: maxDepth,
		printer:  p,
		log:      log,
	}
}

func (e *exec) markResolved(ex expr, distance int) {
	e.locals[ex] = distance
}

// resolveProgram runs the resolver over stmts and returns the errors it found
func (e *exec) resolveProgram(stmts []stmt) []diagnostic {
	before := len(e.state.errors)
	newResolver(e, e.state).resolveStmts(stmts)
	found := make([]diagnostic, len(e.state.errors)-before)
	copy(found, e.state.errors[before:])
	return found
}

// interpret executes stmts in order. The first runtime error stops the
// remaining statements and is returned, mutations done before it stay.
func (e *exec) interpret(stmts []stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			runErr, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			e.state.runtimeError = runErr
			e.env = e.globals
			e.depth = 0
			e.log.WithFields(logrus.Fields{
				"line": runErr.Line(),
				"kind": runErr.kind.Error(),
			}).Debug(runErr.Error())
			err = runErr
		}
	}()
	for _, s := range stmts {
		e.execute(s)
	}
	return nil
}

func (e *exec) execute(s stmt) {
	switch s := s.(type) {
	case *blockStmt:
		e.executeBlock(s.stmts, newEnv(e.env))
	case *classStmt:
		e.executeClass(s)
	case *exprStmt:
		e.evaluate(s.expression)
	case *fnStmt:
		e.env.define(s.name.lexeme, &loxFunction{
			declaration:   s,
			closure:       e.env,
			isInitializer: false,
		})
	case *ifStmt:
		if isTruthy(e.evaluate(s.condition)) {
			e.execute(s.thenBranch)
		} else if s.elseBranch != nil {
			e.execute(s.elseBranch)
		}
	case *printStmt:
		e.printer.Println(e.evaluate(s.expression).String())
	case *returnStmt:
		var val loxValue = loxNil{}
		if s.value != nil {
			val = e.evaluate(s.value)
		}
		panic(returnValue{value: val})
	case *varStmt:
		var val loxValue = loxNil{}
		if s.initializer != nil {
			val = e.evaluate(s.initializer)
		}
		e.env.define(s.name.lexeme, val)
	case *whileStmt:
		for isTruthy(e.evaluate(s.condition)) {
			e.execute(s.body)
		}
	default:
		panic(fmt.Sprintf("exec: unhandled statement %T", s))
	}
}

// executeBlock runs stmts inside environment and restores the previous one
// on every exit, returns and runtime errors included
func (e *exec) executeBlock(stmts []stmt, environment *env) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = environment
	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *exec) executeClass(s *classStmt) {
	e.env.define(s.name.lexeme, loxNil{})

	var superclass *loxClass
	if s.superclass != nil {
		class, ok := e.evaluate(s.superclass).(*loxClass)
		if !ok {
			e.state.runtimeErr(errSuperclassNotClass, s.superclass.name)
		}
		superclass = class

		e.env = newEnv(e.env)
		e.env.define("super", superclass)
	}

	methods := make(map[string]*loxFunction, len(s.methods))
	for _, method := range s.methods {
		methods[method.name.lexeme] = &loxFunction{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.lexeme == "init",
		}
	}

	class := &loxClass{
		name:       s.name.lexeme,
		superclass: superclass,
		methods:    methods,
	}

	if superclass != nil {
		e.env = e.env.enclosing
	}

	if err := e.env.assign(s.name, class); err != nil {
		e.fail(err)
	}
}

func (e *exec) evaluate(ex expr) loxValue {
	switch ex := ex.(type) {
	case *assignExpr:
		val := e.evaluate(ex.value)
		if distance, ok := e.locals[ex]; ok {
			e.env.assignAt(distance, ex.name.lexeme, val)
		} else if err := e.globals.assign(ex.name, val); err != nil {
			e.fail(err)
		}
		return val
	case *binaryExpr:
		return e.binary(ex)
	case *callExpr:
		return e.call(ex)
	case *getExpr:
		instance, ok := e.evaluate(ex.object).(*loxInstance)
		if !ok {
			e.state.runtimeErr(errOnlyInstancesProps, ex.name)
		}
		val, err := instance.get(ex.name)
		if err != nil {
			e.fail(err)
		}
		return val
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *literalExpr:
		return ex.value
	case *logicalExpr:
		left := e.evaluate(ex.left)
		if ex.operator.token == tkOr {
			if isTruthy(left) {
				return left
			}
		} else if !isTruthy(left) {
			return left
		}
		return e.evaluate(ex.right)
	case *setExpr:
		instance, ok := e.evaluate(ex.object).(*loxInstance)
		if !ok {
			e.state.runtimeErr(errOnlyInstancesFields, ex.name)
		}
		val := e.evaluate(ex.value)
		instance.set(ex.name, val)
		return val
	case *superExpr:
		return e.super(ex)
	case *thisExpr:
		return e.lookUpVariable(ex.keyword, ex)
	case *unaryExpr:
		return e.unary(ex)
	case *variableExpr:
		return e.lookUpVariable(ex.name, ex)
	default:
		panic(fmt.Sprintf("exec: unhandled expression %T", ex))
	}
}

// lookUpVariable reads resolved names at their exact distance, anything
// the resolver left alone is a global
func (e *exec) lookUpVariable(name *token, ex expr) loxValue {
	if distance, ok := e.locals[ex]; ok {
		return e.env.getAt(distance, name.lexeme)
	}
	val, err := e.globals.get(name)
	if err != nil {
		e.fail(err)
	}
	return val
}

func (e *exec) binary(ex *binaryExpr) loxValue {
	left := e.evaluate(ex.left)
	right := e.evaluate(ex.right)

	switch ex.operator.token {
	case tkEqualEqual:
		return loxBool(isEqual(left, right))
	case tkBangEqual:
		return loxBool(!isEqual(left, right))
	case tkPlus:
		if leftNum, ok := left.(loxNumber); ok {
			if rightNum, ok := right.(loxNumber); ok {
				return leftNum + rightNum
			}
		}
		if leftStr, ok := left.(loxString); ok {
			if rightStr, ok := right.(loxString); ok {
				return leftStr + rightStr
			}
		}
		e.operandsErr(errOperandsNumbersStrings, ex.operator, left, right)
	}

	apply, ok := numberOperators[ex.operator.token]
	if !ok {
		panic(fmt.Sprintf("exec: unknown binary operator %v", ex.operator.token))
	}
	leftNum, rightNum := e.getNums(ex, left, right)
	return apply(leftNum, rightNum)
}

func (e *exec) getNums(ex *binaryExpr, left, right loxValue) (loxNumber, loxNumber) {
	leftNum, ok := left.(loxNumber)
	if !ok {
		e.operandsErr(errOperandsNumbers, ex.operator, left, right)
	}
	rightNum, ok := right.(loxNumber)
	if !ok {
		e.operandsErr(errOperandsNumbers, ex.operator, left, right)
	}
	return leftNum, rightNum
}

func (e *exec) operandsErr(err error, operator *token, left, right loxValue) {
	e.log.WithFields(logrus.Fields{
		"operator": operator.lexeme,
		"left":     typeName(left),
		"right":    typeName(right),
	}).Debug("invalid operand types")
	e.state.runtimeErr(err, operator)
}

func (e *exec) unary(ex *unaryExpr) loxValue {
	right := e.evaluate(ex.right)
	switch ex.operator.token {
	case tkBang:
		return loxBool(!isTruthy(right))
	case tkMinus:
		valueNum, ok := right.(loxNumber)
		if !ok {
			e.state.runtimeErr(errOperandNumber, ex.operator)
		}
		return -valueNum
	}
	panic(fmt.Sprintf("exec: unknown unary operator %v", ex.operator.token))
}

func (e *exec) call(ex *callExpr) loxValue {
	callee := e.evaluate(ex.callee)

	fn, isFn := callee.(callable)
	if !isFn {
		e.state.runtimeErr(errOnlyCallable, ex.paren)
	}

	arguments := make([]loxValue, len(ex.arguments))
	for i := range ex.arguments {
		arguments[i] = e.evaluate(ex.arguments[i])
	}

	if len(arguments) != fn.arity() {
		e.state.runtimeErrf(
			errInvalidNumberArguments,
			ex.paren,
			"Expected %d arguments but got %d.",
			fn.arity(),
			len(arguments),
		)
	}

	if e.depth >= e.maxDepth {
		e.state.runtimeErr(errStackOverflow, ex.paren)
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	result, err := fn.call(e, arguments)
	if err != nil {
		var runErr *RuntimeError
		if errors.As(err, &runErr) {
			e.state.raise(runErr)
		}
		e.state.runtimeErrf(errNativeCall, ex.paren, "%s", err.Error())
	}
	return result
}

// super finds the method on the superclass captured when the class was
// declared and binds it to the "this" one scope further in
func (e *exec) super(ex *superExpr) loxValue {
	distance := e.locals[ex]
	superclass := e.env.getAt(distance, "super").(*loxClass)
	object := e.env.getAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(ex.method.lexeme)
	if method == nil {
		e.state.runtimeErrf(errUndefinedProp, ex.method, "Undefined property '%s'.", ex.method.lexeme)
	}
	return method.bind(object)
}

// fail unwinds with err, which the runtime model always builds as a *RuntimeError
func (e *exec) fail(err error) {
	var runErr *RuntimeError
	if errors.As(err, &runErr) {
		e.state.raise(runErr)
	}
	panic(err)
}
