package internal

import "fmt"

type callable interface {
	loxValue
	arity() int
	call(exec *exec, arguments []loxValue) (loxValue, error)
}

// returnValue is the panic payload of a return statement, it never escapes a call
type returnValue struct {
	value loxValue
}

type loxFunction struct {
	declaration   *fnStmt
	closure       *env
	isInitializer bool
}

func (*loxFunction) isLoxValue() {}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

func (f *loxFunction) call(exec *exec, arguments []loxValue) (result loxValue, err error) {
	environment := newEnv(f.closure)
	for i := range f.declaration.params {
		environment.define(f.declaration.params[i].lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			returnVal, isReturn := r.(returnValue)
			if !isReturn {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.getAt(0, "this")
				return
			}
			result = returnVal.value
		}
	}()

	exec.executeBlock(f.declaration.body, environment)

	if f.isInitializer {
		return f.closure.getAt(0, "this"), nil
	}
	return loxNil{}, nil
}

// bind returns a copy of f whose closure defines "this" as instance
func (f *loxFunction) bind(instance *loxInstance) *loxFunction {
	environment := newEnv(f.closure)
	environment.define("this", instance)
	return &loxFunction{
		declaration:   f.declaration,
		closure:       environment,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

// nativeFn is a callable implemented in Go
type nativeFn struct {
	name       string
	arityValue int
	callFn     func(arguments []loxValue) (loxValue, error)
}

func (*nativeFn) isLoxValue() {}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []loxValue) (loxValue, error) {
	return n.callFn(arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}
