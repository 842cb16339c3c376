package internal

// env is one lexical scope at runtime. Closures keep a pointer to the env they
// were created in, so an env lives as long as anything references it.
type env struct {
	enclosing *env
	values    map[string]loxValue
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]loxValue),
	}
}

func (e *env) get(name *token) (loxValue, error) {
	if value, ok := e.values[name.lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, newRuntimeError(errUndefinedVar, name, "Undefined variable '%s'.", name.lexeme)
}

func (e *env) define(name string, value loxValue) {
	e.values[name] = value
}

func (e *env) assign(name *token, value loxValue) error {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return newRuntimeError(errUndefinedVar, name, "Undefined variable '%s'.", name.lexeme)
}

func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
	}
	return environment
}

// getAt reads name from the scope exactly distance hops away, without searching
func (e *env) getAt(distance int, name string) loxValue {
	return e.ancestor(distance).values[name]
}

// assignAt writes name into the scope exactly distance hops away
func (e *env) assignAt(distance int, name string, value loxValue) {
	e.ancestor(distance).values[name] = value
}
