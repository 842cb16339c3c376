package internal

import "fmt"

type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFunction
}

func (*loxClass) isLoxValue() {}

// findMethod looks in the class first and then up the superclass chain,
// nil means no class in the chain has the method
func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *loxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (c *loxClass) call(exec *exec, arguments []loxValue) (loxValue, error) {
	instance := newInstance(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).call(exec, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *loxClass) String() string {
	return c.name
}

type loxInstance struct {
	class  *loxClass
	fields map[string]loxValue
}

func newInstance(class *loxClass) *loxInstance {
	return &loxInstance{
		class:  class,
		fields: make(map[string]loxValue),
	}
}

func (*loxInstance) isLoxValue() {}

// get gives fields precedence over methods, methods come back bound to o
func (o *loxInstance) get(name *token) (loxValue, error) {
	if val, ok := o.fields[name.lexeme]; ok {
		return val, nil
	}
	if method := o.class.findMethod(name.lexeme); method != nil {
		return method.bind(o), nil
	}
	return nil, newRuntimeError(errUndefinedProp, name, "Undefined property '%s'.", name.lexeme)
}

func (o *loxInstance) set(name *token, value loxValue) {
	o.fields[name.lexeme] = value
}

func (o *loxInstance) String() string {
	return fmt.Sprintf("%s instance", o.class.name)
}
