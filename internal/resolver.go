package internal

import "fmt"

type functionKind uint8

const (
	kindNoFunction functionKind = iota
	kindFunction
	kindInitializer
	kindMethod
)

func (f functionKind) String() string {
	switch f {
	case kindNoFunction:
		return "<script>"
	case kindFunction:
		return "function"
	case kindInitializer:
		return "initializer"
	case kindMethod:
		return "method"
	}
	return fmt.Sprintf("functionKind(%d)", uint8(f))
}

type classKind uint8

const (
	kindNoClass classKind = iota
	kindClass
	kindSubclass
)

// scope maps a name to whether its initializer has finished resolving
type scope map[string]bool

// resolver computes, for every local variable reference, how many scopes
// separate it from its declaration. It runs once over a program before
// evaluation and never produces values.
type resolver struct {
	exec   *exec
	state  *interpreterState
	scopes []scope

	currentFunction functionKind
	currentClass    classKind
}

func newResolver(exec *exec, state *interpreterState) *resolver {
	return &resolver{
		exec:            exec,
		state:           state,
		scopes:          make([]scope, 0),
		currentFunction: kindNoFunction,
		currentClass:    kindNoClass,
	}
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	switch s := s.(type) {
	case *blockStmt:
		r.beginScope()
		r.resolveStmts(s.stmts)
		r.endScope()
	case *classStmt:
		r.resolveClass(s)
	case *exprStmt:
		r.resolveExpr(s.expression)
	case *fnStmt:
		r.declare(s.name)
		r.define(s.name)
		r.resolveFunction(s, kindFunction)
	case *ifStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.thenBranch)
		if s.elseBranch != nil {
			r.resolveStmt(s.elseBranch)
		}
	case *printStmt:
		r.resolveExpr(s.expression)
	case *returnStmt:
		if r.currentFunction == kindNoFunction {
			r.error(errTopLevelReturn, s.keyword)
		}
		if s.value != nil {
			if r.currentFunction == kindInitializer {
				r.error(errInitializerReturn, s.keyword)
			}
			r.resolveExpr(s.value)
		}
	case *varStmt:
		r.declare(s.name)
		if s.initializer != nil {
			r.resolveExpr(s.initializer)
		}
		r.define(s.name)
	case *whileStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.body)
	default:
		panic(fmt.Sprintf("resolver: unhandled statement %T", s))
	}
}

func (r *resolver) resolveClass(s *classStmt) {
	enclosingClass := r.currentClass
	r.currentClass = kindClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.error(errSelfInheritance, s.superclass.name)
		}
		r.currentClass = kindSubclass
		r.resolveExpr(s.superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range s.methods {
		declaration := kindMethod
		if method.name.lexeme == "init" {
			declaration = kindInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()

	if s.superclass != nil {
		r.endScope()
	}
}

func (r *resolver) resolveFunction(fn *fnStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() {
		r.currentFunction = enclosingFunction
	}()

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.body)
	r.endScope()
}

func (r *resolver) resolveExpr(e expr) {
	switch e := e.(type) {
	case *assignExpr:
		r.resolveExpr(e.value)
		r.resolveLocal(e, e.name)
	case *binaryExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *callExpr:
		r.resolveExpr(e.callee)
		for _, argument := range e.arguments {
			r.resolveExpr(argument)
		}
	case *getExpr:
		r.resolveExpr(e.object)
	case *groupingExpr:
		r.resolveExpr(e.expression)
	case *literalExpr:
	case *logicalExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *setExpr:
		r.resolveExpr(e.value)
		r.resolveExpr(e.object)
	case *superExpr:
		if r.currentClass == kindNoClass {
			r.error(errSuperOutsideClass, e.keyword)
		} else if r.currentClass != kindSubclass {
			r.error(errSuperWithoutSuperclass, e.keyword)
		}
		r.resolveLocal(e, e.keyword)
	case *thisExpr:
		if r.currentClass == kindNoClass {
			r.error(errThisOutsideClass, e.keyword)
			return
		}
		r.resolveLocal(e, e.keyword)
	case *unaryExpr:
		r.resolveExpr(e.right)
	case *variableExpr:
		if len(r.scopes) != 0 {
			if defined, declared := r.peekScope()[e.name.lexeme]; declared && !defined {
				r.error(errReadInInitializer, e.name)
			}
		}
		r.resolveLocal(e, e.name)
	default:
		panic(fmt.Sprintf("resolver: unhandled expression %T", e))
	}
}

// resolveLocal records the distance to the innermost scope declaring name.
// Names found in no scope are left for the globals at runtime.
func (r *resolver) resolveLocal(e expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.exec.markResolved(e, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(scope))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peekScope() scope {
	return r.scopes[len(r.scopes)-1]
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.peekScope()
	if _, ok := s[name.lexeme]; ok {
		r.error(errAlreadyDeclared, name)
	}
	s[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.lexeme] = true
}

func (r *resolver) error(err error, tk *token) {
	r.state.tokenError(resolveDiagnostic, err, tk)
}
