package runtime

// Environment is a mapping from variable name to Value plus a link to an
// enclosing Environment (§3). Environments form a tree whose root is the
// global environment created by New(); a new Environment is created on
// entering a block, a function call, or each foreach iteration, and is
// released on leaving — except that a closure's captured Environment
// outlives its defining scope for as long as a Function value referencing
// it is reachable (§5).
// declScope marks an Environment as a variable-declaration boundary: the
// global environment and each function call frame are declScope, while a
// plain block or a foreach iteration is not. Implicit declaration-on-
// assign (see Assign) climbs past non-declScope ancestors so that PHP-JS
// blocks, like PHP's own if/while/for bodies, do not introduce a separate
// variable scope — only functions and the global scope do (§4.3, §8).
type Environment struct {
	store     map[string]Value
	enclosing *Environment
	declScope bool
}

// New creates a fresh global environment.
func New() *Environment {
	return &Environment{store: make(map[string]Value), declScope: true}
}

// NewChild creates a block-scoped Environment enclosed by the receiver,
// used for a BlockStmt or a foreach iteration: it introduces a new lookup
// level but not a new implicit-declaration boundary.
func (e *Environment) NewChild() *Environment {
	return &Environment{store: make(map[string]Value), enclosing: e}
}

// NewCallScope creates a declaration-scoped Environment enclosed by the
// receiver, used for a function call frame.
func (e *Environment) NewCallScope() *Environment {
	return &Environment{store: make(map[string]Value), enclosing: e, declScope: true}
}

// Get walks the enclosing chain and returns the first binding of name. The
// caller is responsible for turning a missing binding into the appropriate
// "Undefined variable" or "Undefined function" diagnostic (§4.3) — the
// wording differs by what kind of name was being looked up.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in the receiver's own scope, shadowing any outer
// binding of the same name for the remainder of this scope's lifetime.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Assign walks the enclosing chain and overwrites the first binding of
// name. If no ancestor scope already binds name, it falls back to
// defining it in the nearest enclosing declaration scope — PHP-JS's
// implicit declaration-on-first-assignment rule (§4.3, §9 "Implicit
// variable declaration"), climbing past any block or foreach scopes so an
// assignment inside an `if`/`while`/`for` body lands in the same place a
// plain top-level assignment would.
func (e *Environment) Assign(name string, value Value) {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.store[name]; ok {
			env.store[name] = value
			return
		}
	}

	target := e
	for target.enclosing != nil && !target.declScope {
		target = target.enclosing
	}
	target.store[name] = value
}
