// Package interp walks the AST in source order, maintaining a lexically
// scoped Environment and an output buffer (§4.3). Control flow that must
// unwind exactly one function-call frame (a `return`) is threaded through
// exec as an explicit result value rather than a native panic/exception,
// per §9's "non-local return" design note.
package interp

import (
	"strconv"
	"strings"

	"github.com/phpjs/phpjs/ast"
	"github.com/phpjs/phpjs/runtime"
	"github.com/phpjs/phpjs/token"
)

// flow is the control-flow result of executing one statement: either
// Normal (the zero value) or Returning, carrying the value and the source
// line of the `return` that produced it (needed if it escapes every call
// frame — see errTopLevelReturn).
type flow struct {
	returning bool
	value     runtime.Value
	line      int
}

// Interpreter executes a parsed program and accumulates echoed output.
type Interpreter struct {
	globals  *runtime.Environment
	env      *runtime.Environment
	output   strings.Builder
	steps    int
	maxSteps int // 0 means unlimited
}

// New creates an Interpreter with its global environment seeded with the
// built-in function table (§4.4).
func New() *Interpreter {
	i := &Interpreter{globals: runtime.New()}
	i.env = i.globals
	i.registerBuiltins()
	return i
}

// SetMaxSteps bounds the number of statements Interpret will execute
// before failing with a runtime error, guarding the REPL and CLI against
// a runaway loop (`internal/config`'s max-steps setting). Zero, the
// default, means unlimited.
func (i *Interpreter) SetMaxSteps(n int) {
	i.maxSteps = n
}

// Interpret executes stmts in order, returning the accumulated output. On
// any runtime error it appends "Runtime Error: <message>" and stops (§4.3,
// §7); a `return` that escapes every call frame is itself such an error
// (SPEC_FULL open-question decision #2).
func (i *Interpreter) Interpret(stmts []ast.Stmt) string {
	i.steps = 0
	for _, stmt := range stmts {
		fl, err := i.exec(stmt)
		if err == nil && fl.returning {
			err = errTopLevelReturn(fl.line)
		}
		if err != nil {
			i.output.WriteString("Runtime Error: " + err.Error())
			break
		}
	}
	return i.output.String()
}

// ----------------------------------------------------------------------------
// Statements

func (i *Interpreter) exec(stmt ast.Stmt) (flow, error) {
	i.steps++
	if i.maxSteps > 0 && i.steps > i.maxSteps {
		return flow{}, errMaxStepsExceeded(i.maxSteps)
	}

	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.eval(s.Expr)
		return flow{}, err

	case *ast.VarStmt:
		value := runtime.Value(runtime.NullValue)
		if s.Initializer != nil {
			v, err := i.eval(s.Initializer)
			if err != nil {
				return flow{}, err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return flow{}, nil

	case *ast.EchoStmt:
		v, err := i.eval(s.Expr)
		if err != nil {
			return flow{}, err
		}
		i.output.WriteString(v.ToString())
		return flow{}, nil

	case *ast.ReturnStmt:
		value := runtime.Value(runtime.NullValue)
		if s.Value != nil {
			v, err := i.eval(s.Value)
			if err != nil {
				return flow{}, err
			}
			value = v
		}
		return flow{returning: true, value: value, line: s.Keyword.Line}, nil

	case *ast.IfStmt:
		cond, err := i.eval(s.Cond)
		if err != nil {
			return flow{}, err
		}
		if cond.ToBool() {
			return i.exec(s.Then)
		}
		if s.Else != nil {
			return i.exec(s.Else)
		}
		return flow{}, nil

	case *ast.WhileStmt:
		for {
			cond, err := i.eval(s.Cond)
			if err != nil {
				return flow{}, err
			}
			if !cond.ToBool() {
				return flow{}, nil
			}
			fl, err := i.exec(s.Body)
			if err != nil || fl.returning {
				return fl, err
			}
		}

	case *ast.ForeachStmt:
		return i.execForeach(s)

	case *ast.FunctionStmt:
		params := make([]string, len(s.Params))
		for idx, p := range s.Params {
			params[idx] = p.Lexeme
		}
		i.env.Define(s.Name.Lexeme, &runtime.Function{
			Name:    s.Name.Lexeme,
			Params:  params,
			Body:    s.Body,
			Closure: i.env,
		})
		return flow{}, nil

	case *ast.BlockStmt:
		return i.execBlock(s.Stmts, i.env.NewChild())
	}

	return flow{}, nil
}

func (i *Interpreter) execBlock(stmts []ast.Stmt, env *runtime.Environment) (flow, error) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		fl, err := i.exec(stmt)
		if err != nil || fl.returning {
			return fl, err
		}
	}
	return flow{}, nil
}

func (i *Interpreter) execForeach(s *ast.ForeachStmt) (flow, error) {
	arrValue, err := i.eval(s.Array)
	if err != nil {
		return flow{}, err
	}
	arr, ok := arrValue.(*runtime.Array)
	if !ok {
		return flow{}, errForeachNotArray(arrValue.Type(), s.ItemName.Line)
	}

	for _, elem := range arr.Elements {
		child := i.env.NewChild()
		child.Define(s.ItemName.Lexeme, elem)
		fl, err := i.execBlock([]ast.Stmt{s.Body}, child)
		if err != nil || fl.returning {
			return fl, err
		}
	}
	return flow{}, nil
}

// ----------------------------------------------------------------------------
// Expressions

func (i *Interpreter) eval(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Variable:
		if v, ok := i.env.Get(e.Name.Lexeme); ok {
			return v, nil
		}
		return nil, errUndefinedVariable(e.Name.Lexeme, e.Name.Line)

	case *ast.Name:
		if v, ok := i.env.Get(e.Token.Lexeme); ok {
			return v, nil
		}
		return nil, errUndefinedFunction(e.Token.Lexeme, e.Token.Line)

	case *ast.Assign:
		v, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		i.env.Assign(e.Name.Lexeme, v)
		return v, nil

	case *ast.IndexAssign:
		return i.evalIndexAssign(e)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.IncDec:
		return i.evalIncDec(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Grouping:
		return i.eval(e.Inner)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Index:
		return i.evalIndex(e)

	case *ast.ArrayLit:
		elements := make([]runtime.Value, len(e.Elements))
		for idx, el := range e.Elements {
			v, err := i.eval(el)
			if err != nil {
				return nil, err
			}
			elements[idx] = v
		}
		return runtime.NewArray(elements), nil
	}

	return runtime.NullValue, nil
}

func literalValue(v interface{}) runtime.Value {
	switch t := v.(type) {
	case nil:
		return runtime.NullValue
	case bool:
		return runtime.Bool{Value: t}
	case float64:
		return runtime.Number{Value: t}
	case string:
		return runtime.String{Value: t}
	default:
		return runtime.NullValue
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (runtime.Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.BANG:
		return runtime.Bool{Value: !right.ToBool()}, nil
	case token.MINUS:
		return runtime.Number{Value: -right.ToNumber()}, nil
	}
	return runtime.NullValue, nil
}

func (i *Interpreter) evalIncDec(e *ast.IncDec) (runtime.Value, error) {
	old := runtime.Value(runtime.Number{Value: 0})
	if v, ok := i.env.Get(e.Target.Lexeme); ok {
		old = v
	}
	delta := 1.0
	if e.Op.Kind == token.MINUS_MINUS {
		delta = -1.0
	}
	updated := runtime.Number{Value: old.ToNumber() + delta}
	i.env.Assign(e.Target.Lexeme, updated)
	if e.Postfix {
		return runtime.Number{Value: old.ToNumber()}, nil
	}
	return updated, nil
}

func (i *Interpreter) evalLogical(e *ast.Logical) (runtime.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.OR:
		if left.ToBool() {
			return left, nil
		}
		return i.eval(e.Right)
	case token.AND:
		if !left.ToBool() {
			return left, nil
		}
		return i.eval(e.Right)
	}
	return runtime.NullValue, nil
}

func (i *Interpreter) evalBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		ln, lok := left.(runtime.Number)
		rn, rok := right.(runtime.Number)
		if lok && rok {
			return runtime.Number{Value: ln.Value + rn.Value}, nil
		}
		return runtime.String{Value: left.ToString() + right.ToString()}, nil
	case token.DOT:
		return runtime.String{Value: left.ToString() + right.ToString()}, nil
	case token.MINUS:
		return runtime.Number{Value: left.ToNumber() - right.ToNumber()}, nil
	case token.STAR:
		return runtime.Number{Value: left.ToNumber() * right.ToNumber()}, nil
	case token.SLASH:
		return runtime.Number{Value: left.ToNumber() / right.ToNumber()}, nil
	case token.PERCENT:
		return runtime.Number{Value: mod(left.ToNumber(), right.ToNumber())}, nil
	case token.STAR_STAR:
		return runtime.Number{Value: pow(left.ToNumber(), right.ToNumber())}, nil
	case token.LESS:
		return runtime.Bool{Value: left.ToNumber() < right.ToNumber()}, nil
	case token.LESS_EQUAL:
		return runtime.Bool{Value: left.ToNumber() <= right.ToNumber()}, nil
	case token.GREATER:
		return runtime.Bool{Value: left.ToNumber() > right.ToNumber()}, nil
	case token.GREATER_EQUAL:
		return runtime.Bool{Value: left.ToNumber() >= right.ToNumber()}, nil
	case token.EQUAL_EQUAL:
		return runtime.Bool{Value: looseEqual(left, right)}, nil
	case token.BANG_EQUAL:
		return runtime.Bool{Value: !looseEqual(left, right)}, nil
	case token.EQUAL_EQUAL_EQUAL:
		return runtime.Bool{Value: strictEqual(left, right)}, nil
	case token.BANG_EQUAL_EQUAL:
		return runtime.Bool{Value: !strictEqual(left, right)}, nil
	}
	return runtime.NullValue, nil
}

func (i *Interpreter) evalIndex(e *ast.Index) (runtime.Value, error) {
	arrValue, err := i.eval(e.Array)
	if err != nil {
		return nil, err
	}
	arr, ok := arrValue.(*runtime.Array)
	if !ok {
		return nil, &runtimeError{message: notArrayMessage(arrValue.Type(), e.Bracket.Line)}
	}
	idxValue, err := i.eval(e.Idx)
	if err != nil {
		return nil, err
	}
	return arr.Get(int(idxValue.ToNumber())), nil
}

func (i *Interpreter) evalIndexAssign(e *ast.IndexAssign) (runtime.Value, error) {
	arrValue, err := i.eval(e.Array)
	if err != nil {
		return nil, err
	}
	arr, ok := arrValue.(*runtime.Array)
	if !ok {
		return nil, &runtimeError{message: notArrayMessage(arrValue.Type(), e.Bracket.Line)}
	}
	idxValue, err := i.eval(e.Index)
	if err != nil {
		return nil, err
	}
	val, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	arr.Set(int(idxValue.ToNumber()), val)
	return val, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	var callee runtime.Value
	if name, ok := e.Callee.(*ast.Name); ok {
		v, found := i.env.Get(name.Token.Lexeme)
		if !found {
			return nil, errUndefinedFunction(name.Token.Lexeme, name.Token.Line)
		}
		callee = v
	} else {
		v, err := i.eval(e.Callee)
		if err != nil {
			return nil, err
		}
		callee = v
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, errNotCallable(e.ClosingParen.Line)
	}

	args := make([]runtime.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if len(args) != callable.Arity() {
		return nil, errArity(callable.Arity(), len(args), e.ClosingParen.Line)
	}

	switch fn := callable.(type) {
	case *runtime.Function:
		return i.callFunction(fn, args)
	case *runtime.Builtin:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, &runtimeError{message: err.Error()}
		}
		return v, nil
	}
	return nil, errNotCallable(e.ClosingParen.Line)
}

// callFunction creates a child of the function's captured environment —
// not the caller's — binds parameters positionally, executes the body,
// and restores the previous current environment on exit (§4.3).
func (i *Interpreter) callFunction(fn *runtime.Function, args []runtime.Value) (runtime.Value, error) {
	callEnv := fn.Closure.NewCallScope()
	for idx, param := range fn.Params {
		callEnv.Define(param, args[idx])
	}

	previous := i.env
	i.env = callEnv
	defer func() { i.env = previous }()

	for _, stmt := range fn.Body {
		fl, err := i.exec(stmt)
		if err != nil {
			return nil, err
		}
		if fl.returning {
			return fl.value, nil
		}
	}
	return runtime.NullValue, nil
}

func notArrayMessage(kind string, line int) string {
	return "Cannot index non-array value of type " + kind + " at line " + strconv.Itoa(line)
}
