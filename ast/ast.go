// Package ast defines the expression and statement node families that make
// up the abstract syntax tree produced by the parser (§3).
//
// All nodes are immutable once constructed and carry the token(s) needed to
// report a source line on error.
package ast

import "github.com/phpjs/phpjs/token"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
	Line() int
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// ----------------------------------------------------------------------------
// Expressions

// Literal is a pre-evaluated constant: a number, string, bool, or null.
type Literal struct {
	Token token.Token
	Value interface{} // float64, string, bool, or nil
}

// Variable reads a $-prefixed variable by name.
type Variable struct {
	Name token.Token // VARIABLE
}

// Name is a bare identifier reference — the function-name form of primary
// (§4.2's `primary := ... | IDENT | ...`), used as a Call's callee.
type Name struct {
	Token token.Token // IDENTIFIER
}

// Assign assigns Value to the variable named by Name.
type Assign struct {
	Name  token.Token // VARIABLE
	Value Expr
}

// IndexAssign assigns Value to Array[Index] (§ SPEC_FULL indexing extension).
type IndexAssign struct {
	Array  Expr
	Bracket token.Token // the '[' token, for line info
	Index  Expr
	Value  Expr
}

// Unary applies a prefix operator (! or -) to Right.
type Unary struct {
	Op    token.Token
	Right Expr
}

// IncDec applies ++ or -- to the variable Target, either as prefix or
// postfix (Postfix true), yielding the PHP-conventional pre/post value.
type IncDec struct {
	Target  token.Token // VARIABLE
	Op      token.Token // PLUS_PLUS or MINUS_MINUS
	Postfix bool
}

// Binary applies a binary arithmetic/comparison/concatenation operator.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical applies short-circuiting && or ||.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized expression, kept distinct so pretty-printing
// can round-trip explicit parentheses (§8 parser idempotence property).
type Grouping struct {
	Paren token.Token // '(' token
	Inner Expr
}

// Call invokes Callee with Args. ClosingParen is retained for line info on
// arity-mismatch errors (§4.3).
type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

// Index reads Array[Idx] (SPEC_FULL indexing extension).
type Index struct {
	Array   Expr
	Bracket token.Token
	Idx     Expr
}

// ArrayLit is an array literal.
type ArrayLit struct {
	Bracket  token.Token
	Elements []Expr
}

func (*Literal) exprNode()     {}
func (*Variable) exprNode()    {}
func (*Name) exprNode()        {}
func (*Assign) exprNode()      {}
func (*IndexAssign) exprNode() {}
func (*Unary) exprNode()       {}
func (*IncDec) exprNode()      {}
func (*Binary) exprNode()      {}
func (*Logical) exprNode()     {}
func (*Grouping) exprNode()    {}
func (*Call) exprNode()        {}
func (*Index) exprNode()       {}
func (*ArrayLit) exprNode()    {}

func (e *Literal) Line() int     { return e.Token.Line }
func (e *Variable) Line() int    { return e.Name.Line }
func (e *Name) Line() int        { return e.Token.Line }
func (e *Assign) Line() int      { return e.Name.Line }
func (e *IndexAssign) Line() int { return e.Bracket.Line }
func (e *Unary) Line() int       { return e.Op.Line }
func (e *IncDec) Line() int      { return e.Op.Line }
func (e *Binary) Line() int      { return e.Op.Line }
func (e *Logical) Line() int     { return e.Op.Line }
func (e *Grouping) Line() int    { return e.Paren.Line }
func (e *Call) Line() int        { return e.ClosingParen.Line }
func (e *Index) Line() int       { return e.Bracket.Line }
func (e *ArrayLit) Line() int    { return e.Bracket.Line }
