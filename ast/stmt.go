package ast

import "github.com/phpjs/phpjs/token"

// ----------------------------------------------------------------------------
// Statements

// ExpressionStmt evaluates Expr for its side effects.
type ExpressionStmt struct {
	Expr Expr
}

// VarStmt declares a variable via var/let/const, with an optional initializer.
type VarStmt struct {
	Name        token.Token // VARIABLE
	Initializer Expr        // nil if absent
}

// EchoStmt evaluates Expr and appends its stringified form to the output.
type EchoStmt struct {
	Expr Expr
}

// ReturnStmt unwinds the current call frame carrying Value (nil means null).
type ReturnStmt struct {
	Keyword token.Token // RETURN, for line info
	Value   Expr
}

// IfStmt is an if/elseif/else. Else is nil when absent; an elseif chain is
// represented by nesting another *IfStmt as Else.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// ForeachStmt iterates an array expression, binding each element to ItemName.
type ForeachStmt struct {
	Array    Expr
	ItemName token.Token // VARIABLE
	Body     Stmt
}

// FunctionStmt declares a named function.
type FunctionStmt struct {
	Name   token.Token   // IDENTIFIER
	Params []token.Token // VARIABLE tokens (§3 invariant)
	Body   []Stmt
}

// BlockStmt is a brace-delimited sequence of statements introducing a new
// lexical scope (§4.3).
type BlockStmt struct {
	Stmts []Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*VarStmt) stmtNode()        {}
func (*EchoStmt) stmtNode()       {}
func (*ReturnStmt) stmtNode()     {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*ForeachStmt) stmtNode()    {}
func (*FunctionStmt) stmtNode()   {}
func (*BlockStmt) stmtNode()      {}
