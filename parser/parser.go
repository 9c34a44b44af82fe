// Package parser implements the recursive-descent parser described in
// §4.2: a fixed-precedence expression grammar (assignment down to primary)
// plus a small statement grammar, with panic-mode error recovery so one
// malformed declaration never stops the rest of the program from parsing.
package parser

import (
	"github.com/phpjs/phpjs/ast"
	"github.com/phpjs/phpjs/token"
)

// Parser consumes a flat token sequence (typically lexer.ScanAll's output)
// and produces an ordered sequence of top-level statements.
type Parser struct {
	tokens  []token.Token
	current int
	Errors  []*ParseError
}

// New constructs a Parser over tokens, which must end with an EOF token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a full program: program := declaration* (§4.2).
func Parse(tokens []token.Token) ([]ast.Stmt, []*ParseError) {
	p := New(tokens)
	return p.parseProgram(), p.Errors
}

func (p *Parser) parseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if p.check(token.RIGHT_BRACE) {
			// A stray '}' with no enclosing block to close it; blockStmts
			// consumes its own closing brace, so one seen here belongs to
			// nothing. Skip it rather than loop forever re-failing on it.
			p.advance()
			continue
		}
		if stmt := p.declarationRecover(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// declarationRecover runs declaration() and, on a parse error, records the
// diagnostic and synchronizes to the next declaration boundary (§7).
func (p *Parser) declarationRecover() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			p.Errors = append(p.Errors, pe.err)
			p.synchronize()
			stmt = nil
		}
	}()
	return p.declaration()
}

func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previousKind() == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.FUNCTION, token.VAR, token.FOR, token.IF, token.WHILE, token.ECHO, token.RETURN:
			return
		case token.RIGHT_BRACE:
			// Leave the brace in place for the enclosing block to consume
			// as its own close, rather than swallowing it here.
			return
		}
		p.advance()
	}
}

// ----------------------------------------------------------------------------
// Token-stream helpers

func (p *Parser) peek() token.Token  { return p.tokens[p.current] }
func (p *Parser) isAtEnd() bool      { return p.peek().Kind == token.EOF }
func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}
func (p *Parser) previousKind() token.Kind {
	if p.current == 0 {
		return token.ILLEGAL
	}
	return p.previous().Kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.peek().Line, message)
	panic("unreachable")
}

// ----------------------------------------------------------------------------
// Expression grammar (§4.2), precedence low → high:
//   expression := assignment
//   assignment := logicOr ( ('='|'+='|'-='|'*='|'/='|'%='|'.=') assignment )?  // right-assoc
//   logicOr    := logicAnd ( '||' logicAnd )*
//   logicAnd   := equality ( '&&' equality )*
//   equality   := comparison ( ('!='|'=='|'!=='|'===') comparison )*
//   comparison := term ( ('<'|'<='|'>'|'>=') term )*
//   term       := factor ( ('+'|'-'|'.') factor )*
//   factor     := unary ( ('*'|'/'|'%') unary )*
//   unary      := ('!'|'-') unary | ('++'|'--') VARIABLE | call
//   call       := primary ( '(' args? ')' | '[' expr ']' | '++' | '--' )*
//   primary    := 'true' | 'false' | 'null' | NUMBER | STRING
//               | VARIABLE | IDENT | '[' elems? ']' | '(' expression ')'

func (p *Parser) parseExpression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL,
		token.SLASH_EQUAL, token.PERCENT_EQUAL, token.DOT_EQUAL) {
		op := p.previous()
		value := p.assignment() // right-associative

		// Compound assignment desugars to `target = target OP value`
		// (SPEC_FULL supplemental feature); plain '=' assigns directly.
		if op.Kind != token.EQUAL {
			binOp := compoundToBinaryOp(op)
			value = &ast.Binary{Left: expr, Op: binOp, Right: value}
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Index:
			return &ast.IndexAssign{Array: target.Array, Bracket: target.Bracket, Index: target.Idx, Value: value}
		default:
			p.fail(op.Line, "Invalid assignment target")
		}
	}

	return expr
}

// compoundToBinaryOp maps a compound-assignment token to the binary
// operator it desugars through (e.g. += -> +). '.=' maps to DOT, which the
// interpreter's concatenation rule already handles (§4.3).
func compoundToBinaryOp(op token.Token) token.Token {
	kind := map[token.Kind]token.Kind{
		token.PLUS_EQUAL:    token.PLUS,
		token.MINUS_EQUAL:   token.MINUS,
		token.STAR_EQUAL:    token.STAR,
		token.SLASH_EQUAL:   token.SLASH,
		token.PERCENT_EQUAL: token.PERCENT,
		token.DOT_EQUAL:     token.DOT,
	}[op.Kind]
	return token.Token{Kind: kind, Lexeme: op.Lexeme, Line: op.Line}
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL, token.BANG_EQUAL_EQUAL, token.EQUAL_EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS, token.DOT) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH, token.PERCENT) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	if p.match(token.PLUS_PLUS, token.MINUS_MINUS) {
		op := p.previous()
		if !p.check(token.VARIABLE) {
			p.fail(op.Line, "Expected variable after '"+op.Lexeme+"'")
		}
		name := p.advance()
		return &ast.IncDec{Target: name, Op: op, Postfix: false}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.LEFT_BRACKET):
			bracket := p.previous()
			idx := p.parseExpression()
			p.consume(token.RIGHT_BRACKET, "Expected ']' after array index")
			expr = &ast.Index{Array: expr, Bracket: bracket, Idx: idx}
		case p.check(token.PLUS_PLUS) || p.check(token.MINUS_MINUS):
			if v, ok := expr.(*ast.Variable); ok {
				op := p.advance()
				expr = &ast.IncDec{Target: v.Name, Op: op, Postfix: true}
			} else {
				return expr
			}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		args = append(args, p.parseExpression())
		for p.match(token.COMMA) {
			args = append(args, p.parseExpression())
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expected ')' after arguments")
	return &ast.Call{Callee: callee, ClosingParen: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(token.NULL):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.match(token.NUMBER):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(token.VARIABLE):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.IDENTIFIER):
		return &ast.Name{Token: p.previous()}
	case p.match(token.LEFT_BRACKET):
		bracket := p.previous()
		var elems []ast.Expr
		if !p.check(token.RIGHT_BRACKET) {
			elems = append(elems, p.parseExpression())
			for p.match(token.COMMA) {
				elems = append(elems, p.parseExpression())
			}
		}
		p.consume(token.RIGHT_BRACKET, "Expected ']' after array elements")
		return &ast.ArrayLit{Bracket: bracket, Elements: elems}
	case p.match(token.LEFT_PAREN):
		paren := p.previous()
		expr := p.parseExpression()
		p.consume(token.RIGHT_PAREN, "Expected ')' after expression")
		return &ast.Grouping{Paren: paren, Inner: expr}
	}

	p.fail(p.peek().Line, "Expected expression")
	panic("unreachable")
}
