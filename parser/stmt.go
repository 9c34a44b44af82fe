package parser

import (
	"github.com/phpjs/phpjs/ast"
	"github.com/phpjs/phpjs/token"
)

// declaration := funcDecl | varDecl | statement (§4.2)
func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.FUNCTION):
		return p.functionDecl()
	case p.match(token.VAR, token.LET, token.CONST):
		return p.varDecl()
	default:
		return p.statement()
	}
}

// funcDecl := 'function' IDENT '(' params? ')' block
func (p *Parser) functionDecl() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expected function name")
	p.consume(token.LEFT_PAREN, "Expected '(' after function name")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		params = append(params, p.consume(token.VARIABLE, "Expected parameter name"))
		for p.match(token.COMMA) {
			params = append(params, p.consume(token.VARIABLE, "Expected parameter name"))
		}
	}
	p.consume(token.RIGHT_PAREN, "Expected ')' after parameters")
	p.consume(token.LEFT_BRACE, "Expected '{' before function body")
	body := p.blockStmts()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl := ('var'|'let'|'const') VARIABLE ('=' expression)? ';'
func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.VARIABLE, "Expected variable name")

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "Expected ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// statement := ifStmt | echoStmt | returnStmt | whileStmt
//            | forStmt | foreachStmt | block | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.ECHO):
		return p.echoStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.FOREACH):
		return p.foreachStmt()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Stmts: p.blockStmts()}
	default:
		return p.exprStmt()
	}
}

// ifStmt := 'if' '(' expression ')' statement
//            ( 'else' statement | 'elseif' ifStmt-tail )?
func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expected '(' after 'if'")
	cond := p.parseExpression()
	p.consume(token.RIGHT_PAREN, "Expected ')' after condition")
	then := p.statement()

	var elseBranch ast.Stmt
	switch {
	case p.match(token.ELSEIF):
		elseBranch = p.ifStmtTail()
	case p.match(token.ELSE):
		elseBranch = p.statement()
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

// ifStmtTail parses the condition/then/else portion of an 'elseif', which
// has already consumed the 'elseif' keyword itself.
func (p *Parser) ifStmtTail() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expected '(' after 'elseif'")
	cond := p.parseExpression()
	p.consume(token.RIGHT_PAREN, "Expected ')' after condition")
	then := p.statement()

	var elseBranch ast.Stmt
	switch {
	case p.match(token.ELSEIF):
		elseBranch = p.ifStmtTail()
	case p.match(token.ELSE):
		elseBranch = p.statement()
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

// echoStmt := 'echo' expression ';'
func (p *Parser) echoStmt() ast.Stmt {
	expr := p.parseExpression()
	p.consume(token.SEMICOLON, "Expected ';' after echo statement")
	return &ast.EchoStmt{Expr: expr}
}

// returnStmt := 'return' expression? ';'
func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "Expected ';' after return statement")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// whileStmt := 'while' '(' expression ')' statement
func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expected '(' after 'while'")
	cond := p.parseExpression()
	p.consume(token.RIGHT_PAREN, "Expected ')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// forStmt := 'for' '(' (varDecl | exprStmt | ';')
//                       expression? ';' expression? ')' statement
//
// Desugared at parse time (§4.2) into:
//   { init; while (cond) { body; step; } }
// with a missing cond becoming the literal `true`.
func (p *Parser) forStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expected '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR, token.LET, token.CONST):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpression()
	}
	semi := p.consume(token.SEMICOLON, "Expected ';' after loop condition")
	if cond == nil {
		cond = &ast.Literal{Token: semi, Value: true}
	}

	var step ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		step = p.parseExpression()
	}
	p.consume(token.RIGHT_PAREN, "Expected ')' after for clauses")

	body := p.statement()
	if step != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: step}}}
	}

	loop := ast.Stmt(&ast.WhileStmt{Cond: cond, Body: body})
	if init == nil {
		return &ast.BlockStmt{Stmts: []ast.Stmt{loop}}
	}
	return &ast.BlockStmt{Stmts: []ast.Stmt{init, loop}}
}

// foreachStmt := 'foreach' '(' expression 'as' VARIABLE ')' statement
func (p *Parser) foreachStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expected '(' after 'foreach'")
	arr := p.parseExpression()
	p.consume(token.AS, "Expected 'as' in foreach")
	item := p.consume(token.VARIABLE, "Expected variable name after 'as'")
	p.consume(token.RIGHT_PAREN, "Expected ')' after foreach clause")
	body := p.statement()
	return &ast.ForeachStmt{Array: arr, ItemName: item, Body: body}
}

// block := '{' declaration* '}'
func (p *Parser) blockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declarationRecover(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expected '}' after block")
	return stmts
}

// exprStmt := expression ';'
func (p *Parser) exprStmt() ast.Stmt {
	expr := p.parseExpression()
	p.consume(token.SEMICOLON, "Expected ';' after expression")
	return &ast.ExpressionStmt{Expr: expr}
}
