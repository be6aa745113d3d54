package parser

import (
	"github.com/codetidy/codetidy/pkg/syntax"
	"github.com/codetidy/codetidy/pkg/token"
)

// parseBlock parses "{" stmt* "}".
func (p *Parser) parseBlock() *syntax.Node {
	start := p.token.Pos
	node := syntax.NewNode(syntax.KindBlock, token.Span{})

	p.expect(token.LBRACE)
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		node.Append(p.parseStmt())
	}
	p.expect(token.RBRACE)

	node.Span = p.spanFrom(start)
	return node
}

// parseStmt parses a single statement.
func (p *Parser) parseStmt() *syntax.Node {
	switch p.token.Type {
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.LBRACE:
		return p.parseBlock()
	case token.IDENT:
		if p.checkPeek(token.IDENT) {
			// "type name" → local variable declaration
			return p.parseTypedDecl(p.token.Pos, "", false, syntax.KindVarDecl)
		}
		return p.parseExprStmt()
	case token.BANG, token.MINUS, token.LPAREN, token.NUMBER, token.STRING,
		token.TRUE, token.FALSE, token.NULL:
		return p.parseExprStmt()
	default:
		p.addError(ErrExpectedStmt, p.token.Type)
		p.nextToken()
		return nil
	}
}

// parseIfStmt parses: "if" "(" expr ")" stmt ["else" stmt].
// Branches are normalized to Block nodes so the guard is always the only
// non-block child.
func (p *Parser) parseIfStmt() *syntax.Node {
	start := p.token.Pos
	node := syntax.NewNode(syntax.KindConditional, token.Span{})

	p.nextToken() // consume if
	p.expect(token.LPAREN)
	node.Append(p.parseExpr())
	p.expect(token.RPAREN)
	node.Append(p.blockOrWrapped())

	if p.match(token.ELSE) {
		node.Append(p.blockOrWrapped())
	}

	node.Span = p.spanFrom(start)
	return node
}

// parseWhileStmt parses: "while" "(" expr ")" stmt.
func (p *Parser) parseWhileStmt() *syntax.Node {
	start := p.token.Pos
	node := syntax.NewNode(syntax.KindLoop, token.Span{})
	node.Operator = "while"

	p.nextToken() // consume while
	p.expect(token.LPAREN)
	node.Append(p.parseExpr())
	p.expect(token.RPAREN)
	node.Append(p.blockOrWrapped())

	node.Span = p.spanFrom(start)
	return node
}

// parseForStmt parses: "for" "(" [init] ";" [cond] ";" [post] ")" stmt.
// The init and post clauses are folded into the loop's block; the guard
// stays the only non-block child, matching while-loops.
func (p *Parser) parseForStmt() *syntax.Node {
	start := p.token.Pos
	node := syntax.NewNode(syntax.KindLoop, token.Span{})
	node.Operator = "for"

	p.nextToken() // consume for
	p.expect(token.LPAREN)

	var init *syntax.Node
	if !p.check(token.SEMI) {
		if p.check(token.IDENT) && p.checkPeek(token.IDENT) {
			init = p.parseTypedDecl(p.token.Pos, "", false, syntax.KindVarDecl)
		} else {
			init = p.parseExpr()
			p.expect(token.SEMI)
		}
	} else {
		p.nextToken()
	}

	var cond *syntax.Node
	if !p.check(token.SEMI) {
		cond = p.parseExpr()
	}
	p.expect(token.SEMI)

	var post *syntax.Node
	if !p.check(token.RPAREN) {
		post = p.parseExpr()
	}
	p.expect(token.RPAREN)

	if cond == nil {
		// An empty guard loops forever; model it as a true literal.
		lit := syntax.NewNode(syntax.KindLiteral, p.spanFrom(start))
		lit.Value = "true"
		cond = lit
	}
	node.Append(cond)

	body := p.blockOrWrapped()
	if init != nil || post != nil {
		merged := syntax.NewNode(syntax.KindBlock, body.Span)
		merged.Append(init)
		merged.Append(body.Children...)
		merged.Append(post)
		body = merged
	}
	node.Append(body)

	node.Span = p.spanFrom(start)
	return node
}

// parseReturnStmt parses: "return" [expr] ";".
func (p *Parser) parseReturnStmt() *syntax.Node {
	start := p.token.Pos
	node := syntax.NewNode(syntax.KindReturn, token.Span{})

	p.nextToken() // consume return
	if !p.check(token.SEMI) {
		node.Append(p.parseExpr())
	}
	p.expect(token.SEMI)

	node.Span = p.spanFrom(start)
	return node
}

// parseExprStmt parses an expression statement terminated by ";".
func (p *Parser) parseExprStmt() *syntax.Node {
	node := p.parseExpr()
	p.expect(token.SEMI)
	return node
}

// blockOrWrapped parses a statement and guarantees a Block node: a bare
// statement body is wrapped in a single-child block.
func (p *Parser) blockOrWrapped() *syntax.Node {
	if p.check(token.LBRACE) {
		return p.parseBlock()
	}
	stmt := p.parseStmt()
	block := syntax.NewNode(syntax.KindBlock, token.Span{})
	if stmt != nil {
		block.Span = stmt.Span
		block.Append(stmt)
	}
	return block
}
