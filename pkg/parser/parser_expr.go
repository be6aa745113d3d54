package parser

import (
	"strings"

	"github.com/codetidy/codetidy/pkg/syntax"
	"github.com/codetidy/codetidy/pkg/token"
)

// parseExpr parses an expression. Assignment is right-associative and has
// the lowest precedence.
func (p *Parser) parseExpr() *syntax.Node {
	left := p.parseOr()
	if left == nil {
		return nil
	}
	if p.check(token.ASSIGN) {
		p.nextToken()
		right := p.parseExpr()
		node := syntax.NewNode(syntax.KindAssign, token.Span{})
		node.Operator = "="
		node.Append(left, right)
		node.Span = token.Span{Start: left.Span.Start, End: p.prevEnd}
		return node
	}
	return left
}

func (p *Parser) parseOr() *syntax.Node {
	left := p.parseAnd()
	for left != nil && p.check(token.OR) {
		p.nextToken()
		left = p.binary(left, p.parseAnd(), "||")
	}
	return left
}

func (p *Parser) parseAnd() *syntax.Node {
	left := p.parseEquality()
	for left != nil && p.check(token.AND) {
		p.nextToken()
		left = p.binary(left, p.parseEquality(), "&&")
	}
	return left
}

func (p *Parser) parseEquality() *syntax.Node {
	left := p.parseComparison()
	for left != nil && (p.check(token.EQ) || p.check(token.NE)) {
		op := p.token.Literal
		p.nextToken()
		left = p.binary(left, p.parseComparison(), op)
	}
	return left
}

func (p *Parser) parseComparison() *syntax.Node {
	left := p.parseAdditive()
	for left != nil && (p.check(token.LT) || p.check(token.GT) ||
		p.check(token.LE) || p.check(token.GE)) {
		op := p.token.Literal
		p.nextToken()
		left = p.binary(left, p.parseAdditive(), op)
	}
	return left
}

func (p *Parser) parseAdditive() *syntax.Node {
	left := p.parseMultiplicative()
	for left != nil && (p.check(token.PLUS) || p.check(token.MINUS)) {
		op := p.token.Literal
		p.nextToken()
		left = p.binary(left, p.parseMultiplicative(), op)
	}
	return left
}

func (p *Parser) parseMultiplicative() *syntax.Node {
	left := p.parseUnary()
	for left != nil && (p.check(token.STAR) || p.check(token.SLASH) ||
		p.check(token.PERCENT)) {
		op := p.token.Literal
		p.nextToken()
		left = p.binary(left, p.parseUnary(), op)
	}
	return left
}

// parseUnary parses prefix ! and - operators.
func (p *Parser) parseUnary() *syntax.Node {
	if p.check(token.BANG) || p.check(token.MINUS) {
		start := p.token.Pos
		op := p.token.Literal
		p.nextToken()
		operand := p.parseUnary()
		node := syntax.NewNode(syntax.KindUnary, token.Span{})
		node.Operator = op
		node.Append(operand)
		node.Span = p.spanFrom(start)
		return node
	}
	return p.parsePrimary()
}

// parsePrimary parses literals, grouped expressions, identifiers, and
// calls. Member access chains collapse into a single dotted name, which
// is all the naming rules need.
func (p *Parser) parsePrimary() *syntax.Node {
	start := p.token.Pos

	switch p.token.Type {
	case token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NULL:
		node := syntax.NewNode(syntax.KindLiteral, token.Span{})
		node.Value = p.token.Literal
		node.Text = p.token.Literal
		p.nextToken()
		node.Span = p.spanFrom(start)
		return node

	case token.LPAREN:
		p.nextToken()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return inner

	case token.IDENT:
		var parts []string
		parts = append(parts, p.token.Literal)
		p.nextToken()
		for p.check(token.DOT) && p.checkPeek(token.IDENT) {
			p.nextToken()
			parts = append(parts, p.token.Literal)
			p.nextToken()
		}
		name := strings.Join(parts, ".")

		if p.check(token.LPAREN) {
			return p.parseCall(start, name)
		}

		node := syntax.NewNode(syntax.KindIdentifier, token.Span{})
		node.Name = name
		node.Span = p.spanFrom(start)
		return node

	case token.ILLEGAL:
		p.addError(ErrIllegalCharacter, p.token.Literal)
		p.nextToken()
		return nil

	default:
		p.addError(ErrExpectedExpr, p.token.Type)
		p.nextToken()
		return nil
	}
}

// parseCall parses the argument list of a call whose callee name has been
// consumed.
func (p *Parser) parseCall(start token.Position, name string) *syntax.Node {
	node := syntax.NewNode(syntax.KindCall, token.Span{})
	node.Name = name

	p.expect(token.LPAREN)
	for !p.check(token.RPAREN) && !p.check(token.EOF) && !p.failed() {
		node.Append(p.parseExpr())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	node.Span = p.spanFrom(start)
	return node
}

// binary builds a Binary node from two operands.
func (p *Parser) binary(left, right *syntax.Node, op string) *syntax.Node {
	node := syntax.NewNode(syntax.KindBinary, token.Span{})
	node.Operator = op
	node.Append(left, right)
	node.Span = token.Span{Start: left.Span.Start, End: p.prevEnd}
	return node
}
