package parser

import (
	"sort"

	"github.com/codetidy/codetidy/pkg/syntax"
	"github.com/codetidy/codetidy/pkg/token"
)

// parseFile parses the whole input into a File node. Comments collected
// by the lexer are merged in as Comment nodes so the traversal visits
// them in source order.
func (p *Parser) parseFile() *syntax.Node {
	start := p.token.Pos
	root := syntax.NewNode(syntax.KindFile, token.Span{})

	for !p.check(token.EOF) && !p.failed() {
		root.Append(p.parseDecl())
	}

	for _, c := range p.lexer.Comments {
		n := syntax.NewNode(syntax.KindComment, c.Span)
		n.Text = c.Body()
		root.Append(n)
	}
	sort.SliceStable(root.Children, func(i, j int) bool {
		return root.Children[i].Span.Start.Offset < root.Children[j].Span.Start.Offset
	})

	root.Span = p.spanFrom(start)
	return root
}

// parseModifiers consumes an optional access qualifier and static marker.
func (p *Parser) parseModifiers() (visibility string, static bool) {
	if token.IsVisibility(p.token.Type) {
		visibility = p.token.Literal
		p.nextToken()
	}
	if p.check(token.STATIC) {
		static = true
		p.nextToken()
	}
	return visibility, static
}

// parseDecl parses a top-level declaration.
func (p *Parser) parseDecl() *syntax.Node {
	start := p.token.Pos
	vis, static := p.parseModifiers()

	switch {
	case p.check(token.CLASS):
		return p.parseClassDecl(start, vis)
	case p.check(token.INTERFACE):
		return p.parseInterfaceDecl(start, vis)
	case p.check(token.IDENT):
		return p.parseTypedDecl(start, vis, static, syntax.KindVarDecl)
	default:
		p.addError(ErrExpectedDecl, p.token.Type)
		p.nextToken()
		return nil
	}
}

// parseClassDecl parses: "class" IDENT "{" member* "}".
func (p *Parser) parseClassDecl(start token.Position, visibility string) *syntax.Node {
	p.nextToken() // consume class
	name, _ := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	node := syntax.NewNode(syntax.KindClassDecl, token.Span{})
	node.Name = name.Literal
	node.Visibility = visibility

	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		node.Append(p.parseMember())
	}
	p.expect(token.RBRACE)

	node.Span = p.spanFrom(start)
	return node
}

// parseInterfaceDecl parses: "interface" IDENT "{" methodSig* "}".
// Method signatures become FuncDecl nodes without bodies.
func (p *Parser) parseInterfaceDecl(start token.Position, visibility string) *syntax.Node {
	p.nextToken() // consume interface
	name, _ := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	node := syntax.NewNode(syntax.KindInterfaceDecl, token.Span{})
	node.Name = name.Literal
	node.Visibility = visibility

	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		sigStart := p.token.Pos
		typeTok, _ := p.expect(token.IDENT)
		nameTok, _ := p.expect(token.IDENT)

		sig := syntax.NewNode(syntax.KindFuncDecl, token.Span{})
		sig.Name = nameTok.Literal
		sig.TypeName = typeTok.Literal
		p.parseParams(sig)
		p.expect(token.SEMI)
		sig.Span = p.spanFrom(sigStart)
		node.Append(sig)
	}
	p.expect(token.RBRACE)

	node.Span = p.spanFrom(start)
	return node
}

// parseMember parses a class member: a method or a field.
func (p *Parser) parseMember() *syntax.Node {
	start := p.token.Pos
	vis, static := p.parseModifiers()
	if !p.check(token.IDENT) {
		p.addError(ErrExpectedDecl, p.token.Type)
		p.nextToken()
		return nil
	}
	return p.parseTypedDecl(start, vis, static, syntax.KindFieldDecl)
}

// parseTypedDecl parses a declaration starting with "type name": either a
// function (name followed by a parameter list) or a variable/field.
// varKind selects the node kind when it is not a function.
func (p *Parser) parseTypedDecl(start token.Position, visibility string, static bool, varKind syntax.NodeKind) *syntax.Node {
	typeTok, _ := p.expect(token.IDENT)
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}

	if p.check(token.LPAREN) {
		return p.parseFuncDecl(start, visibility, static, typeTok.Literal, nameTok.Literal)
	}

	node := syntax.NewNode(varKind, token.Span{})
	node.Name = nameTok.Literal
	node.TypeName = typeTok.Literal
	node.Visibility = visibility
	node.Static = static

	if p.match(token.ASSIGN) {
		node.Append(p.parseExpr())
	}
	p.expect(token.SEMI)

	node.Span = p.spanFrom(start)
	return node
}

// parseFuncDecl parses the parameter list and body of a function whose
// return type and name have already been consumed.
func (p *Parser) parseFuncDecl(start token.Position, visibility string, static bool, typeName, name string) *syntax.Node {
	node := syntax.NewNode(syntax.KindFuncDecl, token.Span{})
	node.Name = name
	node.TypeName = typeName
	node.Visibility = visibility
	node.Static = static

	p.parseParams(node)
	node.Append(p.parseBlock())

	node.Span = p.spanFrom(start)
	return node
}

// parseParams parses "(" [type IDENT ("," type IDENT)*] ")" and appends
// Parameter nodes to fn.
func (p *Parser) parseParams(fn *syntax.Node) {
	p.expect(token.LPAREN)
	for !p.check(token.RPAREN) && !p.check(token.EOF) && !p.failed() {
		start := p.token.Pos
		first, ok := p.expect(token.IDENT)
		if !ok {
			return
		}

		param := syntax.NewNode(syntax.KindParameter, token.Span{})
		if p.check(token.IDENT) {
			// "type name" form
			param.TypeName = first.Literal
			param.Name = p.token.Literal
			p.nextToken()
		} else {
			// untyped "name" form
			param.Name = first.Literal
		}
		param.Span = p.spanFrom(start)
		fn.Append(param)

		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
}
