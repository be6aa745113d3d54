// Package parser turns source text in the normalized C-style notation
// into the generic syntax model consumed by the lint engine.
//
// # Usage
//
//	file, err := parser.Parse("order.src", text)
//	if err != nil {
//	    // handle *parser.ParseError
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for a small
// declaration-and-statement language:
//
//	file       → decl*
//	decl       → classDecl | interfaceDecl | funcDecl | varDecl
//	classDecl  → [visibility] "class" IDENT "{" member* "}"
//	member     → funcDecl | fieldDecl
//	funcDecl   → [visibility] ["static"] type IDENT "(" params ")" block
//	fieldDecl  → [visibility] ["static"] type IDENT ["=" expr] ";"
//	stmt       → ifStmt | whileStmt | forStmt | returnStmt | block
//	           | varDecl | exprStmt
//
// Branch and loop bodies are always normalized to Block nodes, so every
// Conditional and Loop has exactly one guard expression followed by its
// block children. A for-loop's init and post clauses are folded into its
// block.
package parser

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/syntax"
	"github.com/codetidy/codetidy/pkg/token"
)

// Parser parses source text into a syntax tree.
type Parser struct {
	lexer   *Lexer
	token   token.Token // current token
	peek    token.Token // lookahead token
	prevEnd token.Position
	errors  []error
}

// NewParser creates a new parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the input and returns a source file bound to its tree.
// On failure it returns the first error encountered; no partial tree is
// produced.
func Parse(path, input string) (*syntax.SourceFile, error) {
	p := NewParser(input)
	root := p.parseFile()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return syntax.NewSourceFile(path, input, root, p.lexer.Comments), nil
}

// Errors returns all accumulated parse errors.
func (p *Parser) Errors() []error {
	return p.errors
}

// ---------- Token Helpers ----------

// nextToken advances to the next token, remembering where the consumed
// token ended so node spans can be closed.
func (p *Parser) nextToken() {
	if p.token.Type != token.EOF {
		p.prevEnd = endOf(p.token)
	}
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it is of the given type.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise records an
// error and advances so parsing cannot loop on the same token.
func (p *Parser) expect(t token.TokenType) (token.Token, bool) {
	if p.check(t) {
		tok := p.token
		p.nextToken()
		return tok, true
	}
	p.addError(ErrUnexpectedToken, p.token.Type, t)
	p.nextToken()
	return token.Token{}, false
}

// addError records a parse error at the current token.
func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.token.Pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// failed returns true once any error has been recorded.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// spanFrom closes a span opened at start using the end of the last
// consumed token.
func (p *Parser) spanFrom(start token.Position) token.Span {
	return token.Span{Start: start, End: p.prevEnd}
}

// endOf computes the position just past a token.
func endOf(tok token.Token) token.Position {
	return token.Position{
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column + len(tok.Literal),
		Offset: tok.Pos.Offset + len(tok.Literal),
	}
}
