package parser

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/token"
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrUnterminatedString = "unterminated string literal"
	ErrUnterminatedBlock  = "unterminated block comment"
	ErrIllegalCharacter   = "illegal character %q"
	ErrExpectedDecl       = "expected declaration, found %s"
	ErrExpectedStmt       = "expected statement, found %s"
	ErrExpectedExpr       = "expected expression, found %s"
)
