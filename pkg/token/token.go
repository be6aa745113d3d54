// Package token defines the lexical tokens for the normalized C-style
// source notation, plus positions, spans, and comments shared across the
// parser and the lint engine.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // "hello"

	// Operators and delimiters
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	BANG    // !
	ASSIGN  // =
	EQ      // ==
	NE      // !=
	LT      // <
	GT      // >
	LE      // <=
	GE      // >=
	AND     // &&
	OR      // ||
	DOT     // .
	COMMA   // ,
	SEMI    // ;
	COLON   // :
	LPAREN  // (
	RPAREN  // )
	LBRACE  // {
	RBRACE  // }

	// Keywords (alphabetical)
	CLASS
	ELSE
	FALSE
	FOR
	IF
	INTERFACE
	NULL
	PRIVATE
	PROTECTED
	PUBLIC
	RETURN
	STATIC
	TRUE
	WHILE
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	BANG:    "!",
	ASSIGN:  "=",
	EQ:      "==",
	NE:      "!=",
	LT:      "<",
	GT:      ">",
	LE:      "<=",
	GE:      ">=",
	AND:     "&&",
	OR:      "||",
	DOT:     ".",
	COMMA:   ",",
	SEMI:    ";",
	COLON:   ":",
	LPAREN:  "(",
	RPAREN:  ")",
	LBRACE:  "{",
	RBRACE:  "}",

	CLASS:     "class",
	ELSE:      "else",
	FALSE:     "false",
	FOR:       "for",
	IF:        "if",
	INTERFACE: "interface",
	NULL:      "null",
	PRIVATE:   "private",
	PROTECTED: "protected",
	PUBLIC:    "public",
	RETURN:    "return",
	STATIC:    "static",
	TRUE:      "true",
	WHILE:     "while",
}

// keywords maps keyword strings to their token types.
var keywords = map[string]TokenType{
	"class":     CLASS,
	"else":      ELSE,
	"false":     FALSE,
	"for":       FOR,
	"if":        IF,
	"interface": INTERFACE,
	"null":      NULL,
	"private":   PRIVATE,
	"protected": PROTECTED,
	"public":    PUBLIC,
	"return":    RETURN,
	"static":    STATIC,
	"true":      TRUE,
	"while":     WHILE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= CLASS && t <= WHILE
}

// IsOperator returns true if the token type is an operator or delimiter.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= RBRACE
}

// IsVisibility returns true if the token type is an access qualifier.
func IsVisibility(t TokenType) bool {
	return t == PUBLIC || t == PRIVATE || t == PROTECTED
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
