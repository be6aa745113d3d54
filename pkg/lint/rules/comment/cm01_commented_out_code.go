package comment

import (
	"strings"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/parser"
	"github.com/codetidy/codetidy/pkg/syntax"
	"github.com/codetidy/codetidy/pkg/token"
)

func init() {
	lint.Register(CommentedOutCode)
}

// minCodeTokens is how many tokens a comment body must lex into before
// the commented-out-code heuristic fires.
const minCodeTokens = 3

// CommentedOutCode flags comments whose body reads as disabled code.
// Version control remembers deleted code; comments that hoard it only
// rot.
var CommentedOutCode = lint.RuleDef{
	ID:          "CM01",
	Name:        "comment.commented_out_code",
	Group:       "comment",
	Description: "Comments should not contain disabled code.",
	Severity:    lint.SeverityInfo,
	Kinds:       []syntax.NodeKind{syntax.KindComment},
	Check:       checkCommentedOutCode,
	Rationale: "Commented-out code is ambiguous to every later reader: too " +
		"important to delete, too broken to enable. Nobody ever resolves that.",
	BadExample:  "// total = total + tax;",
	GoodExample: "// Tax is added by the invoicing step, not here.",
	Fix:         "Delete the code; retrieve it from version control if ever needed.",
}

func checkCommentedOutCode(node *syntax.Node, _ *lint.Context, _ map[string]any) []lint.Finding {
	if !looksLikeCode(node.Text) {
		return nil
	}
	return []lint.Finding{{
		RuleID:   "CM01",
		Severity: lint.SeverityInfo,
		Message:  "comment contains what appears to be commented-out code",
		Span:     node.Span,
	}}
}

// looksLikeCode reports whether a comment body tokenizes as syntactically
// plausible code: it must carry a statement marker (semicolon, brace, or
// a leading statement keyword) and lex cleanly into enough tokens.
func looksLikeCode(body string) bool {
	body = strings.TrimSpace(body)
	if body == "" {
		return false
	}

	marker := strings.ContainsAny(body, ";{}")
	lexer := parser.NewLexer(body)
	count := 0
	for tok := lexer.NextToken(); tok.Type != token.EOF; tok = lexer.NextToken() {
		if tok.Type == token.ILLEGAL {
			return false
		}
		if count == 0 && isStatementKeyword(tok.Type) {
			marker = true
		}
		count++
	}
	return marker && count >= minCodeTokens
}

func isStatementKeyword(t token.TokenType) bool {
	switch t {
	case token.IF, token.FOR, token.WHILE, token.RETURN, token.CLASS,
		token.INTERFACE:
		return true
	default:
		return false
	}
}
