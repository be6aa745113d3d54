package comment

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(StaleReference)
}

// StaleReference flags comments that name a symbol no longer declared in
// the file. A comment that references vanished code is worse than no
// comment: it documents a program that does not exist.
var StaleReference = lint.RuleDef{
	ID:          "CM02",
	Name:        "comment.stale_reference",
	Group:       "comment",
	Description: "Comments should not reference symbols absent from the file.",
	Severity:    lint.SeverityHint,
	Kinds:       []syntax.NodeKind{syntax.KindComment},
	Check:       checkStaleReference,
	Rationale: "Comments drift. When a rename or deletion leaves a comment " +
		"pointing at nothing, the comment starts lying to the reader.",
	BadExample:  "// updateTotals() must run first (updateTotals was deleted)",
	GoodExample: "// recalculate() must run first",
	Fix:         "Update or delete the comment to match the surviving code.",
}

func checkStaleReference(node *syntax.Node, ctx *lint.Context, _ map[string]any) []lint.Finding {
	var findings []lint.Finding
	for _, word := range strings.FieldsFunc(node.Text, isWordBoundary) {
		ref, symbolish := symbolReference(word)
		if !symbolish {
			continue
		}
		if ctx.DeclaredInFile(ref) {
			continue
		}
		findings = append(findings, lint.Finding{
			RuleID:   "CM02",
			Severity: lint.SeverityHint,
			Message: fmt.Sprintf("comment references %q, which is not declared in this file",
				word),
			Span: node.Span,
		})
	}
	return findings
}

func isWordBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' &&
		r != '(' && r != ')' && r != '.'
}

// symbolReference decides whether a comment word plausibly names a code
// symbol, and returns the name to resolve. Only call-like words
// (name()), dotted paths, and mixed-case identifiers count; plain prose
// words never do.
func symbolReference(word string) (string, bool) {
	callLike := strings.HasSuffix(word, "()")
	word = strings.TrimSuffix(word, "()")
	if word == "" {
		return "", false
	}

	// Resolve dotted references by their root.
	root, _, dotted := strings.Cut(word, ".")
	if root == "" {
		return "", false
	}
	for _, r := range root {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "", false
		}
	}

	if callLike || dotted {
		return root, true
	}
	// All-caps words are prose emphasis (TODO, NOTE), not identifiers.
	if strings.ToUpper(root) == root {
		return "", false
	}
	return root, hasInteriorUpper(root) || strings.Contains(root, "_")
}

// hasInteriorUpper reports camelCase: an uppercase rune after the first.
func hasInteriorUpper(s string) bool {
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
