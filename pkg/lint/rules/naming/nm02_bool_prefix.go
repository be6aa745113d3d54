package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(BoolPrefix)
}

// defaultBoolPrefixes are the accepted predicate-style prefixes.
var defaultBoolPrefixes = []string{"is", "has", "can", "should", "was", "will"}

// BoolPrefix flags boolean-typed declarations whose names do not read as
// predicates.
var BoolPrefix = lint.RuleDef{
	ID:          "NM02",
	Name:        "naming.bool_prefix",
	Group:       "naming",
	Description: "Boolean names should carry an is/has/can-style predicate prefix.",
	Severity:    lint.SeverityInfo,
	Kinds: []syntax.NodeKind{
		syntax.KindVarDecl, syntax.KindFieldDecl, syntax.KindParameter,
	},
	Check:      checkBoolPrefix,
	ConfigKeys: []string{"prefixes"},
	Rationale: "A boolean named like a noun (ready, visible) reads ambiguously at " +
		"the call site; a predicate prefix makes conditions read as sentences.",
	BadExample:  "bool ready;",
	GoodExample: "bool isReady;",
	Fix:         "Prefix the name with is, has, can, or another accepted predicate form.",
}

func checkBoolPrefix(node *syntax.Node, _ *lint.Context, opts map[string]any) []lint.Finding {
	if !node.IsBoolean() || node.Name == "" {
		return nil
	}

	prefixes := lint.GetStringSliceOption(opts, "prefixes", defaultBoolPrefixes)
	if hasPredicatePrefix(node.Name, prefixes) {
		return nil
	}

	suggestion := "is" + capitalize(node.Name)
	return []lint.Finding{{
		RuleID:   "NM02",
		Severity: lint.SeverityInfo,
		Message: fmt.Sprintf("boolean %q should carry a predicate prefix such as %q",
			node.Name, suggestion),
		Span:       node.Span,
		Suggestion: suggestion,
	}}
}

// hasPredicatePrefix reports whether name starts with a prefix followed
// by an uppercase letter or underscore, so "island" does not count as
// "is"-prefixed.
func hasPredicatePrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if name == p {
			return true
		}
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			next := rune(name[len(p)])
			if unicode.IsUpper(next) || next == '_' {
				return true
			}
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
