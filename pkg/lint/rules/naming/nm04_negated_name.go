package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(NegatedName)
}

// negatedNamePattern matches isNotReady, notReady, hasNoItems and the
// snake_case equivalents.
var negatedNamePattern = regexp.MustCompile(`^(is|has|was)?_?([Nn]ot|[Nn]o)(_|[A-Z])`)

// NegatedName flags boolean names stated in the negative. Negated names
// force double negatives at the branch site ("if (!isNotReady)").
var NegatedName = lint.RuleDef{
	ID:          "NM04",
	Name:        "naming.negated_name",
	Group:       "naming",
	Description: "Boolean names should be stated positively.",
	Severity:    lint.SeverityWarning,
	Kinds: []syntax.NodeKind{
		syntax.KindVarDecl, syntax.KindFieldDecl, syntax.KindParameter,
	},
	Check: checkNegatedName,
	Rationale: "Every use of a negated name invites a double negative, and double " +
		"negatives are where boolean logic bugs live.",
	BadExample:  "bool isNotReady;",
	GoodExample: "bool isReady;",
	Fix:         "Invert the name and flip every assignment and test of it.",
}

func checkNegatedName(node *syntax.Node, _ *lint.Context, _ map[string]any) []lint.Finding {
	if !node.IsBoolean() || node.Name == "" {
		return nil
	}
	if !negatedNamePattern.MatchString(node.Name) {
		return nil
	}

	return []lint.Finding{{
		RuleID:   "NM04",
		Severity: lint.SeverityWarning,
		Message: fmt.Sprintf("boolean %q is named in the negative; state it positively",
			node.Name),
		Span:       node.Span,
		Suggestion: positiveForm(node.Name),
	}}
}

// positiveForm strips the first negation particle from a name:
// isNotReady → isReady, notReady → ready.
func positiveForm(name string) string {
	for _, particle := range []string{"Not", "not", "No", "no"} {
		idx := strings.Index(name, particle)
		if idx < 0 {
			continue
		}
		rest := strings.TrimPrefix(name[idx+len(particle):], "_")
		if idx == 0 {
			return lowercase(rest)
		}
		return name[:idx] + rest
	}
	return name
}

func lowercase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
