package conditional

import (
	"fmt"
	"strings"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(NegatedCondition)
}

// NegatedCondition flags if/while guards that negate a named predicate
// ("!isReady()"), suggesting the predicate be restated positively.
var NegatedCondition = lint.RuleDef{
	ID:          "CP01",
	Name:        "conditional.negated_condition",
	Group:       "conditional",
	Description: "Guard conditions should state predicates positively.",
	Severity:    lint.SeverityInfo,
	Kinds:       []syntax.NodeKind{syntax.KindConditional, syntax.KindLoop},
	Check:       checkNegatedCondition,
	Rationale: "Negatives are harder to evaluate in your head, and a negated " +
		"predicate combined with an else branch produces a double negative.",
	BadExample:  "if (!isClosed(door)) { ... }",
	GoodExample: "if (isOpen(door)) { ... }",
	Fix:         "Introduce or use the positive predicate and swap the branches.",
}

func checkNegatedCondition(node *syntax.Node, _ *lint.Context, _ map[string]any) []lint.Finding {
	guard := node.Condition()
	if guard == nil || guard.Kind != syntax.KindUnary || guard.Operator != "!" {
		return nil
	}
	if len(guard.Children) == 0 {
		return nil
	}

	operand := guard.Children[0]
	if operand.Kind != syntax.KindIdentifier && operand.Kind != syntax.KindCall {
		return nil
	}

	name := operand.Name
	message := fmt.Sprintf("condition negates %q; restate the predicate positively", name)
	if isNegativeName(name) {
		message = fmt.Sprintf("condition %q is a double negative; rename the predicate and drop the negation",
			"!"+name)
	}

	return []lint.Finding{{
		RuleID:     "CP01",
		Severity:   lint.SeverityInfo,
		Message:    message,
		Span:       guard.Span,
		Suggestion: positiveGuard(name, operand.Kind == syntax.KindCall),
	}}
}

// isNegativeName reports names like isNotReady or notReady, which make
// the negated guard a double negative.
func isNegativeName(name string) bool {
	last := name
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		last = name[idx+1:]
	}
	return strings.HasPrefix(last, "not") ||
		strings.Contains(last, "Not") || strings.Contains(last, "No")
}

// positiveGuard suggests the positively stated guard text.
func positiveGuard(name string, call bool) string {
	positive := name
	for _, particle := range []string{"Not", "not"} {
		if idx := strings.Index(positive, particle); idx >= 0 {
			positive = positive[:idx] + positive[idx+len(particle):]
			break
		}
	}
	if positive == name {
		// No negation in the name itself; the suggestion is the
		// un-negated predicate.
		if call {
			return name + "()"
		}
		return name
	}
	if call {
		return positive + "()"
	}
	return positive
}
