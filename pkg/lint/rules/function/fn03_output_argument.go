package function

import (
	"fmt"
	"strings"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(OutputArgument)
}

// OutputArgument flags functions whose body assigns to a parameter
// binding. Mutating an argument turns the signature into a lie: the
// caller reads "input" where the function meant "output".
var OutputArgument = lint.RuleDef{
	ID:          "FN03",
	Name:        "function.output_argument",
	Group:       "function",
	Description: "Functions should not assign to their parameters.",
	Severity:    lint.SeverityWarning,
	Kinds:       []syntax.NodeKind{syntax.KindFuncDecl},
	Check:       checkOutputArgument,
	Rationale: "Output arguments force the reader to check the callee before " +
		"trusting any argument at the call site. Return the value instead.",
	BadExample:  "void normalize(int value) { value = value * 2; }",
	GoodExample: "int normalize(int value) { return value * 2; }",
	Fix:         "Return the new value, or assign to a local copy.",
}

func checkOutputArgument(node *syntax.Node, _ *lint.Context, _ map[string]any) []lint.Finding {
	body := node.Body()
	if body == nil {
		return nil
	}

	params := make(map[string]bool)
	for _, p := range node.Parameters() {
		params[p.Name] = true
	}
	if len(params) == 0 {
		return nil
	}

	var findings []lint.Finding
	reported := make(map[string]bool)
	syntax.Walk(body, func(n *syntax.Node) bool {
		if n.Kind != syntax.KindAssign || len(n.Children) == 0 {
			return true
		}
		target := n.Children[0]
		if target.Kind != syntax.KindIdentifier {
			return true
		}
		// Assignments through a member (param.field = x) rebind state,
		// not the parameter itself; only flag the bare binding.
		name, _, dotted := strings.Cut(target.Name, ".")
		if dotted || !params[name] || reported[name] {
			return true
		}
		reported[name] = true
		findings = append(findings, lint.Finding{
			RuleID:   "FN03",
			Severity: lint.SeverityWarning,
			Message: fmt.Sprintf("function %q assigns to parameter %q; return the value instead",
				node.Name, name),
			Span: n.Span,
		})
		return true
	})
	return findings
}
