package function

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(ParameterCount)
}

// defaultMaxParameters is the FN01 threshold.
const defaultMaxParameters = 3

// ParameterCount flags functions taking more parameters than the
// configured maximum.
var ParameterCount = lint.RuleDef{
	ID:          "FN01",
	Name:        "function.parameter_count",
	Group:       "function",
	Description: "Functions should take at most the configured number of parameters.",
	Severity:    lint.SeverityWarning,
	Kinds:       []syntax.NodeKind{syntax.KindFuncDecl},
	Check:       checkParameterCount,
	ConfigKeys:  []string{"max_parameters"},
	Rationale: "Every parameter multiplies the combinations a caller and a test " +
		"must cover. Long parameter lists usually hide a missing type.",
	BadExample:  "void render(int x, int y, int w, int h, bool border) { ... }",
	GoodExample: "void render(Rectangle bounds) { ... }",
	Fix:         "Group related parameters into an object, or split the function.",
}

func checkParameterCount(node *syntax.Node, _ *lint.Context, opts map[string]any) []lint.Finding {
	maxParams := lint.GetIntOption(opts, "max_parameters", defaultMaxParameters)

	count := len(node.Parameters())
	if count <= maxParams {
		return nil
	}

	return []lint.Finding{{
		RuleID:   "FN01",
		Severity: lint.SeverityWarning,
		Message: fmt.Sprintf("function %q takes %d parameters, more than the allowed %d",
			node.Name, count, maxParams),
		Span: node.Span,
	}}
}
