package function

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(FlagArgument)
}

// FlagArgument flags functions receiving a boolean parameter. A flag
// argument is a loud signal the function does two things and branches on
// which one the caller wanted.
var FlagArgument = lint.RuleDef{
	ID:          "FN02",
	Name:        "function.flag_argument",
	Group:       "function",
	Description: "Boolean parameters signal a function that does more than one thing.",
	Severity:    lint.SeverityInfo,
	Kinds:       []syntax.NodeKind{syntax.KindFuncDecl},
	Check:       checkFlagArgument,
	Rationale: "A caller passing true or false is choosing a code path. Two " +
		"functions with honest names beat one function with a switch.",
	BadExample:  "void save(Order order, bool validate) { ... }",
	GoodExample: "void save(Order order) { ... }\nvoid saveValidated(Order order) { ... }",
	Fix:         "Split the function per flag value and name each variant for what it does.",
}

func checkFlagArgument(node *syntax.Node, _ *lint.Context, _ map[string]any) []lint.Finding {
	var findings []lint.Finding
	for _, param := range node.Parameters() {
		if !param.IsBoolean() {
			continue
		}
		findings = append(findings, lint.Finding{
			RuleID:   "FN02",
			Severity: lint.SeverityInfo,
			Message: fmt.Sprintf("function %q takes boolean parameter %q; consider splitting it",
				node.Name, param.Name),
			Span: param.Span,
		})
	}
	return findings
}
