package class

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(ClassSize)
}

// Default thresholds for CS01.
const (
	defaultMaxMethods = 10
	defaultMaxFields  = 7
)

// ClassSize flags classes exceeding the method-count or field-count
// thresholds. A class that needs that many members is holding more than
// one responsibility.
var ClassSize = lint.RuleDef{
	ID:          "CS01",
	Name:        "class.size",
	Group:       "class",
	Description: "Classes should stay under the configured method and field counts.",
	Severity:    lint.SeverityWarning,
	Kinds:       []syntax.NodeKind{syntax.KindClassDecl},
	Check:       checkClassSize,
	ConfigKeys:  []string{"max_methods", "max_fields"},
	Rationale: "Method and field counts are the bluntest but most reliable proxy " +
		"for a class doing too much. Past the threshold, cohesion has usually gone.",
	BadExample:  "class OrderManager { /* 23 methods touching 12 fields */ }",
	GoodExample: "class Order { ... }\nclass OrderPricing { ... }\nclass OrderShipping { ... }",
	Fix:         "Split the class along the clusters of fields its methods actually touch.",
}

func checkClassSize(node *syntax.Node, _ *lint.Context, opts map[string]any) []lint.Finding {
	maxMethods := lint.GetIntOption(opts, "max_methods", defaultMaxMethods)
	maxFields := lint.GetIntOption(opts, "max_fields", defaultMaxFields)

	methods, fields := 0, 0
	for _, member := range node.Children {
		switch member.Kind {
		case syntax.KindFuncDecl:
			methods++
		case syntax.KindFieldDecl:
			fields++
		}
	}

	var findings []lint.Finding
	if methods > maxMethods {
		findings = append(findings, lint.Finding{
			RuleID:   "CS01",
			Severity: lint.SeverityWarning,
			Message: fmt.Sprintf("class %q has %d methods, more than the allowed %d",
				node.Name, methods, maxMethods),
			Span: node.Span,
		})
	}
	if fields > maxFields {
		findings = append(findings, lint.Finding{
			RuleID:   "CS01",
			Severity: lint.SeverityWarning,
			Message: fmt.Sprintf("class %q has %d fields, more than the allowed %d",
				node.Name, fields, maxFields),
			Span: node.Span,
		})
	}
	return findings
}
