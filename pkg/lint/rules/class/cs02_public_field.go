package class

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(PublicField)
}

// PublicField flags fields exposed outside their class: declared public,
// or carrying no access qualifier at all.
var PublicField = lint.RuleDef{
	ID:          "CS02",
	Name:        "class.public_field",
	Group:       "class",
	Description: "Fields should be private; expose behavior, not state.",
	Severity:    lint.SeverityWarning,
	Kinds:       []syntax.NodeKind{syntax.KindFieldDecl},
	Check:       checkPublicField,
	Rationale: "A public field hands every caller a write dependency on the " +
		"class's representation, freezing it forever.",
	BadExample:  "class Point { public int x; int y; }",
	GoodExample: "class Point { private int x; private int y; }",
	Fix:         "Make the field private and add accessors only where callers need them.",
}

func checkPublicField(node *syntax.Node, _ *lint.Context, _ map[string]any) []lint.Finding {
	switch node.Visibility {
	case "private", "protected":
		return nil
	case "public":
		return []lint.Finding{{
			RuleID:   "CS02",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("field %q is public; hide it behind behavior", node.Name),
			Span:     node.Span,
		}}
	default:
		return []lint.Finding{{
			RuleID:   "CS02",
			Severity: lint.SeverityWarning,
			Message: fmt.Sprintf("field %q has no access qualifier; declare it private",
				node.Name),
			Span: node.Span,
		}}
	}
}
