package naming

import (
	"fmt"
	"unicode"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(InterfacePrefix)
}

// InterfacePrefix flags interface declarations carrying the discouraged
// I-prefix (IShape, IRepository).
var InterfacePrefix = lint.RuleDef{
	ID:          "NM03",
	Name:        "naming.interface_prefix",
	Group:       "naming",
	Description: "Interface names should not carry an I-prefix.",
	Severity:    lint.SeverityInfo,
	Kinds:       []syntax.NodeKind{syntax.KindInterfaceDecl},
	Check:       checkInterfacePrefix,
	Rationale: "The I-prefix leaks an implementation detail into every usage site. " +
		"Callers should not need to know they hold an abstraction.",
	BadExample:  "interface IShape { ... }",
	GoodExample: "interface Shape { ... }",
	Fix:         "Drop the prefix and, if needed, rename the concrete class instead.",
}

func checkInterfacePrefix(node *syntax.Node, _ *lint.Context, _ map[string]any) []lint.Finding {
	name := node.Name
	if len(name) < 2 || name[0] != 'I' || !unicode.IsUpper(rune(name[1])) {
		return nil
	}

	suggestion := name[1:]
	return []lint.Finding{{
		RuleID:   "NM03",
		Severity: lint.SeverityInfo,
		Message: fmt.Sprintf("interface %q carries a discouraged I-prefix; consider %q",
			name, suggestion),
		Span:       node.Span,
		Suggestion: suggestion,
	}}
}
