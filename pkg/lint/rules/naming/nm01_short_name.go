package naming

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/syntax"
)

func init() {
	lint.Register(ShortName)
}

// Default thresholds for NM01.
const (
	defaultMinNameLength = 2
	defaultMaxScopeLines = 10
)

// ShortName flags single-character and other too-short names declared
// outside a short-lived local scope. Inside a small function body (or a
// loop) a terse name is acceptable; anywhere else it is noise the reader
// has to decode.
var ShortName = lint.RuleDef{
	ID:          "NM01",
	Name:        "naming.short_name",
	Group:       "naming",
	Description: "Names shorter than the minimum length are only allowed in short-lived scopes.",
	Severity:    lint.SeverityWarning,
	Kinds:       []syntax.NodeKind{syntax.KindVarDecl, syntax.KindParameter},
	Check:       checkShortName,
	ConfigKeys:  []string{"min_length", "max_scope_lines"},
	Rationale: "A one-letter name carries no meaning beyond its scope. The further " +
		"from its declaration a name is used, the more descriptive it must be.",
	BadExample:  "int s; // elapsed time in seconds, used 40 lines below",
	GoodExample: "int elapsedSeconds;",
	Fix:         "Rename the variable to describe what it holds, or shrink the scope.",
}

func checkShortName(node *syntax.Node, ctx *lint.Context, opts map[string]any) []lint.Finding {
	minLength := lint.GetIntOption(opts, "min_length", defaultMinNameLength)
	maxScopeLines := lint.GetIntOption(opts, "max_scope_lines", defaultMaxScopeLines)

	if len(node.Name) >= minLength {
		return nil
	}

	// Loop counters are the canonical short-lived name.
	if ctx.EnclosingLoop() != nil {
		return nil
	}

	// A short name is fine when the whole enclosing function fits the
	// short-lived-scope window.
	if fn := ctx.EnclosingFunc(); fn != nil && fn.LineCount() <= maxScopeLines {
		return nil
	}

	return []lint.Finding{{
		RuleID:   "NM01",
		Severity: lint.SeverityWarning,
		Message: fmt.Sprintf("name %q is too short for its scope; use a descriptive name",
			node.Name),
		Span: node.Span,
	}}
}
