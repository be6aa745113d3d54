package lint

import (
	"github.com/codetidy/codetidy/pkg/syntax"
)

// RuleDef is a data-driven rule definition. Rules are stateless: all
// context comes via the Check function parameters, and Check must not
// mutate the node, the context, or anything reachable from them. The
// engine treats Check as a pure function of (node, context, opts).
type RuleDef struct {
	ID          string            // Unique identifier, e.g., "NM01"
	Name        string            // Human-readable name, e.g., "naming.short_name"
	Group       string            // Category, e.g., "naming", "function"
	Description string            // Human-readable description
	Severity    Severity          // Default severity
	Kinds       []syntax.NodeKind // Node kinds this rule subscribes to
	Check       CheckFunc         // The check function
	ConfigKeys  []string          // Configuration keys this rule accepts

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc evaluates one node and returns findings. The opts parameter
// carries rule-specific options from configuration.
type CheckFunc func(node *syntax.Node, ctx *Context, opts map[string]any) []Finding

// SubscribesTo returns true if the rule handles the given node kind.
func (r RuleDef) SubscribesTo(kind syntax.NodeKind) bool {
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// RuleInfo is a flattened view of a rule's metadata for documentation
// and tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity string   `json:"default_severity"`
	Kinds           []string `json:"kinds"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Rationale       string   `json:"rationale,omitempty"`
	BadExample      string   `json:"bad_example,omitempty"`
	GoodExample     string   `json:"good_example,omitempty"`
	Fix             string   `json:"fix,omitempty"`
}

// GetRuleInfo extracts metadata from a RuleDef for documentation/tooling.
func GetRuleInfo(r RuleDef) RuleInfo {
	info := RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity.String(),
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
	for _, k := range r.Kinds {
		info.Kinds = append(info.Kinds, k.String())
	}
	return info
}
