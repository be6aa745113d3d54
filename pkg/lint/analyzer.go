package lint

import (
	"fmt"

	"github.com/codetidy/codetidy/pkg/syntax"
)

// Analyzer runs lint rules against parsed source files.
type Analyzer struct {
	config   *Config
	registry *Registry
}

// NewAnalyzer creates an analyzer over the globally registered rules
// with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	return NewAnalyzerWithRegistry(config, DefaultRegistry())
}

// NewAnalyzerWithRegistry creates an analyzer with an explicit registry.
func NewAnalyzerWithRegistry(config *Config, registry *Registry) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Analyzer{config: config, registry: registry}
}

// Registry returns the analyzer's registry.
func (a *Analyzer) Registry() *Registry {
	return a.registry
}

// AnalyzeFile walks the file's tree once in pre-order, dispatching each
// node to the rules subscribed to its kind. Findings accumulate in
// visitation order; rules on the same node run in rule-ID order, so the
// result is deterministic for a fixed file and registry.
func (a *Analyzer) AnalyzeFile(file *syntax.SourceFile) *FileReport {
	report := &FileReport{Path: file.Path}
	if file.Root == nil {
		return report
	}

	ctx := NewContext(file)
	a.walk(file.Root, ctx, report)
	return report
}

// walk visits node and its children. Scope frames are pushed on entering
// a scope-introducing node and popped on every exit path.
func (a *Analyzer) walk(node *syntax.Node, ctx *Context, report *FileReport) {
	if node.IsDeclaration() {
		ctx.Symbols.Declare(node.Name, node)
	}
	if node.IsScope() {
		ctx.Symbols.Push()
		defer ctx.Symbols.Pop()
	}

	for _, rule := range a.registry.RulesFor(node.Kind) {
		if a.config.IsDisabled(rule.ID) {
			continue
		}
		opts := a.config.GetRuleOptions(rule.ID)
		for _, f := range a.evaluate(rule, node, ctx, opts) {
			f.Severity = a.config.GetSeverity(rule.ID, f.Severity)
			if f.DocumentationURL == "" {
				f.DocumentationURL = BuildDocURL(f.RuleID)
			}
			report.Findings = append(report.Findings, f)
		}
	}

	ctx.pushAncestor(node)
	for _, c := range node.Children {
		a.walk(c, ctx, report)
	}
	ctx.popAncestor()
}

// evaluate invokes one rule on one node, converting a panicking rule
// into a single warning finding attributed to that rule. One broken rule
// must not abort analysis of the rest of the file.
func (a *Analyzer) evaluate(rule RuleDef, node *syntax.Node, ctx *Context, opts map[string]any) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []Finding{{
				RuleID:   rule.ID,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("rule %s failed on %s node: %v", rule.ID, node.Kind, r),
				Span:     node.Span,
			}}
		}
	}()
	return rule.Check(node, ctx, opts)
}
