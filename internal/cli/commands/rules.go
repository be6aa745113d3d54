package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/codetidy/codetidy/internal/cli/output"
	"github.com/codetidy/codetidy/pkg/lint"
	_ "github.com/codetidy/codetidy/pkg/lint/rules" // register rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available rules",
		Long: `List all available rules with their documentation.

Rules are organized by group (naming, function, comment, class,
conditional). Use --verbose to see full documentation including
examples and fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  codetidy rules

  # Show details for a specific rule
  codetidy rules NM01

  # List rules in the naming group
  codetidy rules --group naming

  # Show full documentation
  codetidy rules -V

  # Output as JSON
  codetidy rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd).Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := lint.AllRules()
	if opts.Group != "" {
		var filtered []lint.RuleDef
		for _, rule := range rules {
			if rule.Group == opts.Group {
				filtered = append(filtered, rule)
			}
		}
		rules = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := NewCommandContext(cmd).Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.GetByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, &info)
	default:
		return showRuleText(r, &info)
	}
}

// groupTitle renders a rule group name as a heading.
var groupTitle = cases.Title(language.English)

// listRulesText outputs a table per group.
func listRulesText(r *output.Renderer, rules []lint.RuleDef, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Header(1, fmt.Sprintf("Rules (%d)", len(rules)))
	r.Println("")

	currentGroup := ""
	var t table.Writer
	flush := func() {
		if t != nil {
			r.Println(t.Render())
			r.Println("")
		}
		t = nil
	}

	for _, rule := range rules {
		if rule.Group != currentGroup {
			flush()
			currentGroup = rule.Group
			r.Println(styles.Bold.Render(groupTitle.String(currentGroup)))
			t = table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Severity", "Description"})
		}
		t.AppendRow(table.Row{
			rule.ID,
			rule.Name,
			severityTone(styles, rule.Severity).Render(rule.Severity.String()),
			rule.Description,
		})
		if verbose && rule.Rationale != "" {
			t.AppendRow(table.Row{"", "", "", truncateOneLine(rule.Rationale, 80)})
		}
	}
	flush()

	r.Println(styles.Muted.Render("Use 'codetidy rules <rule-id>' for detailed documentation"))
	r.Println("")
	return nil
}

// listRulesMarkdown outputs rules grouped under markdown headings.
func listRulesMarkdown(r *output.Renderer, rules []lint.RuleDef, verbose bool) error {
	r.Println("# Rules")
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println("## " + groupTitle.String(currentGroup))
			r.Println("")
		}
		r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.Severity.String())
		if verbose {
			r.Println("  " + rule.Description)
			if rule.Rationale != "" {
				r.Println("  > " + rule.Rationale)
			}
		}
	}
	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []lint.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

func listRulesJSON(r *output.Renderer, rules []lint.RuleDef) error {
	doc := RulesJSONOutput{Count: len(rules)}
	for _, rule := range rules {
		doc.Rules = append(doc.Rules, lint.GetRuleInfo(rule))
	}
	return r.JSON(doc)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, info *lint.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Header(1, fmt.Sprintf("%s - %s", info.ID, info.Name))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), info.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), info.DefaultSeverity)
	r.Printf("  %s: %s\n", styles.Bold.Render("Applies to"), strings.Join(info.Kinds, ", "))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + info.Rationale)
		r.Println("")
	}

	if info.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(info.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if info.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(info.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if info.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + info.Fix)
		r.Println("")
	}

	if len(info.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(info.ConfigKeys, ", "))
		r.Println("")
	}

	r.Println(styles.Muted.Render("  Docs: " + lint.BuildDocURL(info.ID)))
	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, info *lint.RuleInfo) error {
	r.Printf("# %s - %s\n\n", info.ID, info.Name)
	r.Printf("**Group:** %s | **Severity:** `%s`\n\n", info.Group, info.DefaultSeverity)
	r.Println(info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(info.Rationale)
		r.Println("")
	}

	if info.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```")
		r.Println(info.BadExample)
		r.Println("```")
		r.Println("")
	}

	if info.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```")
		r.Println(info.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if info.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(info.Fix)
		r.Println("")
	}

	if len(info.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(info.ConfigKeys, "`, `"))
		r.Println("")
	}

	r.Printf("Docs: %s\n", lint.BuildDocURL(info.ID))
	return nil
}

// severityTone maps a severity to its display style.
func severityTone(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
