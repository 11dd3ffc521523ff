package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/locklint/internal/cli/output"
	"github.com/leapstack-labs/locklint/pkg/lint"
	_ "github.com/leapstack-labs/locklint/pkg/lint/rules" // register rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Manager string // Filter by package manager
	Verbose bool   // Show full documentation
	Format  string // Output format: text, json, markdown
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List lint rules or show one rule's documentation",
		Long: `List the registered lint rules, or show detailed documentation for a
single rule by ID.`,
		Example: `  # List all rules
  locklint rules

  # Only yarn rules
  locklint rules --manager yarn

  # Full documentation for one rule
  locklint rules NPM001`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Manager, "manager", "m", "", "Filter by package manager: npm, pnpm, yarn, bun")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := lint.AllRules()
	if opts.Manager != "" {
		var filtered []lint.RuleDef
		for _, rule := range rules {
			if rule.Manager == opts.Manager {
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
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.GetByID(strings.ToUpper(ruleID))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule.Info())
	case output.ModeMarkdown:
		return showRuleMarkdown(r, rule)
	default:
		return showRuleText(r, rule)
	}
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *output.Renderer, rules []lint.RuleDef, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d total)", len(rules))))
	r.Println("")

	currentManager := ""
	for _, rule := range rules {
		if rule.Manager != currentManager {
			currentManager = rule.Manager
			r.Println(styles.Header2.Render(currentManager))
		}

		r.Printf("  %s  %s\n", styles.Muted.Render(rule.ID), rule.Description)
		if verbose {
			if rule.Rationale != "" {
				r.Println(styles.Muted.Render("      Why: " + oneLine(rule.Rationale)))
			}
			if rule.Fix != "" {
				r.Println(styles.Muted.Render("      Fix: " + rule.Fix))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'locklint rules <rule-id>' for detailed documentation"))
	r.Println("")
	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []lint.RuleDef, verbose bool) error {
	r.Println(output.FormatHeader(1, "Lint Rules"))
	r.Println("")

	currentManager := ""
	for _, rule := range rules {
		if rule.Manager != currentManager {
			currentManager = rule.Manager
			r.Println(output.FormatHeader(2, currentManager))
			r.Println("")
		}
		r.Printf("- **%s** - %s\n", rule.ID, rule.Description)
		if verbose && rule.Rationale != "" {
			r.Println("  > " + oneLine(rule.Rationale))
		}
	}

	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for the rules listing.
type RulesJSONOutput struct {
	Rules []lint.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

func listRulesJSON(r *output.Renderer, rules []lint.RuleDef) error {
	jsonOutput := RulesJSONOutput{Rules: make([]lint.RuleInfo, 0, len(rules))}
	for _, rule := range rules {
		jsonOutput.Rules = append(jsonOutput.Rules, rule.Info())
	}
	jsonOutput.Count = len(jsonOutput.Rules)

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule lint.RuleDef) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(rule.ID + ": " + rule.Description))
	r.Println("")
	r.Printf("  %s %s\n", styles.Bold.Render("Manager:"), rule.Manager)
	if rule.Subcommand != "" {
		subcommand := rule.Subcommand
		if len(rule.Aliases) > 0 {
			subcommand += " (aliases: " + strings.Join(rule.Aliases, ", ") + ")"
		}
		r.Printf("  %s %s\n", styles.Bold.Render("Subcommand:"), subcommand)
	}
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Header2.Render("Why"))
		r.Println("  " + oneLine(rule.Rationale))
		r.Println("")
	}
	if rule.BadExample != "" {
		r.Println(styles.Header2.Render("Bad"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println("  " + styles.Error.Render(line))
		}
		r.Println("")
	}
	if rule.GoodExample != "" {
		r.Println(styles.Header2.Render("Good"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println("  " + styles.Success.Render(line))
		}
		r.Println("")
	}
	if rule.Fix != "" {
		r.Println(styles.Header2.Render("Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}
	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule lint.RuleDef) error {
	r.Println(output.FormatHeader(1, rule.ID))
	r.Println("")
	r.Println(rule.Description)
	r.Println("")
	r.Println(output.FormatKeyValue("Manager", rule.Manager))
	if rule.Subcommand != "" {
		r.Println(output.FormatKeyValue("Subcommand", rule.Subcommand))
	}
	if len(rule.Aliases) > 0 {
		r.Println(output.FormatKeyValue("Aliases", strings.Join(rule.Aliases, ", ")))
	}
	r.Println("")

	if rule.Rationale != "" {
		r.Println(output.FormatHeader(2, "Why"))
		r.Println("")
		r.Println(oneLine(rule.Rationale))
		r.Println("")
	}
	if rule.BadExample != "" {
		r.Println(output.FormatHeader(2, "Bad"))
		r.Println("")
		r.Println("```\n" + rule.BadExample + "\n```")
		r.Println("")
	}
	if rule.GoodExample != "" {
		r.Println(output.FormatHeader(2, "Good"))
		r.Println("")
		r.Println("```\n" + rule.GoodExample + "\n```")
		r.Println("")
	}
	if rule.Fix != "" {
		r.Println(output.FormatHeader(2, "Fix"))
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}
	return nil
}

// oneLine collapses a multi-line documentation string into one line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
