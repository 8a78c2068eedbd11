package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/coastfi/internal/config"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/rgehrsitz/coastfi/internal/output"
	"github.com/spf13/cobra"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [plan-file]",
		Short: "Calculate Coast FI for every scenario in a plan",
		Long: `Calculate the Coast FI number, time to Coast FI and retirement income for each scenario.

Examples:
  coastfi calculate plan.yaml
  coastfi calculate plan.yaml --format html --save
  coastfi calculate plan.yaml --scenario "Retire at 60" --format json
  coastfi calculate --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCalculate,
	}
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringP("scenario", "s", "", "Only calculate the named scenario")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for plan values before calculating")
	return cmd
}

func runCalculate(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if len(args) == 0 && !interactive {
		return errors.New("plan file required (or use --interactive)")
	}

	formatName, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown output format: %s (valid: %s)", formatName, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	var plan *domain.Configuration
	if len(args) == 1 {
		var err error
		if plan, err = loadPlan(args[0]); err != nil {
			return err
		}
	} else {
		plan = config.NewInputParser().CreateExampleConfiguration()
	}

	if interactive {
		in, err := promptInputs(plan.Inputs(nil))
		if err != nil {
			return err
		}
		plan = planFromInputs(plan, in)
	}

	engine := newEngine(cmd)
	results, err := engine.RunScenarios(cmd.Context(), plan)
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("scenario"); name != "" {
		if results, err = filterScenario(results, name); err != nil {
			return err
		}
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		filename, err := output.WriteFormatted(formatter, results, output.FileExtension(formatter.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", formatter.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func filterScenario(results *domain.ScenarioComparison, name string) (*domain.ScenarioComparison, error) {
	for _, s := range results.Scenarios {
		if strings.EqualFold(s.Name, name) {
			filtered := *results
			filtered.Scenarios = []domain.ScenarioSummary{s}
			return &filtered, nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in plan", name)
}

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [plan-file]",
		Short: "Print the year-by-year portfolio projection for one scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("scenario")
			scenario, err := pickScenario(plan, name)
			if err != nil {
				return err
			}

			summary, err := newEngine(cmd).RunScenario(cmd.Context(), plan, scenario)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			format, _ := cmd.Flags().GetString("format")
			switch strings.ToLower(format) {
			case "table", "":
				writeProjectionTable(out, summary)
				return nil
			case "csv":
				data, err := output.ProjectionCSVFormatter{}.Format(&domain.ScenarioComparison{
					PlanName:  plan.Profile.Name,
					Scenarios: []domain.ScenarioSummary{*summary},
				})
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			case "json":
				data, err := json.MarshalIndent(summary.Projection, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal projection: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", format)
			}
		},
	}
	cmd.Flags().StringP("scenario", "s", "", "Scenario to project (default: first scenario)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

func writeProjectionTable(w io.Writer, summary *domain.ScenarioSummary) {
	fmt.Fprintf(w, "PROJECTION: %s\n", summary.Name)
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "%-5s %-6s %18s %18s %18s\n", "Age", "Year", "Value", "Contributed", "Today's $")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, p := range summary.Projection {
		marker := ""
		if p.Age == summary.Inputs.RetirementAge {
			marker = "  <- retirement"
		}
		fmt.Fprintf(w, "%-5d %-6d %18s %18s %18s%s\n", p.Age, p.Year,
			output.FormatCurrency(p.Value), output.FormatCurrency(p.ContributionsToDate),
			output.FormatCurrency(p.RealValue), marker)
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
	if summary.DepletionAge > 0 {
		fmt.Fprintf(w, "Portfolio depleted at age %d\n", summary.DepletionAge)
	} else {
		fmt.Fprintf(w, "Peak value %s at age %d\n", output.FormatCurrency(summary.PeakValue), summary.PeakAge)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			parser := config.NewInputParser()
			scenarios := plan.EffectiveScenarios()
			for i := range scenarios {
				if err := parser.ValidateInputs(plan.Inputs(&scenarios[i])); err != nil {
					return fmt.Errorf("scenario %s: %w", scenarios[i].Name, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan file %s is valid (%d %s)\n", args[0], len(scenarios), plural(len(scenarios), "scenario"))
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init [output-file]",
		Aliases: []string{"example"},
		Short:   "Write an example plan file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			plan := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(plan, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
