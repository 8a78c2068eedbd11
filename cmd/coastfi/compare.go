package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/coastfi/internal/compare"
	"github.com/rgehrsitz/coastfi/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [plan-file]",
		Short: "Compare a scenario against built-in what-if templates",
		Long: `Compare a base scenario against alternative strategies.

Examples:
  coastfi compare plan.yaml --with retire_early_5yr,double_contributions
  coastfi compare plan.yaml --base Base --with conservative,aggressive --format csv
  coastfi compare plan.yaml --with "adjust_contributions:delta=500"
  coastfi compare plan.yaml --scenarios "Retire at 60,Conservative"
  coastfi compare --list-templates  # Show all available templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
				return nil
			}

			if len(args) == 0 {
				return errors.New("plan file required for comparison (use --list-templates to see available templates)")
			}

			templatesStr, _ := cmd.Flags().GetString("with")
			scenarioNames, _ := cmd.Flags().GetStringSlice("scenarios")
			if templatesStr == "" && len(scenarioNames) == 0 {
				return errors.New("--with or --scenarios is required to choose what to compare (or use --list-templates)")
			}

			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}

			baseScenarioName, _ := cmd.Flags().GetString("base")
			engine := compare.NewCompareEngine(newEngine(cmd))
			var comparisonSet *compare.ComparisonSet
			if len(scenarioNames) > 0 {
				comparisonSet, err = engine.CompareScenarios(cmd.Context(), plan, baseScenarioName, scenarioNames)
			} else {
				templateNames := transform.ParseTemplateList(templatesStr)
				if len(templateNames) == 0 {
					return errors.New("no valid templates specified in --with flag")
				}
				comparisonSet, err = engine.Compare(cmd.Context(), plan, compare.CompareOptions{
					BaseScenarioName: baseScenarioName,
					Templates:        templateNames,
				})
			}
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			comparisonSet.ConfigPath = args[0]

			outputFormat, _ := cmd.Flags().GetString("format")
			switch strings.ToLower(outputFormat) {
			case "csv":
				formatted, err := (&compare.CSVFormatter{}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, formatted)
			case "json":
				formatted, err := (&compare.JSONFormatter{Pretty: true}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprint(out, formatted)
			case "compact":
				fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(comparisonSet))
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(comparisonSet))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", outputFormat)
			}
			return nil
		},
	}
	cmd.Flags().String("base", "", "Base scenario name to compare against (default: first scenario)")
	cmd.Flags().String("with", "", "Comma-separated list of templates or transform specs to compare")
	cmd.Flags().StringSlice("scenarios", nil, "Compare scenarios from the plan instead of templates")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List available templates and exit")
	return cmd
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List built-in templates and transforms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Transforms (use as name:key=value,...):")
			for _, name := range transform.NewTransformRegistry().List() {
				fmt.Fprintf(out, "  %s\n", name)
			}
		},
	}
}
