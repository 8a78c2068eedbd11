package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/coastfi/internal/solver"
	"github.com/spf13/cobra"
)

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [plan-file]",
		Short: "Solve for the contribution, savings or retirement age that reaches a goal",
		Long: `Search for the input that reaches Coast FI or the income goal.

Targets:
  contribution    monthly contribution needed to reach Coast FI by --age
  savings         savings at which Coast FI is reached today
  retirement_age  earliest retirement age whose income meets the goal (up to --max-age)
  all             every target above, with recommendations`,
		Args: cobra.ExactArgs(1),
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
			in := plan.Inputs(scenario)

			targetAge, _ := cmd.Flags().GetInt("age")
			maxAge, _ := cmd.Flags().GetInt("max-age")
			target, _ := cmd.Flags().GetString("target")
			format, _ := cmd.Flags().GetString("format")

			if targetAge == 0 {
				targetAge = in.CurrentAge + (in.YearsToRetirement()+1)/2
			}
			slv := solver.NewDefaultSolver(newEngine(cmd))

			var result interface{}
			if strings.EqualFold(target, "all") {
				result, err = slv.SolveAll(cmd.Context(), in, targetAge, maxAge)
			} else {
				t, ok := solver.ParseTarget(strings.ToLower(target))
				if !ok {
					return fmt.Errorf("unknown target: %s (valid: contribution, savings, retirement_age, all)", target)
				}
				result, err = slv.Solve(cmd.Context(), solver.Request{
					Inputs:    in,
					Target:    t,
					TargetAge: targetAge,
					MaxAge:    maxAge,
				})
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				formatted, err := (&solver.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatted)
			case "table", "":
				tf := &solver.TableFormatter{}
				switch r := result.(type) {
				case *solver.MultiResult:
					fmt.Fprint(out, tf.FormatMulti(r))
				case *solver.Result:
					fmt.Fprint(out, tf.Format(r))
				}
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringP("scenario", "s", "", "Scenario to solve (default: first scenario)")
	cmd.Flags().StringP("target", "t", "all", "What to solve for (contribution, savings, retirement_age, all)")
	cmd.Flags().Int("age", 0, "Age by which Coast FI must be reached (default: halfway to retirement)")
	cmd.Flags().Int("max-age", 0, "Last retirement age considered (default 100)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}
