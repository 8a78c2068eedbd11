package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/config"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coastfi %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				if info := buildInfo(); info != "" {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coastfi",
		Short: "Coast FI Calculator CLI",
		Long: `Find out when your savings can coast to retirement on growth alone.

coastfi reads a plan (YAML, TOML or JSON), computes the Coast FI number for each
scenario, projects the portfolio year by year and compares what-if strategies.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	versionCommand := versionCmd()
	versionCommand.Flags().BoolP("verbose", "v", false, "Include module build information")

	root.AddCommand(
		calculateCmd(),
		projectCmd(),
		validateCmd(),
		compareCmd(),
		solveCmd(),
		serveCmd(),
		templatesCmd(),
		initCmd(),
		versionCommand,
	)
	return root
}

// newEngine builds a calculation engine honouring the --debug flag
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

func loadPlan(path string) (*domain.Configuration, error) {
	plan, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return plan, nil
}

// pickScenario returns the named scenario, or the first one when name is empty
func pickScenario(plan *domain.Configuration, name string) (*domain.Scenario, error) {
	if name == "" {
		return &plan.EffectiveScenarios()[0], nil
	}
	scenario, ok := plan.FindScenario(name)
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in plan", name)
	}
	return scenario, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
