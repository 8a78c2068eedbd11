package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs plan scenarios through the Coast FI calculator and the
// projection generator and derives summary metrics
type CalculationEngine struct {
	Logger Logger
	Debug  bool // Enable debug output for detailed calculations

	// Now supplies the calendar year for projections; defaults to time.Now
	Now func() time.Time
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// StartYear returns the first calendar year of projections for a plan
func (ce *CalculationEngine) StartYear(config *domain.Configuration) int {
	if config != nil && config.GlobalAssumptions.StartYear > 0 {
		return config.GlobalAssumptions.StartYear
	}
	if ce.Now == nil {
		return time.Now().Year()
	}
	return ce.Now().Year()
}

// Summarize runs both calculations for a set of inputs
func (ce *CalculationEngine) Summarize(name string, in domain.CoastFIInputs, startYear int) *domain.ScenarioSummary {
	result := CalculateCoastFI(in)
	projection := GenerateProjectionsFrom(in, startYear)

	summary := &domain.ScenarioSummary{
		Name:       name,
		Inputs:     in,
		Result:     result,
		Projection: projection,
	}

	for _, p := range projection {
		if p.Value > summary.PeakValue {
			summary.PeakValue = p.Value
			summary.PeakAge = p.Age
		}
		if p.Age == in.RetirementAge {
			summary.ValueAtRetirement = p.Value
			summary.RealValueAtRetirement = p.RealValue
		}
		if summary.DepletionAge == 0 && p.Age > in.RetirementAge && p.IsDepleted() {
			summary.DepletionAge = p.Age
		}
	}
	if n := len(projection); n > 0 {
		summary.TotalContributions = projection[n-1].ContributionsToDate
		summary.FinalValue = projection[n-1].Value
	}

	ce.logger().Debugf("scenario %q: coast FI number %.2f, coast FI %t (%s), projected %.2f at %d",
		name, result.CoastFINumber, result.IsCoastFI, result.TimeToCoastFI,
		result.ProjectedRetirementValue, in.RetirementAge)

	return summary
}

// RunScenario calculates a single scenario of a plan
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := domain.DefaultScenarioName
	description := ""
	if scenario != nil {
		name = scenario.Name
		description = scenario.Description
	}

	in := config.Inputs(scenario)
	if ce.Debug {
		ce.logger().Infof("running scenario %q: age %d -> %d, savings %.2f, contributions %.2f/mo",
			name, in.CurrentAge, in.RetirementAge, in.CurrentSavings, in.MonthlyContributions)
	}

	summary := ce.Summarize(name, in, ce.StartYear(config))
	summary.Description = description
	return summary, nil
}

// RunScenarios calculates every scenario in the plan
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	scenarios := config.EffectiveScenarios()
	comparison := &domain.ScenarioComparison{
		PlanName:    config.Profile.Name,
		StartYear:   ce.StartYear(config),
		Scenarios:   make([]domain.ScenarioSummary, 0, len(scenarios)),
		Assumptions: PlanAssumptions(config),
	}

	for i := range scenarios {
		summary, err := ce.RunScenario(ctx, config, &scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", scenarios[i].Name, err)
		}
		comparison.Scenarios = append(comparison.Scenarios, *summary)
	}

	return comparison, nil
}

// RunScenarioAuto runs the scenario at the given index
func (ce *CalculationEngine) RunScenarioAuto(ctx context.Context, config *domain.Configuration, index int) (*domain.ScenarioSummary, error) {
	scenarios := config.EffectiveScenarios()
	if index < 0 || index >= len(scenarios) {
		return nil, fmt.Errorf("scenario index %d out of range (have %d)", index, len(scenarios))
	}
	return ce.RunScenario(ctx, config, &scenarios[index])
}

// PlanAssumptions lists the modeling assumptions rendered alongside results
func PlanAssumptions(config *domain.Configuration) []string {
	a := config.GlobalAssumptions
	return []string{
		fmt.Sprintf("Expected annual return: %s%% (compounded monthly)", a.ExpectedReturn.StringFixed(2)),
		fmt.Sprintf("Inflation: %s%% annually", a.InflationRate.StringFixed(2)),
		fmt.Sprintf("Safe withdrawal rate: %s%%", a.SafeWithdrawalRate.StringFixed(2)),
		fmt.Sprintf("Projection runs %d years past retirement, capped at age %d", RetirementYearsShown, MaxProjectionAge),
		"Post-retirement withdrawals stay fixed at the income inflated to the retirement date",
		"Desired income is monthly, in today's dollars: " + decimal.NewFromInt(12).Mul(config.Profile.DesiredRetirementIncome).StringFixed(2) + " per year",
	}
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}
