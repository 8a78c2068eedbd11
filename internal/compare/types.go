package compare

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/domain"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                  `json:"scenarioName"`
	Description  string                  `json:"description,omitempty"`
	Summary      *domain.ScenarioSummary `json:"-"`

	// Key Metrics
	RetirementAge            int     `json:"retirementAge"`
	CoastFINumber            float64 `json:"coastFINumber"`
	IsCoastFI                bool    `json:"isCoastFI"`
	Reachable                bool    `json:"reachable"`
	YearsToCoastFI           float64 `json:"yearsToCoastFI"`
	TimeToCoastFI            string  `json:"timeToCoastFI"`
	ProjectedRetirementValue float64 `json:"projectedRetirementValue"`
	ActualRetirementIncome   float64 `json:"actualRetirementIncome"`
	DesiredRetirementIncome  float64 `json:"desiredRetirementIncome"`
	DepletionAge             int     `json:"depletionAge,omitempty"`

	// Comparison to Base
	CoastFINumberDiff  float64 `json:"coastFINumberDiff"`
	YearsToCoastFIDiff float64 `json:"yearsToCoastFIDiff"` // only meaningful when both scenarios are reachable
	ProjectedValueDiff float64 `json:"projectedValueDiff"`
	IncomeDiffFromBase float64 `json:"incomeDiffFromBase"`
	IncomePctFromBase  float64 `json:"incomePctFromBase"`
}

// MeetsIncomeGoal reports whether the projected balance sustains the desired income
func (r *ComparisonResult) MeetsIncomeGoal() bool {
	return r.ActualRetirementIncome >= r.DesiredRetirementIncome
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
	Assumptions        []string           `json:"assumptions,omitempty"`
	PlanName           string             `json:"planName,omitempty"`
	StartYear          int                `json:"startYear,omitempty"`
}

// ToScenarioComparison converts a ComparisonSet to a domain.ScenarioComparison for report output
func (cs *ComparisonSet) ToScenarioComparison() *domain.ScenarioComparison {
	scenarios := make([]domain.ScenarioSummary, 0, len(cs.AlternativeResults)+1)

	if cs.BaseResult != nil && cs.BaseResult.Summary != nil {
		scenarios = append(scenarios, *cs.BaseResult.Summary)
	}

	for _, result := range cs.AlternativeResults {
		if result.Summary != nil {
			scenarios = append(scenarios, *result.Summary)
		}
	}

	return &domain.ScenarioComparison{
		PlanName:    cs.PlanName,
		StartYear:   cs.StartYear,
		Scenarios:   scenarios,
		Assumptions: cs.Assumptions,
	}
}

// MetricsCalculator extracts key metrics from scenario summaries
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a scenario summary
func (mc *MetricsCalculator) CalculateMetrics(summary *domain.ScenarioSummary) ComparisonResult {
	r := summary.Result
	return ComparisonResult{
		ScenarioName:             summary.Name,
		Description:              summary.Description,
		Summary:                  summary,
		RetirementAge:            summary.Inputs.RetirementAge,
		CoastFINumber:            r.CoastFINumber,
		IsCoastFI:                r.IsCoastFI,
		Reachable:                r.Reachable(),
		YearsToCoastFI:           r.YearsToCoastFI,
		TimeToCoastFI:            r.TimeToCoastFI,
		ProjectedRetirementValue: r.ProjectedRetirementValue,
		ActualRetirementIncome:   r.ActualRetirementIncome,
		DesiredRetirementIncome:  summary.Inputs.DesiredRetirementIncome,
		DepletionAge:             summary.DepletionAge,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.CoastFINumberDiff = scenario.CoastFINumber - base.CoastFINumber
	scenario.ProjectedValueDiff = scenario.ProjectedRetirementValue - base.ProjectedRetirementValue
	scenario.IncomeDiffFromBase = scenario.ActualRetirementIncome - base.ActualRetirementIncome

	if scenario.Reachable && base.Reachable {
		scenario.YearsToCoastFIDiff = scenario.YearsToCoastFI - base.YearsToCoastFI
	}

	if base.ActualRetirementIncome != 0 && domain.IsFinite(base.ActualRetirementIncome) {
		scenario.IncomePctFromBase = scenario.IncomeDiffFromBase / base.ActualRetirementIncome * 100
	}

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Soonest Coast FI among reachable scenarios
	soonest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.Reachable {
			continue
		}
		if !soonest.Reachable || alt.YearsToCoastFI < soonest.YearsToCoastFI {
			soonest = alt
		}
	}

	if soonest != base && soonest.Reachable {
		if base.Reachable {
			recommendations = append(recommendations,
				fmt.Sprintf("Fastest Coast FI: %s reaches Coast FI %s sooner than the base scenario",
					soonest.ScenarioName, calculation.FormatDuration(monthsBetween(soonest.YearsToCoastFI, base.YearsToCoastFI))))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Fastest Coast FI: %s reaches Coast FI (%s) where the base scenario does not",
					soonest.ScenarioName, soonest.TimeToCoastFI))
		}
	}

	// Highest sustainable income
	bestIncome := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.ActualRetirementIncome > bestIncome.ActualRetirementIncome {
			bestIncome = alt
		}
	}

	if bestIncome != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Best Income: %s sustains $%.0f more per month in today's dollars",
				bestIncome.ScenarioName, bestIncome.ActualRetirementIncome-base.ActualRetirementIncome))
	}

	// Smallest Coast FI number
	lowestTarget := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.CoastFINumber < lowestTarget.CoastFINumber {
			lowestTarget = alt
		}
	}

	if lowestTarget != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest Target: %s needs $%.0f less invested today",
				lowestTarget.ScenarioName, base.CoastFINumber-lowestTarget.CoastFINumber))
	}

	// Scenarios that miss the income goal
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if base.MeetsIncomeGoal() && !alt.MeetsIncomeGoal() {
			recommendations = append(recommendations,
				fmt.Sprintf("Shortfall: %s falls short of the desired income", alt.ScenarioName))
		}
	}

	return recommendations
}

func monthsBetween(sooner, later float64) int {
	return int(math.Round((later - sooner) * 12))
}
