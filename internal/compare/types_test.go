package compare

import (
	"testing"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	summary := &domain.ScenarioSummary{
		Name:        "Test",
		Description: "desc",
		Inputs:      domain.CoastFIInputs{RetirementAge: 60, DesiredRetirementIncome: 4000},
		Result: domain.CoastFIResult{
			CoastFINumber:            300000,
			YearsToCoastFI:           12.5,
			TimeToCoastFI:            "12 years and 6 months",
			ProjectedRetirementValue: 1500000,
			ActualRetirementIncome:   4200,
		},
		DepletionAge: 84,
	}

	result := NewMetricsCalculator().CalculateMetrics(summary)
	assert.Equal(t, "Test", result.ScenarioName)
	assert.Equal(t, "desc", result.Description)
	assert.Equal(t, 60, result.RetirementAge)
	assert.True(t, result.Reachable)
	assert.True(t, result.MeetsIncomeGoal())
	assert.Equal(t, 84, result.DepletionAge)
	assert.Same(t, summary, result.Summary)
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	base := ComparisonResult{
		CoastFINumber: 300000, Reachable: true, YearsToCoastFI: 10,
		ProjectedRetirementValue: 1000000, ActualRetirementIncome: 4000,
	}
	alt := ComparisonResult{
		CoastFINumber: 250000, Reachable: true, YearsToCoastFI: 7.5,
		ProjectedRetirementValue: 1200000, ActualRetirementIncome: 5000,
	}

	result := mc.CalculateComparison(alt, base)
	assert.Equal(t, -50000.0, result.CoastFINumberDiff)
	assert.Equal(t, -2.5, result.YearsToCoastFIDiff)
	assert.Equal(t, 200000.0, result.ProjectedValueDiff)
	assert.Equal(t, 1000.0, result.IncomeDiffFromBase)
	assert.Equal(t, 25.0, result.IncomePctFromBase)

	base.Reachable = false
	base.ActualRetirementIncome = 0
	result = mc.CalculateComparison(alt, base)
	assert.Zero(t, result.YearsToCoastFIDiff)
	assert.Zero(t, result.IncomePctFromBase)
}

func TestGenerateRecommendations(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{
			ScenarioName: "Base", Reachable: true, YearsToCoastFI: 10,
			CoastFINumber: 300000, ActualRetirementIncome: 4000, DesiredRetirementIncome: 4000,
		},
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "Faster", Reachable: true, YearsToCoastFI: 8,
				CoastFINumber: 300000, ActualRetirementIncome: 4500, DesiredRetirementIncome: 4000},
			{ScenarioName: "Cheaper", Reachable: true, YearsToCoastFI: 11,
				CoastFINumber: 250000, ActualRetirementIncome: 3500, DesiredRetirementIncome: 4000},
		},
	}

	recs := GenerateRecommendations(compSet)
	require.Len(t, recs, 4)
	assert.Equal(t, "Fastest Coast FI: Faster reaches Coast FI 2 years sooner than the base scenario", recs[0])
	assert.Equal(t, "Best Income: Faster sustains $500 more per month in today's dollars", recs[1])
	assert.Equal(t, "Lowest Target: Cheaper needs $50000 less invested today", recs[2])
	assert.Equal(t, "Shortfall: Cheaper falls short of the desired income", recs[3])
}

func TestGenerateRecommendations_Empty(t *testing.T) {
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: &ComparisonResult{}}))
}
