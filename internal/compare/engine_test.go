package compare

import (
	"context"
	"testing"
	"time"

	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.Profile{
			Name:                    "Test Saver",
			CurrentAge:              30,
			RetirementAge:           65,
			CurrentSavings:          decimal.NewFromInt(50000),
			MonthlyContributions:    decimal.NewFromInt(1000),
			DesiredRetirementIncome: decimal.NewFromInt(4000),
		},
		GlobalAssumptions: domain.GlobalAssumptions{
			ExpectedReturn:     decimal.NewFromInt(7),
			InflationRate:      decimal.NewFromInt(3),
			SafeWithdrawalRate: decimal.NewFromInt(4),
		},
	}
}

func testEngine() *CompareEngine {
	calc := calculation.NewCalculationEngine()
	calc.Now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
	return NewCompareEngine(calc)
}

func TestCompareEngine_CompareTemplates(t *testing.T) {
	engine := testEngine()

	compSet, err := engine.Compare(context.Background(), testPlan(), CompareOptions{
		Templates:  []string{"double_contributions", "retire_early_5yr", "stop_contributions"},
		ConfigPath: "plan.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "Base", compSet.BaseScenarioName)
	assert.Equal(t, "Test Saver", compSet.PlanName)
	assert.Equal(t, 2030, compSet.StartYear)
	assert.Equal(t, "plan.yaml", compSet.ConfigPath)
	require.NotNil(t, compSet.BaseResult)
	require.Len(t, compSet.AlternativeResults, 3)

	base := compSet.BaseResult
	assert.False(t, base.Reachable, "1000/month never catches the Coast FI curve before 65")
	assert.Equal(t, domain.StatusBeyondRetirementAge, base.TimeToCoastFI)

	double := compSet.AlternativeResults[0]
	assert.Equal(t, "Base_double_contributions", double.ScenarioName)
	assert.Equal(t, "Double monthly contributions", double.Description)
	assert.InDelta(t, 0, double.CoastFINumberDiff, 1e-6, "contributions do not change the target")
	assert.True(t, double.Reachable)
	assert.Greater(t, double.ProjectedValueDiff, 0.0)
	assert.Greater(t, double.IncomeDiffFromBase, 0.0)
	assert.Greater(t, double.IncomePctFromBase, 0.0)
	assert.Zero(t, double.YearsToCoastFIDiff, "no years delta against an unreachable base")

	early := compSet.AlternativeResults[1]
	assert.Equal(t, 60, early.RetirementAge)
	assert.Greater(t, early.CoastFINumberDiff, 0.0)
	assert.Less(t, early.IncomeDiffFromBase, 0.0)

	stop := compSet.AlternativeResults[2]
	assert.Equal(t, domain.StatusNeverNoContrib, stop.TimeToCoastFI)
	assert.Less(t, stop.ProjectedValueDiff, 0.0)

	require.NotEmpty(t, compSet.Recommendations)
	assert.Contains(t, compSet.Recommendations[0], "Fastest Coast FI: Base_double_contributions")
	assert.NotEmpty(t, compSet.Assumptions)
}

func TestCompareEngine_TransformSpecAsTemplate(t *testing.T) {
	compSet, err := testEngine().Compare(context.Background(), testPlan(), CompareOptions{
		Templates: []string{"postpone_retirement:years=3"},
	})
	require.NoError(t, err)
	require.Len(t, compSet.AlternativeResults, 1)

	alt := compSet.AlternativeResults[0]
	assert.Equal(t, "Base_postpone_retirement", alt.ScenarioName)
	assert.Equal(t, 68, alt.RetirementAge)
	assert.Equal(t, "Postpone retirement by 3 years", alt.Description)
}

func TestCompareEngine_Errors(t *testing.T) {
	engine := testEngine()
	ctx := context.Background()

	_, err := engine.Compare(ctx, nil, CompareOptions{})
	assert.Error(t, err)

	_, err = engine.Compare(ctx, testPlan(), CompareOptions{BaseScenarioName: "missing"})
	assert.ErrorContains(t, err, "base scenario missing not found")

	_, err = engine.Compare(ctx, testPlan(), CompareOptions{Templates: []string{"nope"}})
	assert.ErrorContains(t, err, "template nope not found")

	_, err = engine.Compare(ctx, testPlan(), CompareOptions{Templates: []string{"set_retirement_age:age=25"}})
	assert.ErrorContains(t, err, "produces invalid inputs")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = engine.Compare(cancelled, testPlan(), CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareEngine_CompareScenarios(t *testing.T) {
	plan := testPlan()
	plan.Scenarios = []domain.Scenario{
		{Name: "Base"},
		{Name: "Lump Sum", CurrentSavings: domain.DecimalPtr(decimal.NewFromInt(400000))},
	}

	compSet, err := testEngine().CompareScenarios(context.Background(), plan, "base", []string{"lump sum"})
	require.NoError(t, err)
	require.Len(t, compSet.AlternativeResults, 1)

	alt := compSet.AlternativeResults[0]
	assert.True(t, alt.IsCoastFI)
	assert.Equal(t, domain.StatusAlreadyAchieved, alt.TimeToCoastFI)
	assert.Greater(t, alt.ProjectedValueDiff, 0.0)

	_, err = testEngine().CompareScenarios(context.Background(), plan, "Base", []string{"missing"})
	assert.ErrorContains(t, err, "alternative scenario missing not found")
}

func TestComparisonSet_ToScenarioComparison(t *testing.T) {
	compSet, err := testEngine().Compare(context.Background(), testPlan(), CompareOptions{
		Templates: []string{"lean_fire"},
	})
	require.NoError(t, err)

	comparison := compSet.ToScenarioComparison()
	require.Len(t, comparison.Scenarios, 2)
	assert.Equal(t, "Base", comparison.Scenarios[0].Name)
	assert.Equal(t, "Base_lean_fire", comparison.Scenarios[1].Name)
	assert.Equal(t, 3000.0, comparison.Scenarios[1].Inputs.DesiredRetirementIncome)
	assert.Equal(t, compSet.Assumptions, comparison.Assumptions)
}
