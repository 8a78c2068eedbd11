package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/compare"
	"github.com/rgehrsitz/coastfi/internal/config"
	"github.com/rgehrsitz/coastfi/internal/output"
	"github.com/rgehrsitz/coastfi/internal/solver"
	"github.com/rgehrsitz/coastfi/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examplePlans = []string{
	filepath.Join("..", "..", "examples", "coastfi.yaml"),
	filepath.Join("..", "..", "examples", "coastfi.toml"),
}

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	engine := calculation.NewCalculationEngine()

	for _, path := range examplePlans {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			plan, err := parser.LoadFromFile(path)
			require.NoError(t, err)

			results, err := engine.RunScenarios(context.Background(), plan)
			require.NoError(t, err)
			require.Len(t, results.Scenarios, len(plan.EffectiveScenarios()))

			for _, s := range results.Scenarios {
				assert.NotEmpty(t, s.Name)
				require.NotEmpty(t, s.Projection)
				assert.Equal(t, s.Inputs.CurrentAge, s.Projection[0].Age)
				assert.Equal(t, results.StartYear, s.Projection[0].Year)
				assert.Equal(t, s.Result, calculation.CalculateCoastFI(s.Inputs))
			}
		})
	}
}

func TestOutputGeneration(t *testing.T) {
	plan, err := config.NewInputParser().LoadFromFile(examplePlans[0])
	require.NoError(t, err)
	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), plan)
	require.NoError(t, err)

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f)
			data, err := f.Format(results)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestEveryTemplateCompares(t *testing.T) {
	plan, err := config.NewInputParser().LoadFromFile(examplePlans[0])
	require.NoError(t, err)

	set, err := compare.NewCompareEngine(calculation.NewCalculationEngine()).Compare(context.Background(), plan, compare.CompareOptions{
		Templates: transform.CreateBuiltInTemplates().List(),
	})
	require.NoError(t, err)
	assert.Len(t, set.AlternativeResults, len(transform.CreateBuiltInTemplates().List()))
	assert.NotEmpty(t, set.Recommendations)
}

func TestSolverAgreesWithCalculator(t *testing.T) {
	plan, err := config.NewInputParser().LoadFromFile(examplePlans[0])
	require.NoError(t, err)
	in := plan.Inputs(nil)

	engine := calculation.NewCalculationEngine()
	result, err := solver.NewDefaultSolver(engine).RequiredSavings(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, result.RequiredSavings)

	// Savings at the solved amount reach Coast FI immediately
	in.CurrentSavings = *result.RequiredSavings
	assert.True(t, calculation.CalculateCoastFI(in).IsCoastFI)
}
