package compare

import (
	"encoding/csv"
	"math"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Base",
		ConfigPath:       "/path/to/plan.yaml",
		BaseResult: &ComparisonResult{
			ScenarioName:             "Base",
			RetirementAge:            65,
			CoastFINumber:            316270,
			TimeToCoastFI:            "Beyond retirement age",
			ProjectedRetirementValue: 2200000,
			ActualRetirementIncome:   2600,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:             "Base_double_contributions",
				Description:              "Double monthly contributions",
				RetirementAge:            65,
				CoastFINumber:            316270,
				Reachable:                true,
				YearsToCoastFI:           21.5,
				TimeToCoastFI:            "21 years and 6 months",
				ProjectedRetirementValue: 3900000,
				ActualRetirementIncome:   4600,
				ProjectedValueDiff:       1700000,
				IncomeDiffFromBase:       2000,
				IncomePctFromBase:        76.92,
			},
		},
		Recommendations: []string{"Best Income: Base_double_contributions sustains $2000 more per month in today's dollars"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	result := (&TableFormatter{}).Format(sampleSet())

	assert.Contains(t, result, "COAST FI SCENARIO COMPARISON")
	assert.Contains(t, result, "Base Scenario: Base")
	assert.Contains(t, result, "Configuration: /path/to/plan.yaml")
	assert.Contains(t, result, "Base (base)")
	assert.Contains(t, result, "$316.3K")
	assert.Contains(t, result, "$3.90M")
	assert.Contains(t, result, "never")
	assert.Contains(t, result, "Monthly Income:   +$2.0K (76.9%)")
	assert.Contains(t, result, "Time to Coast FI: 21 years and 6 months")
	assert.Contains(t, result, "RECOMMENDATIONS")
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	set := sampleSet()
	set.AlternativeResults = nil
	set.Recommendations = nil

	result := (&TableFormatter{}).Format(set)
	assert.NotContains(t, result, "COMPARISON TO BASE")
	assert.NotContains(t, result, "RECOMMENDATIONS")
}

func TestTableFormatter_FormatAmount(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "950", tf.formatAmount(950))
	assert.Equal(t, "1.5K", tf.formatAmount(1500))
	assert.Equal(t, "2.50M", tf.formatAmount(2500000))
	assert.Equal(t, "n/a", tf.formatAmount(math.Inf(1)))
	assert.Equal(t, "n/a", tf.formatAmount(math.NaN()))
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	result := (&TableFormatter{}).FormatCompact(sampleSet())
	assert.Equal(t, "Base: Base | Base_double_contributions: +$2.0K/mo", result)
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleSet())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"Base", "base", "65", "316270.00"}, records[1][:4])
	assert.Equal(t, "alternative", records[2][1])
	assert.Equal(t, "21 years and 6 months", records[2][5])
	assert.Equal(t, "2000.00", records[2][12])
}

func TestCSVFormatter_NonFinite(t *testing.T) {
	set := sampleSet()
	set.BaseResult.CoastFINumber = math.Inf(1)

	out, err := (&CSVFormatter{}).Format(set)
	require.NoError(t, err)
	assert.Contains(t, out, "Base,base,65,n/a,")
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(sampleSet())
		require.NoError(t, err)

		var decoded ComparisonSet
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "Base", decoded.BaseScenarioName)
		require.Len(t, decoded.AlternativeResults, 1)
		assert.Equal(t, 2000.0, decoded.AlternativeResults[0].IncomeDiffFromBase)
		assert.Equal(t, pretty, strings.Contains(out, "\n  "))
	}
}
