package components

import (
	"math"
	"strings"
	"testing"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/rgehrsitz/coastfi/internal/tui/tuistyles"
	"github.com/stretchr/testify/assert"
)

func TestParameterSlider(t *testing.T) {
	s := NewParameterSlider("Inflation", KindPercent, 3, 0, 10, 0.25)
	s.Increment()
	assert.Equal(t, 3.25, s.Value)
	assert.Equal(t, "3.25%", s.FormattedValue())

	s.SetValue(42)
	assert.Equal(t, 10.0, s.Value, "clamped to max")
	s.Increment()
	assert.Equal(t, 10.0, s.Value)

	s.SetValue(-3)
	assert.Equal(t, 0.0, s.Value)
	assert.Equal(t, 0.0, s.Percentage())
}

func TestParameterSlider_RangeIncludesInitialValue(t *testing.T) {
	s := NewParameterSlider("Savings", KindMoney, 3_000_000, 0, 2_000_000, 5000)
	assert.Equal(t, 3_000_000.0, s.Max)
	assert.Equal(t, 1.0, s.Percentage())
	assert.Equal(t, "$3,000,000", s.FormattedValue())
}

func TestParameterSlider_Render(t *testing.T) {
	s := NewParameterSlider("Current age", KindYears, 30, 18, 90, 1)
	assert.Contains(t, s.Render(), "Current age")
	assert.Contains(t, s.Render(), "30")
	assert.NotContains(t, s.Render(), "▸")

	s.IsFocused = true
	assert.Contains(t, s.Render(), "▸")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("Monthly Income", "$2,660").WithNote("$1,340 short", ToneNegative)
	out := card.Render()
	assert.Contains(t, out, "Monthly Income")
	assert.Contains(t, out, "$2,660")
	assert.Contains(t, out, "▼ $1,340 short")

	grid := MetricGrid([]*MetricCard{card, NewMetricCard("Other", "1")}, 2)
	assert.Contains(t, grid, "Other")
	assert.Equal(t, "", MetricGrid(nil, 2))
}

func TestProjectionChart(t *testing.T) {
	points := []domain.InvestmentProjection{
		{Age: 30, Value: 100, RealValue: 100},
		{Age: 31, Value: 200, RealValue: 190},
		{Age: 32, Value: 150, RealValue: 140},
		{Age: 33, Value: 0, RealValue: 0},
	}
	out := ProjectionChart(points, 31).WithSize(40, 6).Render()

	assert.Contains(t, out, "Portfolio value by age")
	assert.Contains(t, out, "retirement (31)")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "33")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "$200")
	// title, 6 rows, axis, labels, legend
	assert.Len(t, strings.Split(out, "\n"), 10)
}

func TestASCIIChart_Empty(t *testing.T) {
	assert.Contains(t, NewASCIIChart("x").Render(), "No data to display")
}

func TestASCIIChart_SkipsNonFinite(t *testing.T) {
	chart := NewASCIIChart("").AddSeries("s", []float64{1, math.Inf(1), math.NaN(), 4}, tuistyles.ColorChartLine1, '*')
	assert.NotPanics(t, func() { chart.Render() })
}

func TestFormatChartValue(t *testing.T) {
	assert.Equal(t, "$2.2M", formatChartValue(2_245_242))
	assert.Equal(t, "$316K", formatChartValue(316_265))
	assert.Equal(t, "$950", formatChartValue(950))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$2,245,243", tuistyles.FormatCurrency(2245242.70))
	assert.Equal(t, "$950", tuistyles.FormatCurrency(950))
	assert.Equal(t, "-$1,000", tuistyles.FormatCurrency(-1000))
	assert.Equal(t, "n/a", tuistyles.FormatCurrency(math.Inf(1)))
}
