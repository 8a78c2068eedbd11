// Package tuistyles holds the lipgloss palette shared by the TUI and its components.
package tuistyles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary   = lipgloss.Color("#2C7A7B")
	ColorSecondary = lipgloss.Color("#4A5568")
	ColorAccent    = lipgloss.Color("#ED8936")
	ColorSuccess   = lipgloss.Color("#38A169")
	ColorDanger    = lipgloss.Color("#E53E3E")
	ColorInfo      = lipgloss.Color("#3182CE")

	ColorForeground = lipgloss.Color("#E2E8F0")
	ColorMuted      = lipgloss.Color("#718096")
	ColorBorder     = lipgloss.Color("#4A5568")

	ColorChartLine1 = lipgloss.Color("#4FD1C5")
	ColorChartLine2 = lipgloss.Color("#F6AD55")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)

	SelectedItemStyle   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	UnselectedItemStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	ParameterValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)
	SliderTrackStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	SliderThumbStyle    = lipgloss.NewStyle().Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo).Italic(true)

	TableHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	TableCellStyle      = lipgloss.NewStyle().Foreground(ColorForeground)
	TableHighlightStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)

// MetricTrendStyle colours a trend by direction
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders whole dollars with thousands separators, or "n/a"
func FormatCurrency(amount float64) string {
	if !domain.IsFinite(amount) {
		return "n/a"
	}
	whole := decimal.NewFromFloat(math.Abs(amount)).Round(0).String()
	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}
	if amount < 0 && whole != "0" {
		return "-$" + whole
	}
	return "$" + whole
}
