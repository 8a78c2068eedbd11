package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/coastfi/internal/tui/tuistyles"
)

// ValueKind selects how a slider value is displayed
type ValueKind int

const (
	KindYears ValueKind = iota
	KindMoney
	KindPercent
)

// ParameterSlider is one adjustable calculator input
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Kind      ValueKind
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider; the range widens to include a value outside it
func NewParameterSlider(label string, kind ValueKind, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label: label,
		Kind:  kind,
		Value: value,
		Min:   math.Min(min, value),
		Max:   math.Max(max, value),
		Step:  step,
		Width: 20,
	}
}

// Increment raises the value by one step, stopping at Max
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement lowers the value by one step, stopping at Min
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue clamps to [Min, Max] and rounds away float drift from repeated steps
func (p *ParameterSlider) SetValue(value float64) {
	value = math.Max(p.Min, math.Min(p.Max, value))
	p.Value = math.Round(value*100) / 100
}

// Percentage returns the value's position within the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// FormattedValue renders the value for its kind
func (p *ParameterSlider) FormattedValue() string {
	switch p.Kind {
	case KindMoney:
		return tuistyles.FormatCurrency(p.Value)
	case KindPercent:
		return fmt.Sprintf("%.2f%%", p.Value)
	default:
		return fmt.Sprintf("%.0f", p.Value)
	}
}

// Render returns a single line: label, value and a bar
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	cursor := "  "
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		cursor = "▸ "
	}

	return fmt.Sprintf("%s%s %s %s", cursor,
		labelStyle.Width(24).Render(p.Label),
		valueStyle.Width(14).Render(p.FormattedValue()),
		p.bar())
}

func (p *ParameterSlider) bar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled || (i == p.Width-1 && filled == p.Width):
			b.WriteString(tuistyles.SliderThumbStyle.Render("●"))
		case i < filled:
			b.WriteString(tuistyles.SliderThumbStyle.Render("━"))
		default:
			b.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	b.WriteString("]")
	return b.String()
}
