package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/coastfi/internal/tui/tuistyles"
)

// Tone colours a metric card's note
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

// MetricCard displays a single headline number with a label and an optional note
type MetricCard struct {
	Label string
	Value string
	Note  string
	Tone  Tone
	Width int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// WithNote adds a line under the value, coloured by tone
func (m *MetricCard) WithNote(note string, tone Tone) *MetricCard {
	m.Note = note
	m.Tone = tone
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + tuistyles.MetricValueStyle.Render(m.Value)

	if m.Note != "" {
		style := tuistyles.SubtitleStyle
		switch m.Tone {
		case TonePositive:
			style = tuistyles.MetricTrendStyle(true)
			content += "\n" + style.Render(tuistyles.TrendIndicator(true)+" "+m.Note)
		case ToneNegative:
			style = tuistyles.MetricTrendStyle(false)
			content += "\n" + style.Render(tuistyles.TrendIndicator(false)+" "+m.Note)
		default:
			content += "\n" + style.Render(m.Note)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// MetricGrid lays cards out in rows of the given number of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
