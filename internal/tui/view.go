package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/rgehrsitz/coastfi/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" + SubtitleStyle.Render("Press q to quit"))
	}
	if m.loading || m.config == nil {
		return m.renderApp(BorderStyle.Render("⠋ Loading plan..."))
	}

	var content string
	switch m.scene {
	case SceneParameters:
		content = m.renderParameters()
	case SceneProjection:
		content = m.renderProjection()
	case SceneCompare:
		content = m.renderCompare()
	}
	return m.renderApp(content)
}

// renderApp wraps content with the title bar and help line
func (m Model) renderApp(content string) string {
	title := TitleStyle.Render("COASTFI - Coast FI Explorer")
	crumb := SubtitleStyle.Render(m.scene.String())
	if m.scenarioName != "" {
		crumb = SubtitleStyle.Render(fmt.Sprintf("%s / %s", m.scene.String(), m.scenarioName))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, crumb, "", content, "", m.help.View(m.keys))
}

func (m Model) renderParameters() string {
	lines := make([]string, 0, len(m.sliders))
	for _, s := range m.sliders {
		lines = append(lines, s.Render())
	}
	left := BorderStyle.Render(strings.Join(lines, "\n"))

	var right string
	if m.summary != nil {
		right = components.MetricGrid(m.metricCards(), 2)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if m.inputErr != nil {
		body += "\n" + ErrorStyle.Render(m.inputErr.Error())
	}
	return body
}

func (m Model) metricCards() []*components.MetricCard {
	s := m.summary
	r := s.Result
	in := s.Inputs

	target := components.NewMetricCard("Coast FI Number", FormatCurrency(r.CoastFINumber))
	if r.IsCoastFI {
		target.WithNote("reached", components.TonePositive)
	} else {
		target.WithNote("have "+FormatCurrency(in.CurrentSavings), components.ToneNeutral)
	}

	timing := components.NewMetricCard("Time to Coast FI", r.TimeToCoastFI)
	switch {
	case r.IsCoastFI:
		timing.WithNote(fmt.Sprintf("coasting from age %d", in.CurrentAge), components.TonePositive)
	case r.Reachable():
		timing.WithNote(fmt.Sprintf("at age %.1f", r.AgeWhenCoastFI), components.TonePositive)
	default:
		timing.WithNote("not before retirement", components.ToneNegative)
	}

	atRetirement := components.NewMetricCard("At Retirement", FormatCurrency(r.ProjectedRetirementValue)).
		WithNote(fmt.Sprintf("age %d, nominal", in.RetirementAge), components.ToneNeutral)

	income := components.NewMetricCard("Monthly Income", FormatCurrency(r.ActualRetirementIncome))
	if diff := r.ActualRetirementIncome - in.DesiredRetirementIncome; diff >= 0 {
		income.WithNote(FormatCurrency(diff)+" over goal", components.TonePositive)
	} else {
		income.WithNote(FormatCurrency(-diff)+" short", components.ToneNegative)
	}

	return []*components.MetricCard{target, timing, atRetirement, income}
}

func (m Model) renderProjection() string {
	if m.summary == nil {
		return InfoStyle.Render("No valid inputs to project")
	}
	height := m.height - 16
	if height < 8 {
		height = 8
	}
	chart := components.ProjectionChart(m.summary.Projection, m.summary.Inputs.RetirementAge).
		WithSize(m.width-4, height)

	s := m.summary
	footer := fmt.Sprintf("Peak %s at age %d • contributed %s", FormatCurrency(s.PeakValue), s.PeakAge, FormatCurrency(s.TotalContributions))
	if s.DepletionAge > 0 {
		footer += " • " + ErrorStyle.Render(fmt.Sprintf("savings run out at age %d", s.DepletionAge))
	} else {
		footer += fmt.Sprintf(" • %s left at the end", FormatCurrency(s.FinalValue))
	}
	return chart.Render() + "\n" + footer
}

func (m Model) renderCompare() string {
	header := fmt.Sprintf("%-24s %6s %14s %-24s %12s", "Scenario", "Retire", "Coast FI #", "Time to Coast FI", "Income/mo")
	rows := []string{TableHeaderStyle.Render(header)}

	if m.comparison != nil {
		for i := range m.comparison.Scenarios {
			s := &m.comparison.Scenarios[i]
			row := compareRow(s.Name, s)
			if i == m.scenarioIndex {
				row = SelectedItemStyle.Render(row)
			} else {
				row = TableCellStyle.Render(row)
			}
			rows = append(rows, row)
		}
	}
	if m.summary != nil {
		rows = append(rows, InfoStyle.Render(compareRow(m.scenarioName+" (edited)", m.summary)))
	}
	return BorderStyle.Render(strings.Join(rows, "\n"))
}

func compareRow(name string, s *domain.ScenarioSummary) string {
	if len(name) > 24 {
		name = name[:23] + "…"
	}
	return fmt.Sprintf("%-24s %6d %14s %-24s %12s", name, s.Inputs.RetirementAge,
		FormatCurrency(s.Result.CoastFINumber), s.Result.TimeToCoastFI, FormatCurrency(s.Result.ActualRetirementIncome))
}
