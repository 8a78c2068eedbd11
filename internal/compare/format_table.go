package compare

import (
	"fmt"
	"math"
	"strings"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("COAST FI SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 86) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 26
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Coast FI #",
		numWidth, "Time to Coast",
		numWidth, "At Retirement",
		numWidth, "Income/mo"))
	sb.WriteString(strings.Repeat("-", 86) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 86) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Coast FI Number:  %s$%s\n",
				tf.deltaSymbol(alt.CoastFINumberDiff), tf.formatAmount(math.Abs(alt.CoastFINumberDiff))))

			if alt.Reachable && compSet.BaseResult != nil && compSet.BaseResult.Reachable {
				if alt.YearsToCoastFIDiff != 0 {
					sb.WriteString(fmt.Sprintf("  Time to Coast FI: %s%.1f years\n",
						tf.deltaSymbol(alt.YearsToCoastFIDiff), math.Abs(alt.YearsToCoastFIDiff)))
				}
			} else {
				sb.WriteString(fmt.Sprintf("  Time to Coast FI: %s\n", alt.TimeToCoastFI))
			}

			sb.WriteString(fmt.Sprintf("  Projected Value:  %s$%s\n",
				tf.deltaSymbol(alt.ProjectedValueDiff), tf.formatAmount(math.Abs(alt.ProjectedValueDiff))))

			sb.WriteString(fmt.Sprintf("  Monthly Income:   %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.IncomeDiffFromBase),
				tf.formatAmount(math.Abs(alt.IncomeDiffFromBase)),
				formatFloat(alt.IncomePctFromBase, 1)))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	timeStr := result.TimeToCoastFI
	switch {
	case result.IsCoastFI:
		timeStr = "achieved"
	case !result.Reachable:
		timeStr = "never"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatAmount(result.CoastFINumber),
		numWidth, tf.truncate(timeStr, numWidth),
		numWidth, "$"+tf.formatAmount(result.ProjectedRetirementValue),
		numWidth, "$"+tf.formatAmount(result.ActualRetirementIncome))
}

// formatAmount formats an amount for display (in thousands or millions)
func (tf *TableFormatter) formatAmount(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "n/a"
	case math.Abs(v) >= 1000000:
		return fmt.Sprintf("%.2fM", v/1000000)
	case math.Abs(v) >= 1000:
		return fmt.Sprintf("%.1fK", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}

// deltaSymbol returns a + for positive deltas; negative values carry their own sign
func (tf *TableFormatter) deltaSymbol(delta float64) string {
	switch {
	case delta > 0:
		return "+"
	case delta < 0:
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		incomeChange := "="
		if alt.IncomeDiffFromBase > 0 {
			incomeChange = fmt.Sprintf("+$%s/mo", tf.formatAmount(alt.IncomeDiffFromBase))
		} else if alt.IncomeDiffFromBase < 0 {
			incomeChange = fmt.Sprintf("-$%s/mo", tf.formatAmount(math.Abs(alt.IncomeDiffFromBase)))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, incomeChange))
	}

	return sb.String()
}
