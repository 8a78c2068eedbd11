package compare

import (
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Retirement Age",
		"Coast FI Number",
		"Coast FI",
		"Time to Coast FI",
		"Years to Coast FI",
		"Projected Retirement Value",
		"Monthly Income",
		"Coast FI Number Diff",
		"Years to Coast FI Diff",
		"Projected Value Diff",
		"Income Diff from Base",
		"Income % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		strconv.Itoa(result.RetirementAge),
		formatFloat(result.CoastFINumber, 2),
		strconv.FormatBool(result.IsCoastFI),
		result.TimeToCoastFI,
		formatFloat(result.YearsToCoastFI, 2),
		formatFloat(result.ProjectedRetirementValue, 2),
		formatFloat(result.ActualRetirementIncome, 2),
		formatFloat(result.CoastFINumberDiff, 2),
		formatFloat(result.YearsToCoastFIDiff, 2),
		formatFloat(result.ProjectedValueDiff, 2),
		formatFloat(result.IncomeDiffFromBase, 2),
		formatFloat(result.IncomePctFromBase, 2),
	}
}

func formatFloat(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", places, v)
}
