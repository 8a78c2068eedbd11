package solver

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a solver result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("COAST FI SOLVER RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Target:       %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Status:       %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:   %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:  %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("SOLUTION\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if result.RequiredContribution != nil {
		sb.WriteString(fmt.Sprintf("Monthly Contribution: $%s (reach Coast FI by age %d)\n",
			formatCurrency(*result.RequiredContribution), result.Request.TargetAge))
	}
	if result.RequiredSavings != nil {
		sb.WriteString(fmt.Sprintf("Required Savings:     $%s\n", formatCurrency(*result.RequiredSavings)))
	}
	if result.ClosedFormSavings != nil {
		sb.WriteString(fmt.Sprintf("Coast FI Number:      $%s\n", formatCurrency(*result.ClosedFormSavings)))
	}
	if result.EarliestRetirementAge != nil {
		sb.WriteString(fmt.Sprintf("Retirement Age:       %d\n", *result.EarliestRetirementAge))
	}
	sb.WriteString("\n")

	out := result.Outcome
	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Time to Coast FI:     %s\n", out.TimeToCoastFI))
	sb.WriteString(fmt.Sprintf("Projected Value:      $%s\n", formatCurrency(out.ProjectedRetirementValue)))
	sb.WriteString(fmt.Sprintf("Monthly Income:       $%s (goal $%s)\n",
		formatCurrency(out.ActualRetirementIncome), formatCurrency(result.Inputs.DesiredRetirementIncome)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMulti formats the results of SolveAll
func (tf *TableFormatter) FormatMulti(result *MultiResult) string {
	var sb strings.Builder

	for i := range result.Results {
		sb.WriteString(tf.Format(&result.Results[i]))
	}

	if len(result.Failures) > 0 {
		sb.WriteString("UNSOLVED\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, f := range result.Failures {
			sb.WriteString(fmt.Sprintf("• %s\n", f))
		}
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result interface{}) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

// formatCurrency renders an amount with two decimals, or n/a when it is not finite
func formatCurrency(v float64) string {
	if !domain.IsFinite(v) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
