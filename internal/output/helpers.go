package output

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

// NotAvailable is rendered in place of NaN or infinite amounts
const NotAvailable = "n/a"

// FormatCurrency formats an amount as dollars with two decimals
func FormatCurrency(amount float64) string {
	if !domain.IsFinite(amount) {
		return NotAvailable
	}
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatPercentage formats a percentage number (7 means 7%)
func FormatPercentage(amount float64) string {
	if !domain.IsFinite(amount) {
		return NotAvailable
	}
	return decimal.NewFromFloat(amount).StringFixed(2) + "%"
}

// FormatAge renders a fractional age such as 52.67 to one decimal
func FormatAge(age float64) string {
	if !domain.IsFinite(age) {
		return NotAvailable
	}
	return decimal.NewFromFloat(age).StringFixed(1)
}

// FormatNumber renders a plain number with two decimals, for machine-readable outputs
func FormatNumber(v float64) string {
	if !domain.IsFinite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Recommendation names the scenario that best serves the retirement goal
type Recommendation struct {
	ScenarioName string
	Reason       string
	IncomeDiff   float64 // monthly, versus the first scenario
}

// AnalyzeScenarios picks the scenario with the highest sustainable income, preferring
// scenarios that meet their income goal. Returns a zero Recommendation when empty.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}

	best := -1
	bestIncome := math.Inf(-1)
	bestMeets := false
	for i, s := range results.Scenarios {
		income := s.Result.ActualRetirementIncome
		if !domain.IsFinite(income) {
			continue
		}
		meets := income >= s.Inputs.DesiredRetirementIncome
		if best == -1 || (meets && !bestMeets) || (meets == bestMeets && income > bestIncome) {
			best, bestIncome, bestMeets = i, income, meets
		}
	}
	if best == -1 {
		return Recommendation{}
	}

	chosen := results.Scenarios[best]
	rec := Recommendation{
		ScenarioName: chosen.Name,
		IncomeDiff:   bestIncome - results.Scenarios[0].Result.ActualRetirementIncome,
	}
	if bestMeets {
		rec.Reason = fmt.Sprintf("sustains %s per month, meeting the %s goal",
			FormatCurrency(bestIncome), FormatCurrency(chosen.Inputs.DesiredRetirementIncome))
	} else {
		rec.Reason = fmt.Sprintf("sustains the most income (%s per month) but falls short of %s",
			FormatCurrency(bestIncome), FormatCurrency(chosen.Inputs.DesiredRetirementIncome))
	}
	return rec
}

// DefaultAssumptions is rendered when a comparison carries no plan assumptions
var DefaultAssumptions = []string{
	"Returns compound monthly at the expected annual rate",
	"Desired income is monthly, in today's dollars",
	"Withdrawals after retirement stay fixed at the inflated income target",
}

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
