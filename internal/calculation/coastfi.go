package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/coastfi/internal/domain"
)

// rates holds the decimal-fraction form of the percentage inputs
type rates struct {
	annualReturn    float64
	annualInflation float64
	withdrawalRate  float64
	monthlyReturn   float64
}

func ratesFor(in domain.CoastFIInputs) rates {
	annualReturn := in.ExpectedReturn / 100
	return rates{
		annualReturn:    annualReturn,
		annualInflation: in.InflationRate / 100,
		withdrawalRate:  in.SafeWithdrawalRate / 100,
		// Monthly-compounded equivalent of the annual rate
		monthlyReturn: math.Pow(1+annualReturn, 1.0/12) - 1,
	}
}

// CalculateCoastFI computes the Coast FI number for the inputs, whether it has been reached,
// when it will be reached under the contribution schedule, and the income the projected
// retirement balance can sustain.
//
// Inputs are not validated. Degenerate values (retirement age at or before the current age,
// a zero withdrawal rate) produce NaN or infinite results rather than a panic.
func CalculateCoastFI(in domain.CoastFIInputs) domain.CoastFIResult {
	years := in.YearsToRetirement()
	r := ratesFor(in)

	// Annual income needed at retirement, in future dollars
	futureDesiredIncome := in.DesiredRetirementIncome * 12 * math.Pow(1+r.annualInflation, float64(years))
	requiredRetirementAmount := futureDesiredIncome / r.withdrawalRate

	coastFINumber := requiredRetirementAmount / math.Pow(1+r.annualReturn, float64(years))
	isCoastFI := in.CurrentSavings >= coastFINumber

	result := domain.CoastFIResult{
		CoastFINumber:  coastFINumber,
		IsCoastFI:      isCoastFI,
		YearsToCoastFI: 0,
		AgeWhenCoastFI: float64(in.CurrentAge),
		TimeToCoastFI:  domain.StatusAlreadyAchieved,
	}

	if !isCoastFI {
		if in.MonthlyContributions == 0 {
			result.TimeToCoastFI = domain.StatusNeverNoContrib
			result.AgeWhenCoastFI = float64(in.RetirementAge)
			result.YearsToCoastFI = float64(years)
		} else if months, ok := monthsToCoastFI(in, r, requiredRetirementAmount); ok {
			result.YearsToCoastFI = float64(months) / 12
			result.AgeWhenCoastFI = float64(in.CurrentAge) + result.YearsToCoastFI
			result.TimeToCoastFI = FormatDuration(months)
		} else {
			result.TimeToCoastFI = domain.StatusBeyondRetirementAge
			result.AgeWhenCoastFI = float64(in.RetirementAge)
			result.YearsToCoastFI = float64(years)
		}
	}

	result.ProjectedRetirementValue = accumulate(in.CurrentSavings, in.MonthlyContributions, r.monthlyReturn, years*12)

	// Sustainable monthly withdrawal in future dollars, then in today's purchasing power
	futureMonthlyIncome := result.ProjectedRetirementValue * r.withdrawalRate / 12
	result.ActualRetirementIncome = futureMonthlyIncome / math.Pow(1+r.annualInflation, float64(years))

	return result
}

// monthsToCoastFI scans month by month, growing the balance and adding the contribution,
// and returns the first month at which the balance meets the Coast FI amount still required
// over the remaining years. The final month (no years remaining) is never checked.
func monthsToCoastFI(in domain.CoastFIInputs, r rates, requiredRetirementAmount float64) (int, bool) {
	years := in.YearsToRetirement()
	balance := in.CurrentSavings

	for month := 1; month <= years*12; month++ {
		balance = balance*(1+r.monthlyReturn) + in.MonthlyContributions

		remainingYears := float64(years) - float64(month)/12
		if remainingYears <= 0 {
			continue
		}
		requiredNow := requiredRetirementAmount / math.Pow(1+r.annualReturn, remainingYears)
		if balance >= requiredNow {
			return month, true
		}
	}
	return 0, false
}

// accumulate applies monthly growth then the monthly contribution for the given number of months
func accumulate(balance, contribution, monthlyReturn float64, months int) float64 {
	for m := 0; m < months; m++ {
		balance = balance*(1+monthlyReturn) + contribution
	}
	return balance
}

// FormatDuration renders a month count as "7 months", "3 years" or "1 year and 2 months"
func FormatDuration(months int) string {
	years := months / 12
	rem := months % 12

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", rem, plural(rem, "month", "months"))
	case rem == 0:
		return fmt.Sprintf("%d %s", years, plural(years, "year", "years"))
	default:
		return fmt.Sprintf("%d %s and %d %s",
			years, plural(years, "year", "years"),
			rem, plural(rem, "month", "months"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
