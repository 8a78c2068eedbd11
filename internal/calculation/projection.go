package calculation

import (
	"math"
	"time"

	"github.com/rgehrsitz/coastfi/internal/domain"
)

const (
	// RetirementYearsShown is how far past retirement the projection runs
	RetirementYearsShown = 25
	// MaxProjectionAge caps the projection regardless of retirement age
	MaxProjectionAge = 100
)

// ProjectionEndAge returns the last age included in a projection
func ProjectionEndAge(in domain.CoastFIInputs) int {
	end := in.RetirementAge + RetirementYearsShown
	if end > MaxProjectionAge {
		end = MaxProjectionAge
	}
	return end
}

// GenerateProjections produces the year-by-year projection starting in the current calendar year
func GenerateProjections(in domain.CoastFIInputs) []domain.InvestmentProjection {
	return GenerateProjectionsFrom(in, time.Now().Year())
}

// GenerateProjectionsFrom produces one projection point per age from the current age to
// ProjectionEndAge, labelling the first point with startYear.
//
// Up to and including the retirement age each year compounds monthly and adds the monthly
// contribution. After retirement each month compounds and then withdraws a fixed amount:
// the desired income inflated once to the retirement date. The balance never goes below zero.
func GenerateProjectionsFrom(in domain.CoastFIInputs, startYear int) []domain.InvestmentProjection {
	r := ratesFor(in)
	years := in.YearsToRetirement()
	endAge := ProjectionEndAge(in)

	monthlyWithdrawal := in.DesiredRetirementIncome * math.Pow(1+r.annualInflation, float64(years))

	capacity := endAge - in.CurrentAge + 1
	if capacity < 0 {
		capacity = 0
	}
	projections := make([]domain.InvestmentProjection, 0, capacity)

	value := in.CurrentSavings
	totalContributions := 0.0

	for age := in.CurrentAge; age <= endAge; age++ {
		switch {
		case age == in.CurrentAge:
			// starting point, nothing simulated yet
		case age <= in.RetirementAge:
			for month := 0; month < 12; month++ {
				value = value*(1+r.monthlyReturn) + in.MonthlyContributions
				totalContributions += in.MonthlyContributions
			}
		default:
			for month := 0; month < 12; month++ {
				value = math.Max(0, value*(1+r.monthlyReturn)-monthlyWithdrawal)
			}
		}

		elapsed := age - in.CurrentAge
		projections = append(projections, domain.InvestmentProjection{
			Age:                 age,
			Year:                startYear + elapsed,
			Value:               value,
			ContributionsToDate: totalContributions,
			RealValue:           value / math.Pow(1+r.annualInflation, float64(elapsed)),
		})
	}

	return projections
}
