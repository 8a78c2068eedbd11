package domain

import (
	"math"

	json "github.com/goccy/go-json"
)

// CoastFIInputs holds the numeric inputs shared by the Coast FI calculation and the
// projection generator. Percentages are expressed as numbers (7 means 7%).
// Callers are responsible for validating ranges before use.
type CoastFIInputs struct {
	CurrentAge              int     `json:"currentAge" yaml:"current_age"`
	RetirementAge           int     `json:"retirementAge" yaml:"retirement_age"`
	CurrentSavings          float64 `json:"currentSavings" yaml:"current_savings"`
	MonthlyContributions    float64 `json:"monthlyContributions" yaml:"monthly_contributions"`
	DesiredRetirementIncome float64 `json:"desiredRetirementIncome" yaml:"desired_retirement_income"` // monthly, today's dollars
	ExpectedReturn          float64 `json:"expectedReturn" yaml:"expected_return"`
	InflationRate           float64 `json:"inflationRate" yaml:"inflation_rate"`
	SafeWithdrawalRate      float64 `json:"safeWithdrawalRate" yaml:"safe_withdrawal_rate"`
}

// YearsToRetirement returns RetirementAge - CurrentAge.
func (in CoastFIInputs) YearsToRetirement() int {
	return in.RetirementAge - in.CurrentAge
}

// Status strings reported in CoastFIResult.TimeToCoastFI.
const (
	StatusAlreadyAchieved     = "Already achieved!"
	StatusNeverNoContrib      = "Never (no contributions)"
	StatusBeyondRetirementAge = "Beyond retirement age"
)

// CoastFIResult is the outcome of a Coast FI calculation
type CoastFIResult struct {
	CoastFINumber            float64 `json:"coastFINumber" yaml:"coast_fi_number"`
	IsCoastFI                bool    `json:"isCoastFI" yaml:"is_coast_fi"`
	YearsToCoastFI           float64 `json:"yearsToCoastFI" yaml:"years_to_coast_fi"`
	AgeWhenCoastFI           float64 `json:"ageWhenCoastFI" yaml:"age_when_coast_fi"`
	ProjectedRetirementValue float64 `json:"projectedRetirementValue" yaml:"projected_retirement_value"` // nominal
	ActualRetirementIncome   float64 `json:"actualRetirementIncome" yaml:"actual_retirement_income"`     // monthly, today's dollars
	TimeToCoastFI            string  `json:"timeToCoastFI" yaml:"time_to_coast_fi"`
}

// InvestmentProjection is a single age step of the year-by-year projection
type InvestmentProjection struct {
	Age                 int     `json:"age" yaml:"age"`
	Year                int     `json:"year" yaml:"year"`
	Value               float64 `json:"value" yaml:"value"`
	ContributionsToDate float64 `json:"contributionsToDate" yaml:"contributions_to_date"`
	RealValue           float64 `json:"realValue" yaml:"real_value"`
}

// IsDepleted reports whether the account has been drawn down to zero
func (p InvestmentProjection) IsDepleted() bool {
	return p.Value <= 0
}

// Reachable reports whether Coast FI is reached before retirement (or already has been)
func (r CoastFIResult) Reachable() bool {
	return r.TimeToCoastFI != StatusNeverNoContrib && r.TimeToCoastFI != StatusBeyondRetirementAge
}

// MarshalJSON encodes non-finite amounts (a zero withdrawal rate, for instance) as null,
// since JSON has no representation for NaN or infinity.
func (r CoastFIResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CoastFINumber            *float64 `json:"coastFINumber"`
		IsCoastFI                bool     `json:"isCoastFI"`
		YearsToCoastFI           *float64 `json:"yearsToCoastFI"`
		AgeWhenCoastFI           *float64 `json:"ageWhenCoastFI"`
		ProjectedRetirementValue *float64 `json:"projectedRetirementValue"`
		ActualRetirementIncome   *float64 `json:"actualRetirementIncome"`
		TimeToCoastFI            string   `json:"timeToCoastFI"`
	}{
		CoastFINumber:            FiniteOrNil(r.CoastFINumber),
		IsCoastFI:                r.IsCoastFI,
		YearsToCoastFI:           FiniteOrNil(r.YearsToCoastFI),
		AgeWhenCoastFI:           FiniteOrNil(r.AgeWhenCoastFI),
		ProjectedRetirementValue: FiniteOrNil(r.ProjectedRetirementValue),
		ActualRetirementIncome:   FiniteOrNil(r.ActualRetirementIncome),
		TimeToCoastFI:            r.TimeToCoastFI,
	})
}

// FiniteOrNil returns nil for NaN and infinities
func FiniteOrNil(v float64) *float64 {
	if IsFinite(v) {
		return &v
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
