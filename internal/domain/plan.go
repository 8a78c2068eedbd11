package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultScenarioName is used when a plan file declares no scenarios
const DefaultScenarioName = "Base"

// Profile describes the saver
type Profile struct {
	Name                    string          `yaml:"name" json:"name" toml:"name"`
	CurrentAge              int             `yaml:"current_age" json:"current_age" toml:"current_age"`
	RetirementAge           int             `yaml:"retirement_age" json:"retirement_age" toml:"retirement_age"`
	CurrentSavings          decimal.Decimal `yaml:"current_savings" json:"current_savings" toml:"current_savings"`
	MonthlyContributions    decimal.Decimal `yaml:"monthly_contributions" json:"monthly_contributions" toml:"monthly_contributions"`
	DesiredRetirementIncome decimal.Decimal `yaml:"desired_retirement_income" json:"desired_retirement_income" toml:"desired_retirement_income"` // Monthly, today's dollars
}

// GlobalAssumptions contains the market assumptions shared by all scenarios.
// Rates are percentages (7 means 7%).
type GlobalAssumptions struct {
	ExpectedReturn     decimal.Decimal `yaml:"expected_return" json:"expected_return" toml:"expected_return"`
	InflationRate      decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate" toml:"inflation_rate"`
	SafeWithdrawalRate decimal.Decimal `yaml:"safe_withdrawal_rate" json:"safe_withdrawal_rate" toml:"safe_withdrawal_rate"`
	StartYear          int             `yaml:"start_year,omitempty" json:"start_year,omitempty" toml:"start_year,omitempty"` // 0 means the current calendar year
}

// Scenario is a named set of overrides applied on top of the profile and assumptions.
// Nil fields inherit the plan value.
type Scenario struct {
	Name                    string           `yaml:"name" json:"name" toml:"name"`
	Description             string           `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	RetirementAge           *int             `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty" toml:"retirement_age,omitempty"`
	CurrentSavings          *decimal.Decimal `yaml:"current_savings,omitempty" json:"current_savings,omitempty" toml:"current_savings,omitempty"`
	MonthlyContributions    *decimal.Decimal `yaml:"monthly_contributions,omitempty" json:"monthly_contributions,omitempty" toml:"monthly_contributions,omitempty"`
	DesiredRetirementIncome *decimal.Decimal `yaml:"desired_retirement_income,omitempty" json:"desired_retirement_income,omitempty" toml:"desired_retirement_income,omitempty"`
	ExpectedReturn          *decimal.Decimal `yaml:"expected_return,omitempty" json:"expected_return,omitempty" toml:"expected_return,omitempty"`
	InflationRate           *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty" toml:"inflation_rate,omitempty"`
	SafeWithdrawalRate      *decimal.Decimal `yaml:"safe_withdrawal_rate,omitempty" json:"safe_withdrawal_rate,omitempty" toml:"safe_withdrawal_rate,omitempty"`
}

// Configuration represents a complete plan file
type Configuration struct {
	Profile           Profile           `yaml:"profile" json:"profile" toml:"profile"`
	GlobalAssumptions GlobalAssumptions `yaml:"assumptions" json:"assumptions" toml:"assumptions"`
	Scenarios         []Scenario        `yaml:"scenarios,omitempty" json:"scenarios,omitempty" toml:"scenarios,omitempty"`
}

// EffectiveScenarios returns the declared scenarios, or a single empty Base scenario
func (c *Configuration) EffectiveScenarios() []Scenario {
	if len(c.Scenarios) == 0 {
		return []Scenario{{Name: DefaultScenarioName}}
	}
	return c.Scenarios
}

// FindScenario looks up a scenario by name (case-insensitive)
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	scenarios := c.EffectiveScenarios()
	for i := range scenarios {
		if strings.EqualFold(scenarios[i].Name, name) {
			return &scenarios[i], true
		}
	}
	return nil, false
}

// Inputs resolves a scenario against the plan into calculator inputs.
// A nil scenario yields the plan's own values.
func (c *Configuration) Inputs(s *Scenario) CoastFIInputs {
	p := c.Profile
	a := c.GlobalAssumptions

	in := CoastFIInputs{
		CurrentAge:              p.CurrentAge,
		RetirementAge:           p.RetirementAge,
		CurrentSavings:          p.CurrentSavings.InexactFloat64(),
		MonthlyContributions:    p.MonthlyContributions.InexactFloat64(),
		DesiredRetirementIncome: p.DesiredRetirementIncome.InexactFloat64(),
		ExpectedReturn:          a.ExpectedReturn.InexactFloat64(),
		InflationRate:           a.InflationRate.InexactFloat64(),
		SafeWithdrawalRate:      a.SafeWithdrawalRate.InexactFloat64(),
	}
	if s == nil {
		return in
	}

	if s.RetirementAge != nil {
		in.RetirementAge = *s.RetirementAge
	}
	override := func(dst *float64, v *decimal.Decimal) {
		if v != nil {
			*dst = v.InexactFloat64()
		}
	}
	override(&in.CurrentSavings, s.CurrentSavings)
	override(&in.MonthlyContributions, s.MonthlyContributions)
	override(&in.DesiredRetirementIncome, s.DesiredRetirementIncome)
	override(&in.ExpectedReturn, s.ExpectedReturn)
	override(&in.InflationRate, s.InflationRate)
	override(&in.SafeWithdrawalRate, s.SafeWithdrawalRate)
	return in
}

// DeepCopy returns a copy of the scenario that shares no pointers with the original
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	cp := *s
	if s.RetirementAge != nil {
		age := *s.RetirementAge
		cp.RetirementAge = &age
	}
	cp.CurrentSavings = copyDecimal(s.CurrentSavings)
	cp.MonthlyContributions = copyDecimal(s.MonthlyContributions)
	cp.DesiredRetirementIncome = copyDecimal(s.DesiredRetirementIncome)
	cp.ExpectedReturn = copyDecimal(s.ExpectedReturn)
	cp.InflationRate = copyDecimal(s.InflationRate)
	cp.SafeWithdrawalRate = copyDecimal(s.SafeWithdrawalRate)
	return &cp
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

// DecimalPtr is a convenience for building scenario overrides
func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// IntPtr is a convenience for building scenario overrides
func IntPtr(i int) *int {
	return &i
}

// Resolve returns a copy of the scenario with every override populated from the plan,
// so transforms can adjust concrete values.
func (c *Configuration) Resolve(s *Scenario) *Scenario {
	resolved := s.DeepCopy()
	if resolved == nil {
		resolved = &Scenario{Name: DefaultScenarioName}
	}
	if resolved.RetirementAge == nil {
		resolved.RetirementAge = IntPtr(c.Profile.RetirementAge)
	}
	fill := func(dst **decimal.Decimal, v decimal.Decimal) {
		if *dst == nil {
			*dst = DecimalPtr(v)
		}
	}
	fill(&resolved.CurrentSavings, c.Profile.CurrentSavings)
	fill(&resolved.MonthlyContributions, c.Profile.MonthlyContributions)
	fill(&resolved.DesiredRetirementIncome, c.Profile.DesiredRetirementIncome)
	fill(&resolved.ExpectedReturn, c.GlobalAssumptions.ExpectedReturn)
	fill(&resolved.InflationRate, c.GlobalAssumptions.InflationRate)
	fill(&resolved.SafeWithdrawalRate, c.GlobalAssumptions.SafeWithdrawalRate)
	return resolved
}
