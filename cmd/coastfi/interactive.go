package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rgehrsitz/coastfi/internal/config"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

// answers holds the raw text of the interactive form
type answers struct {
	CurrentAge    string
	RetirementAge string
	Savings       string
	Contributions string
	Income        string
	Return        string
	Inflation     string
	Withdrawal    string
}

func newAnswers(in domain.CoastFIInputs) answers {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return answers{
		CurrentAge:    strconv.Itoa(in.CurrentAge),
		RetirementAge: strconv.Itoa(in.RetirementAge),
		Savings:       num(in.CurrentSavings),
		Contributions: num(in.MonthlyContributions),
		Income:        num(in.DesiredRetirementIncome),
		Return:        num(in.ExpectedReturn),
		Inflation:     num(in.InflationRate),
		Withdrawal:    num(in.SafeWithdrawalRate),
	}
}

// inputs parses every answer; the first unparseable field is reported
func (a answers) inputs() (domain.CoastFIInputs, error) {
	var in domain.CoastFIInputs
	var err error
	if in.CurrentAge, err = parseAge("current age", a.CurrentAge); err != nil {
		return in, err
	}
	if in.RetirementAge, err = parseAge("retirement age", a.RetirementAge); err != nil {
		return in, err
	}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"current savings", a.Savings, &in.CurrentSavings},
		{"monthly contributions", a.Contributions, &in.MonthlyContributions},
		{"desired retirement income", a.Income, &in.DesiredRetirementIncome},
		{"expected return", a.Return, &in.ExpectedReturn},
		{"inflation rate", a.Inflation, &in.InflationRate},
		{"safe withdrawal rate", a.Withdrawal, &in.SafeWithdrawalRate},
	}
	for _, f := range fields {
		if *f.dst, err = parseNumber(f.name, f.raw); err != nil {
			return in, err
		}
	}
	return in, nil
}

func parseAge(name, raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || age <= 0 {
		return 0, fmt.Errorf("%s must be a positive whole number, got %q", name, raw)
	}
	return age, nil
}

// parseNumber accepts amounts such as "$50,000" and rates such as "7%"
func parseNumber(name, raw string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, raw)
	}
	return v, nil
}

func validateAge(s string) error {
	_, err := parseAge("age", s)
	return err
}

func validateNumber(s string) error {
	_, err := parseNumber("value", s)
	return err
}

func newInputForm(a *answers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Current age").Value(&a.CurrentAge).Validate(validateAge),
			huh.NewInput().Title("Retirement age").Value(&a.RetirementAge).Validate(validateAge),
		).Title("Timeline"),
		huh.NewGroup(
			huh.NewInput().Title("Current savings").Value(&a.Savings).Validate(validateNumber),
			huh.NewInput().Title("Monthly contributions").Value(&a.Contributions).Validate(validateNumber),
			huh.NewInput().Title("Desired monthly retirement income").
				Description("In today's dollars").Value(&a.Income).Validate(validateNumber),
		).Title("Money"),
		huh.NewGroup(
			huh.NewInput().Title("Expected annual return (%)").Value(&a.Return).Validate(validateNumber),
			huh.NewInput().Title("Inflation rate (%)").Value(&a.Inflation).Validate(validateNumber),
			huh.NewInput().Title("Safe withdrawal rate (%)").Value(&a.Withdrawal).Validate(validateNumber),
		).Title("Assumptions"),
	).WithTheme(huh.ThemeCharm())
}

// promptInputs asks for every calculator input, pre-filled with defaults
func promptInputs(defaults domain.CoastFIInputs) (domain.CoastFIInputs, error) {
	a := newAnswers(defaults)
	if err := newInputForm(&a).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return defaults, errors.New("cancelled")
		}
		return defaults, fmt.Errorf("interactive input failed: %w", err)
	}
	in, err := a.inputs()
	if err != nil {
		return defaults, err
	}
	if err := config.NewInputParser().ValidateInputs(in); err != nil {
		return defaults, err
	}
	return in, nil
}

// planFromInputs replaces a plan's profile and assumptions with in and drops its scenarios
func planFromInputs(plan *domain.Configuration, in domain.CoastFIInputs) *domain.Configuration {
	updated := *plan
	updated.Profile.CurrentAge = in.CurrentAge
	updated.Profile.RetirementAge = in.RetirementAge
	updated.Profile.CurrentSavings = decimal.NewFromFloat(in.CurrentSavings)
	updated.Profile.MonthlyContributions = decimal.NewFromFloat(in.MonthlyContributions)
	updated.Profile.DesiredRetirementIncome = decimal.NewFromFloat(in.DesiredRetirementIncome)
	updated.GlobalAssumptions.ExpectedReturn = decimal.NewFromFloat(in.ExpectedReturn)
	updated.GlobalAssumptions.InflationRate = decimal.NewFromFloat(in.InflationRate)
	updated.GlobalAssumptions.SafeWithdrawalRate = decimal.NewFromFloat(in.SafeWithdrawalRate)
	updated.Scenarios = nil
	return &updated
}
