package transform

import (
	"fmt"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

// AdjustContributions adds (or, with a negative delta, removes) a fixed monthly amount
type AdjustContributions struct {
	Delta decimal.Decimal // Monthly change in contributions
}

func (ac *AdjustContributions) Name() string {
	return "adjust_contributions"
}

func (ac *AdjustContributions) Description() string {
	if ac.Delta.IsNegative() {
		return fmt.Sprintf("Contribute $%s less per month", ac.Delta.Abs().StringFixed(2))
	}
	return fmt.Sprintf("Contribute $%s more per month", ac.Delta.StringFixed(2))
}

func (ac *AdjustContributions) Validate(base *domain.Scenario) error {
	if err := requireResolved(ac.Name(), base); err != nil {
		return err
	}
	if base.MonthlyContributions.Add(ac.Delta).IsNegative() {
		return NewTransformError(ac.Name(), "validate",
			fmt.Sprintf("contributions of %s adjusted by %s would be negative",
				base.MonthlyContributions.StringFixed(2), ac.Delta.StringFixed(2)), nil)
	}
	return nil
}

func (ac *AdjustContributions) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.MonthlyContributions = domain.DecimalPtr(base.MonthlyContributions.Add(ac.Delta))
	return modified, nil
}

// ScaleContributions multiplies monthly contributions by a factor (0 stops contributing)
type ScaleContributions struct {
	Factor decimal.Decimal
}

func (sc *ScaleContributions) Name() string {
	return "scale_contributions"
}

func (sc *ScaleContributions) Description() string {
	if sc.Factor.IsZero() {
		return "Stop contributing"
	}
	return fmt.Sprintf("Scale contributions by %sx", sc.Factor.String())
}

func (sc *ScaleContributions) Validate(base *domain.Scenario) error {
	if sc.Factor.IsNegative() {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("factor must be non-negative, got %s", sc.Factor.String()), nil)
	}
	return requireResolved(sc.Name(), base)
}

func (sc *ScaleContributions) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.MonthlyContributions = domain.DecimalPtr(base.MonthlyContributions.Mul(sc.Factor).Round(2))
	return modified, nil
}

// AddLumpSum adds a one-time amount to current savings (an inheritance, a bonus)
type AddLumpSum struct {
	Amount decimal.Decimal
}

func (al *AddLumpSum) Name() string {
	return "add_lump_sum"
}

func (al *AddLumpSum) Description() string {
	return fmt.Sprintf("Add a $%s lump sum to savings", al.Amount.StringFixed(2))
}

func (al *AddLumpSum) Validate(base *domain.Scenario) error {
	if err := requireResolved(al.Name(), base); err != nil {
		return err
	}
	if base.CurrentSavings.Add(al.Amount).IsNegative() {
		return NewTransformError(al.Name(), "validate", "savings would become negative", nil)
	}
	return nil
}

func (al *AddLumpSum) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.CurrentSavings = domain.DecimalPtr(base.CurrentSavings.Add(al.Amount))
	return modified, nil
}

// SetDesiredIncome sets the monthly retirement income target in today's dollars
type SetDesiredIncome struct {
	Monthly decimal.Decimal
}

func (sd *SetDesiredIncome) Name() string {
	return "set_desired_income"
}

func (sd *SetDesiredIncome) Description() string {
	return fmt.Sprintf("Target $%s per month in retirement", sd.Monthly.StringFixed(2))
}

func (sd *SetDesiredIncome) Validate(base *domain.Scenario) error {
	if sd.Monthly.IsNegative() {
		return NewTransformError(sd.Name(), "validate", "desired income cannot be negative", nil)
	}
	return requireResolved(sd.Name(), base)
}

func (sd *SetDesiredIncome) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.DesiredRetirementIncome = domain.DecimalPtr(sd.Monthly)
	return modified, nil
}

// ScaleDesiredIncome multiplies the income target, e.g. 0.75 for a leaner retirement
type ScaleDesiredIncome struct {
	Factor decimal.Decimal
}

func (si *ScaleDesiredIncome) Name() string {
	return "scale_desired_income"
}

func (si *ScaleDesiredIncome) Description() string {
	return fmt.Sprintf("Scale retirement income target by %sx", si.Factor.String())
}

func (si *ScaleDesiredIncome) Validate(base *domain.Scenario) error {
	if si.Factor.IsNegative() {
		return NewTransformError(si.Name(), "validate", fmt.Sprintf("factor must be non-negative, got %s", si.Factor.String()), nil)
	}
	return requireResolved(si.Name(), base)
}

func (si *ScaleDesiredIncome) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.DesiredRetirementIncome = domain.DecimalPtr(base.DesiredRetirementIncome.Mul(si.Factor).Round(2))
	return modified, nil
}
