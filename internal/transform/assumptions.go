package transform

import (
	"fmt"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	minRate = decimal.NewFromInt(-99)
	maxRate = decimal.NewFromInt(100)
)

// SetExpectedReturn changes the expected annual return (percent, e.g. 6 for 6%)
type SetExpectedReturn struct {
	Rate decimal.Decimal
}

func (se *SetExpectedReturn) Name() string {
	return "set_expected_return"
}

func (se *SetExpectedReturn) Description() string {
	return fmt.Sprintf("Change expected return to %s%%", se.Rate.StringFixed(1))
}

func (se *SetExpectedReturn) Validate(base *domain.Scenario) error {
	if se.Rate.LessThan(minRate) || se.Rate.GreaterThan(maxRate) {
		return NewTransformError(se.Name(), "validate", fmt.Sprintf("return must be between -99 and 100, got %s", se.Rate.String()), nil)
	}
	return requireResolved(se.Name(), base)
}

func (se *SetExpectedReturn) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.ExpectedReturn = domain.DecimalPtr(se.Rate)
	return modified, nil
}

// SetInflation changes the general inflation rate assumption.
// This affects the future cost of the income target and the real value of the projection.
type SetInflation struct {
	Rate decimal.Decimal
}

func (si *SetInflation) Name() string {
	return "set_inflation"
}

func (si *SetInflation) Description() string {
	return fmt.Sprintf("Change inflation rate to %s%%", si.Rate.StringFixed(1))
}

func (si *SetInflation) Validate(base *domain.Scenario) error {
	if si.Rate.LessThan(minRate) || si.Rate.GreaterThan(maxRate) {
		return NewTransformError(si.Name(), "validate", fmt.Sprintf("inflation must be between -99 and 100, got %s", si.Rate.String()), nil)
	}
	return requireResolved(si.Name(), base)
}

func (si *SetInflation) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.InflationRate = domain.DecimalPtr(si.Rate)
	return modified, nil
}

// SetWithdrawalRate changes the safe withdrawal rate
type SetWithdrawalRate struct {
	Rate decimal.Decimal
}

func (sw *SetWithdrawalRate) Name() string {
	return "set_withdrawal_rate"
}

func (sw *SetWithdrawalRate) Description() string {
	return fmt.Sprintf("Use a %s%% safe withdrawal rate", sw.Rate.StringFixed(2))
}

func (sw *SetWithdrawalRate) Validate(base *domain.Scenario) error {
	if !sw.Rate.IsPositive() || sw.Rate.GreaterThan(maxRate) {
		return NewTransformError(sw.Name(), "validate", fmt.Sprintf("withdrawal rate must be in (0, 100], got %s", sw.Rate.String()), nil)
	}
	return requireResolved(sw.Name(), base)
}

func (sw *SetWithdrawalRate) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.SafeWithdrawalRate = domain.DecimalPtr(sw.Rate)
	return modified, nil
}
