package transform

import (
	"fmt"

	"github.com/rgehrsitz/coastfi/internal/domain"
)

// MaxRetirementAge bounds retirement-age transforms
const MaxRetirementAge = 100

// PostponeRetirement delays retirement by a number of years.
// This is useful for exploring "work one more year" scenarios.
type PostponeRetirement struct {
	Years int // Number of years to postpone (non-negative)
}

func (pr *PostponeRetirement) Name() string {
	return "postpone_retirement"
}

func (pr *PostponeRetirement) Description() string {
	return fmt.Sprintf("Postpone retirement by %d %s", pr.Years, yearsWord(pr.Years))
}

func (pr *PostponeRetirement) Validate(base *domain.Scenario) error {
	if pr.Years < 0 {
		return NewTransformError(pr.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", pr.Years), nil)
	}
	if err := requireResolved(pr.Name(), base); err != nil {
		return err
	}
	if *base.RetirementAge+pr.Years > MaxRetirementAge {
		return NewTransformError(pr.Name(), "validate",
			fmt.Sprintf("retirement age %d would exceed %d", *base.RetirementAge+pr.Years, MaxRetirementAge), nil)
	}
	return nil
}

func (pr *PostponeRetirement) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	*modified.RetirementAge += pr.Years
	return modified, nil
}

// RetireEarlier brings retirement forward by a number of years
type RetireEarlier struct {
	Years int // Number of years to retire earlier (non-negative)
}

func (re *RetireEarlier) Name() string {
	return "retire_earlier"
}

func (re *RetireEarlier) Description() string {
	return fmt.Sprintf("Retire %d %s earlier", re.Years, yearsWord(re.Years))
}

func (re *RetireEarlier) Validate(base *domain.Scenario) error {
	if re.Years < 0 {
		return NewTransformError(re.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", re.Years), nil)
	}
	if err := requireResolved(re.Name(), base); err != nil {
		return err
	}
	if *base.RetirementAge-re.Years <= 0 {
		return NewTransformError(re.Name(), "validate",
			fmt.Sprintf("retirement age %d minus %d years is not a valid age", *base.RetirementAge, re.Years), nil)
	}
	return nil
}

func (re *RetireEarlier) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	*modified.RetirementAge -= re.Years
	return modified, nil
}

// SetRetirementAge sets an absolute retirement age
type SetRetirementAge struct {
	Age int
}

func (sr *SetRetirementAge) Name() string {
	return "set_retirement_age"
}

func (sr *SetRetirementAge) Description() string {
	return fmt.Sprintf("Retire at age %d", sr.Age)
}

func (sr *SetRetirementAge) Validate(base *domain.Scenario) error {
	if sr.Age <= 0 || sr.Age > MaxRetirementAge {
		return NewTransformError(sr.Name(), "validate", fmt.Sprintf("age must be between 1 and %d, got %d", MaxRetirementAge, sr.Age), nil)
	}
	return requireResolved(sr.Name(), base)
}

func (sr *SetRetirementAge) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.RetirementAge = domain.IntPtr(sr.Age)
	return modified, nil
}

func yearsWord(n int) string {
	if n == 1 {
		return "year"
	}
	return "years"
}
