package solver

import (
	"github.com/rgehrsitz/coastfi/internal/domain"
)

// Target defines which input the solver searches over
type Target string

const (
	TargetContribution  Target = "contribution"   // Monthly contribution needed to reach Coast FI by an age
	TargetSavings       Target = "savings"        // Savings at which Coast FI is reached today
	TargetRetirementAge Target = "retirement_age" // Earliest retirement age that meets the income goal
)

// ParseTarget maps a CLI name to a Target
func ParseTarget(s string) (Target, bool) {
	switch Target(s) {
	case TargetContribution, TargetSavings, TargetRetirementAge:
		return Target(s), true
	}
	return "", false
}

// Request defines the parameters for a solver run
type Request struct {
	Inputs        domain.CoastFIInputs `json:"inputs"`
	Target        Target               `json:"target"`
	TargetAge     int                  `json:"targetAge,omitempty"` // contribution: age by which Coast FI must be reached
	MaxAge        int                  `json:"maxAge,omitempty"`    // retirement_age: last age considered
	MaxIterations int                  `json:"maxIterations"`
	Tolerance     float64              `json:"tolerance"` // Convergence tolerance in dollars
}

// Result contains the outcome of a solver run
type Result struct {
	Request         Request `json:"request"`
	Success         bool    `json:"success"`
	Iterations      int     `json:"iterations"`
	ConvergenceInfo string  `json:"convergenceInfo"`

	// Solved parameters; only the one matching the target is set
	RequiredContribution  *float64 `json:"requiredContribution,omitempty"`
	RequiredSavings       *float64 `json:"requiredSavings,omitempty"`
	ClosedFormSavings     *float64 `json:"closedFormSavings,omitempty"` // Coast FI number, for cross-checking RequiredSavings
	EarliestRetirementAge *int     `json:"earliestRetirementAge,omitempty"`

	// Outcome at the solved parameters
	Inputs  domain.CoastFIInputs    `json:"solvedInputs"`
	Outcome domain.CoastFIResult    `json:"outcome"`
	Summary *domain.ScenarioSummary `json:"-"`
}

// MultiResult contains the results of solving every target for one set of inputs
type MultiResult struct {
	Results         []Result `json:"results"`
	Failures        []string `json:"failures,omitempty"`
	Recommendations []string `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance       float64 // Convergence tolerance in dollars
	MaxIterations   int     // Maximum bisection steps, including bracket expansion
	MaxContribution float64 // Upper bound when expanding the contribution bracket
	MaxSavings      float64 // Upper bound when expanding the savings bracket
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:       0.01, // one cent
		MaxIterations:   200,
		MaxContribution: 1e9,
		MaxSavings:      1e13,
	}
}

// SolverError represents errors from the solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
