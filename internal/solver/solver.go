package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/domain"
)

// Solver finds the input values at which Coast FI outcomes change
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve routes a request to the matching search
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance <= 0 {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case TargetContribution:
		return s.solveContribution(ctx, req)
	case TargetSavings:
		return s.solveSavings(ctx, req)
	case TargetRetirementAge:
		return s.solveRetirementAge(ctx, req)
	default:
		return nil, &SolverError{
			Operation: "solve",
			Message:   fmt.Sprintf("unsupported target: %s", req.Target),
		}
	}
}

// RequiredContribution finds the smallest monthly contribution that reaches Coast FI by targetAge
func (s *Solver) RequiredContribution(ctx context.Context, in domain.CoastFIInputs, targetAge int) (*Result, error) {
	return s.Solve(ctx, Request{Inputs: in, Target: TargetContribution, TargetAge: targetAge})
}

// RequiredSavings finds the current savings at which Coast FI is already reached
func (s *Solver) RequiredSavings(ctx context.Context, in domain.CoastFIInputs) (*Result, error) {
	return s.Solve(ctx, Request{Inputs: in, Target: TargetSavings})
}

// EarliestRetirementAge finds the first retirement age whose sustainable income meets the goal
func (s *Solver) EarliestRetirementAge(ctx context.Context, in domain.CoastFIInputs, maxAge int) (*Result, error) {
	return s.Solve(ctx, Request{Inputs: in, Target: TargetRetirementAge, MaxAge: maxAge})
}

func (s *Solver) solveContribution(ctx context.Context, req Request) (*Result, error) {
	in := req.Inputs
	if req.TargetAge <= in.CurrentAge || req.TargetAge >= in.RetirementAge {
		return nil, &SolverError{
			Operation: "solve_contribution",
			Message: fmt.Sprintf("target age %d must be after the current age (%d) and before retirement (%d)",
				req.TargetAge, in.CurrentAge, in.RetirementAge),
		}
	}

	meets := func(contribution float64) bool {
		trial := in
		trial.MonthlyContributions = contribution
		r := calculation.CalculateCoastFI(trial)
		return r.Reachable() && r.AgeWhenCoastFI <= float64(req.TargetAge)+1e-9
	}

	value, iterations, err := s.bisect(ctx, req, "solve_contribution", math.Max(in.MonthlyContributions, 100), s.Options.MaxContribution, meets)
	if err != nil {
		return nil, err
	}

	solved := in
	solved.MonthlyContributions = value
	result := s.newResult(req, solved, iterations, value == 0)
	result.RequiredContribution = &value
	return result, nil
}

func (s *Solver) solveSavings(ctx context.Context, req Request) (*Result, error) {
	in := req.Inputs
	closedForm := calculation.CalculateCoastFI(in).CoastFINumber
	if !domain.IsFinite(closedForm) {
		return nil, &SolverError{
			Operation: "solve_savings",
			Message:   "coast FI number is not finite for these inputs",
		}
	}

	meets := func(savings float64) bool {
		trial := in
		trial.CurrentSavings = savings
		return calculation.CalculateCoastFI(trial).IsCoastFI
	}

	value, iterations, err := s.bisect(ctx, req, "solve_savings", math.Max(in.CurrentSavings, 1000), s.Options.MaxSavings, meets)
	if err != nil {
		return nil, err
	}

	solved := in
	solved.CurrentSavings = value
	result := s.newResult(req, solved, iterations, value == 0)
	result.RequiredSavings = &value
	result.ClosedFormSavings = &closedForm
	return result, nil
}

// solveRetirementAge scans ages in order since income is not monotone in the retirement age
// when returns trail inflation
func (s *Solver) solveRetirementAge(ctx context.Context, req Request) (*Result, error) {
	in := req.Inputs
	maxAge := req.MaxAge
	if maxAge == 0 {
		maxAge = calculation.MaxProjectionAge
	}
	if maxAge <= in.CurrentAge {
		return nil, &SolverError{
			Operation: "solve_retirement_age",
			Message:   fmt.Sprintf("max age %d must be after the current age (%d)", maxAge, in.CurrentAge),
		}
	}

	iterations := 0
	for age := in.CurrentAge + 1; age <= maxAge; age++ {
		iterations++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		trial := in
		trial.RetirementAge = age
		if calculation.CalculateCoastFI(trial).ActualRetirementIncome >= in.DesiredRetirementIncome {
			result := s.newResult(req, trial, iterations, true)
			result.EarliestRetirementAge = &age
			result.ConvergenceInfo = fmt.Sprintf("Evaluated %d retirement ages", iterations)
			return result, nil
		}
	}

	return nil, &SolverError{
		Operation: "solve_retirement_age",
		Message:   fmt.Sprintf("no retirement age up to %d sustains the desired income", maxAge),
	}
}

// bisect finds the smallest non-negative value for which meets holds, assuming meets is
// monotone (false below the answer, true at and above it). The answer is rounded up to the cent.
func (s *Solver) bisect(ctx context.Context, req Request, op string, start, limit float64, meets func(float64) bool) (float64, int, error) {
	if meets(0) {
		return 0, 0, nil
	}

	iterations := 0
	lo, hi := 0.0, start
	for !meets(hi) {
		iterations++
		if err := ctx.Err(); err != nil {
			return 0, iterations, err
		}
		if hi >= limit || iterations >= req.MaxIterations {
			return 0, iterations, &SolverError{
				Operation: op,
				Message:   fmt.Sprintf("no value up to %.2f meets the goal", hi),
			}
		}
		lo = hi
		hi *= 2
	}

	for hi-lo > req.Tolerance && iterations < req.MaxIterations {
		iterations++
		if err := ctx.Err(); err != nil {
			return 0, iterations, err
		}

		mid := lo + (hi-lo)/2
		if meets(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	s.logger().Debugf("%s: bracket [%.4f, %.4f] after %d iterations", op, lo, hi, iterations)

	return math.Ceil(hi*100) / 100, iterations, nil
}

func (s *Solver) newResult(req Request, solved domain.CoastFIInputs, iterations int, trivial bool) *Result {
	result := &Result{
		Request:         req,
		Success:         true,
		Iterations:      iterations,
		ConvergenceInfo: fmt.Sprintf("Bisection converged within $%.2f", req.Tolerance),
		Inputs:          solved,
		Outcome:         calculation.CalculateCoastFI(solved),
	}
	if trivial {
		result.ConvergenceInfo = "Goal already met"
	}
	if s.CalcEngine != nil {
		result.Summary = s.CalcEngine.Summarize(string(req.Target), solved, s.CalcEngine.StartYear(nil))
	}
	return result
}

func (s *Solver) logger() calculation.Logger {
	if s.CalcEngine == nil || s.CalcEngine.Logger == nil {
		return calculation.NopLogger{}
	}
	return s.CalcEngine.Logger
}
