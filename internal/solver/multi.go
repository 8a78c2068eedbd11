package solver

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/coastfi/internal/domain"
)

// SolveAll runs every target for the inputs and collects recommendations.
// Targets that cannot be solved are reported in Failures rather than failing the run.
func (s *Solver) SolveAll(ctx context.Context, in domain.CoastFIInputs, targetAge, maxAge int) (*MultiResult, error) {
	requests := []Request{
		{Inputs: in, Target: TargetSavings},
		{Inputs: in, Target: TargetContribution, TargetAge: targetAge},
		{Inputs: in, Target: TargetRetirementAge, MaxAge: maxAge},
	}

	multi := &MultiResult{}
	for _, req := range requests {
		result, err := s.Solve(ctx, req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			multi.Failures = append(multi.Failures, fmt.Sprintf("%s: %v", req.Target, err))
			continue
		}
		multi.Results = append(multi.Results, *result)
	}

	if len(multi.Results) == 0 {
		return nil, &SolverError{
			Operation: "solve_all",
			Message:   "no target could be solved",
		}
	}

	multi.Recommendations = recommendations(in, multi.Results)
	return multi, nil
}

func recommendations(in domain.CoastFIInputs, results []Result) []string {
	var recs []string

	for _, r := range results {
		switch {
		case r.RequiredSavings != nil:
			gap := *r.RequiredSavings - in.CurrentSavings
			if gap <= 0 {
				recs = append(recs, "You have already reached Coast FI")
			} else {
				recs = append(recs, fmt.Sprintf("Coast FI today requires $%s invested, $%s more than you have",
					formatCurrency(*r.RequiredSavings), formatCurrency(gap)))
			}
		case r.RequiredContribution != nil:
			rec := fmt.Sprintf("Contribute $%s per month to reach Coast FI by age %d",
				formatCurrency(*r.RequiredContribution), r.Request.TargetAge)
			if delta := *r.RequiredContribution - in.MonthlyContributions; delta > 0 {
				rec += fmt.Sprintf(" ($%s more than today)", formatCurrency(delta))
			}
			recs = append(recs, rec)
		case r.EarliestRetirementAge != nil:
			recs = append(recs, fmt.Sprintf("Retiring at %d sustains $%s per month in today's dollars",
				*r.EarliestRetirementAge, formatCurrency(r.Outcome.ActualRetirementIncome)))
		}
	}

	return recs
}
