package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/coastfi/internal/domain"
)

// ConsoleFormatter prints a compact one-line-per-scenario summary
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COAST FI SCENARIO SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	if results.PlanName != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", results.PlanName)
	}
	for _, s := range results.Scenarios {
		mark := " "
		if s.Result.IsCoastFI {
			mark = "✓"
		}
		fmt.Fprintf(&buf, "%s %-24s Coast FI: %-14s Target: %-14s Income: %s/mo\n",
			mark, s.Name, s.Result.TimeToCoastFI, FormatCurrency(s.Result.CoastFINumber),
			FormatCurrency(s.Result.ActualRetirementIncome))
	}
	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s/mo vs %s)\n", rec.ScenarioName,
			FormatCurrency(rec.IncomeDiff), results.Scenarios[0].Name)
	}
	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter prints the full report including the year-by-year projection
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "DETAILED COAST FI ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	if results.PlanName != "" {
		fmt.Fprintf(&buf, "Plan: %s (projections start %d)\n", results.PlanName, results.StartYear)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, s := range results.Scenarios {
		writeScenario(&buf, i+1, &s)
	}

	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		fmt.Fprintf(&buf, "%s %s\n", rec.ScenarioName, rec.Reason)
	}
	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, n int, s *domain.ScenarioSummary) {
	in := s.Inputs
	r := s.Result

	fmt.Fprintf(buf, "SCENARIO %d: %s\n", n, s.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	if s.Description != "" {
		fmt.Fprintln(buf, s.Description)
	}
	fmt.Fprintf(buf, "Age %d, retiring at %d (%d years)\n", in.CurrentAge, in.RetirementAge, in.YearsToRetirement())
	fmt.Fprintf(buf, "Current Savings:         %s\n", FormatCurrency(in.CurrentSavings))
	fmt.Fprintf(buf, "Monthly Contributions:   %s\n", FormatCurrency(in.MonthlyContributions))
	fmt.Fprintf(buf, "Desired Income:          %s/mo (today's dollars)\n", FormatCurrency(in.DesiredRetirementIncome))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "COAST FI:")
	fmt.Fprintf(buf, "  Coast FI Number:       %s\n", FormatCurrency(r.CoastFINumber))
	if r.IsCoastFI {
		fmt.Fprintf(buf, "  Status:                %s\n", r.TimeToCoastFI)
	} else {
		fmt.Fprintf(buf, "  Time to Coast FI:      %s\n", r.TimeToCoastFI)
		if r.Reachable() {
			fmt.Fprintf(buf, "  Coast FI at Age:       %s\n", FormatAge(r.AgeWhenCoastFI))
		}
	}
	fmt.Fprintf(buf, "  Projected at %d:       %s\n", in.RetirementAge, FormatCurrency(r.ProjectedRetirementValue))
	fmt.Fprintf(buf, "  Sustainable Income:    %s/mo (today's dollars)\n", FormatCurrency(r.ActualRetirementIncome))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PROJECTION:")
	fmt.Fprintf(buf, "  %-5s %-6s %16s %16s %16s\n", "Age", "Year", "Value", "Contributed", "Real Value")
	for _, p := range s.Projection {
		marker := ""
		if p.Age == in.RetirementAge {
			marker = "  <- retirement"
		}
		fmt.Fprintf(buf, "  %-5d %-6d %16s %16s %16s%s\n", p.Age, p.Year,
			FormatCurrency(p.Value), FormatCurrency(p.ContributionsToDate), FormatCurrency(p.RealValue), marker)
	}
	if s.DepletionAge > 0 {
		fmt.Fprintf(buf, "  Savings run out at age %d\n", s.DepletionAge)
	} else if len(s.Projection) > 0 {
		fmt.Fprintf(buf, "  Savings last through age %d (%s remaining)\n",
			s.Projection[len(s.Projection)-1].Age, FormatCurrency(s.FinalValue))
	}
	fmt.Fprintln(buf)
}
