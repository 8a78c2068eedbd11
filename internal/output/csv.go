package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/rgehrsitz/coastfi/internal/domain"
)

// CSVSummarizer writes one row per scenario, sorted by name
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "RetirementAge", "CoastFINumber", "IsCoastFI", "YearsToCoastFI",
		"AgeWhenCoastFI", "TimeToCoastFI", "ProjectedRetirementValue", "ActualRetirementIncome",
		"DesiredRetirementIncome", "PeakValue", "DepletionAge"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			strconv.Itoa(sc.Inputs.RetirementAge),
			FormatNumber(sc.Result.CoastFINumber),
			strconv.FormatBool(sc.Result.IsCoastFI),
			FormatNumber(sc.Result.YearsToCoastFI),
			FormatNumber(sc.Result.AgeWhenCoastFI),
			sc.Result.TimeToCoastFI,
			FormatNumber(sc.Result.ProjectedRetirementValue),
			FormatNumber(sc.Result.ActualRetirementIncome),
			FormatNumber(sc.Inputs.DesiredRetirementIncome),
			FormatNumber(sc.PeakValue),
			strconv.Itoa(sc.DepletionAge),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ProjectionCSVFormatter writes every projection point of every scenario
type ProjectionCSVFormatter struct{}

func (p ProjectionCSVFormatter) Name() string { return "detailed-csv" }

func (p ProjectionCSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Age", "Year", "Value", "ContributionsToDate", "RealValue", "Retired"}); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, pt := range sc.Projection {
			row := []string{
				sc.Name,
				strconv.Itoa(pt.Age),
				strconv.Itoa(pt.Year),
				FormatNumber(pt.Value),
				FormatNumber(pt.ContributionsToDate),
				FormatNumber(pt.RealValue),
				strconv.FormatBool(pt.Age > sc.Inputs.RetirementAge),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
