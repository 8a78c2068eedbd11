package output

import (
	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/coastfi/internal/domain"
)

// JSONFormatter emits the full results as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
