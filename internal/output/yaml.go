package output

import (
	"github.com/rgehrsitz/coastfi/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter emits the full results as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return yaml.Marshal(results)
}
