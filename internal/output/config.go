package output

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"gopkg.in/yaml.v3"
)

// SaveConfiguration writes a plan to filename as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
