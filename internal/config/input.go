package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format identifies a plan file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Bounds applied when validating inputs at the boundary
const (
	MinAge           = 0
	MaxAge           = 120
	MaxRatePercent   = 100
	MinRatePercent   = -99 // rates at or below -100% make the compounding base non-positive
	MaxWithdrawalPct = 100
)

// InputParser handles parsing and validation of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// FormatForPath picks the plan encoding from the file extension; unknown extensions are YAML
func FormatForPath(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// LoadFromFile loads a plan from a YAML, TOML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.LoadFromBytes(data, FormatForPath(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// LoadFromBytes parses and validates a plan in the given format
func (ip *InputParser) LoadFromBytes(data []byte, format Format) (*domain.Configuration, error) {
	var config domain.Configuration

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported plan format: %s", format)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the profile, assumptions and every scenario
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}
	if err := ip.validateProfile(&config.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateGlobalAssumptions(&config.GlobalAssumptions); err != nil {
		return fmt.Errorf("global assumptions validation failed: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		key := strings.ToLower(scenario.Name)
		if seen[key] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		seen[key] = true

		if err := ip.ValidateInputs(config.Inputs(scenario)); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	return nil
}

func (ip *InputParser) validateProfile(p *domain.Profile) error {
	if p.CurrentAge < MinAge || p.CurrentAge > MaxAge {
		return fmt.Errorf("current age must be between %d and %d, got %d", MinAge, MaxAge, p.CurrentAge)
	}
	if p.RetirementAge <= p.CurrentAge {
		return fmt.Errorf("retirement age (%d) must be greater than current age (%d)", p.RetirementAge, p.CurrentAge)
	}
	if p.RetirementAge > MaxAge {
		return fmt.Errorf("retirement age must be at most %d, got %d", MaxAge, p.RetirementAge)
	}
	if p.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative")
	}
	if p.MonthlyContributions.IsNegative() {
		return fmt.Errorf("monthly contributions cannot be negative")
	}
	if p.DesiredRetirementIncome.IsNegative() {
		return fmt.Errorf("desired retirement income cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateGlobalAssumptions(a *domain.GlobalAssumptions) error {
	if err := validateRate("expected return", a.ExpectedReturn); err != nil {
		return err
	}
	if err := validateRate("inflation rate", a.InflationRate); err != nil {
		return err
	}
	if !a.SafeWithdrawalRate.IsPositive() || a.SafeWithdrawalRate.GreaterThan(decimal.NewFromInt(MaxWithdrawalPct)) {
		return fmt.Errorf("safe withdrawal rate must be greater than 0%% and at most %d%%, got %s%%",
			MaxWithdrawalPct, a.SafeWithdrawalRate.String())
	}
	if a.StartYear < 0 {
		return fmt.Errorf("start year cannot be negative")
	}
	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.LessThan(decimal.NewFromInt(MinRatePercent)) || rate.GreaterThan(decimal.NewFromInt(MaxRatePercent)) {
		return fmt.Errorf("%s must be between %d%% and %d%%, got %s%%", name, MinRatePercent, MaxRatePercent, rate.String())
	}
	return nil
}

// ValidateInputs enforces the calculator's preconditions on resolved inputs.
// The calculator itself never validates; callers run this at the boundary.
func (ip *InputParser) ValidateInputs(in domain.CoastFIInputs) error {
	var problems []string

	if in.CurrentAge < MinAge || in.CurrentAge > MaxAge {
		problems = append(problems, fmt.Sprintf("current age must be between %d and %d", MinAge, MaxAge))
	}
	if in.RetirementAge <= in.CurrentAge {
		problems = append(problems, "retirement age must be greater than current age")
	}
	if in.RetirementAge > MaxAge {
		problems = append(problems, fmt.Sprintf("retirement age must be at most %d", MaxAge))
	}
	if in.CurrentSavings < 0 {
		problems = append(problems, "current savings cannot be negative")
	}
	if in.MonthlyContributions < 0 {
		problems = append(problems, "monthly contributions cannot be negative")
	}
	if in.DesiredRetirementIncome < 0 {
		problems = append(problems, "desired retirement income cannot be negative")
	}
	if in.ExpectedReturn < MinRatePercent || in.ExpectedReturn > MaxRatePercent {
		problems = append(problems, fmt.Sprintf("expected return must be between %d%% and %d%%", MinRatePercent, MaxRatePercent))
	}
	if in.InflationRate < MinRatePercent || in.InflationRate > MaxRatePercent {
		problems = append(problems, fmt.Sprintf("inflation rate must be between %d%% and %d%%", MinRatePercent, MaxRatePercent))
	}
	if in.SafeWithdrawalRate <= 0 || in.SafeWithdrawalRate > MaxWithdrawalPct {
		problems = append(problems, fmt.Sprintf("safe withdrawal rate must be greater than 0%% and at most %d%%", MaxWithdrawalPct))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ValidationError lists every precondition an input set violates
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid inputs: " + strings.Join(e.Problems, "; ")
}
