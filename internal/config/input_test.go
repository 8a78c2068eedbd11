package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.Profile{
			Name:                    "John Doe",
			CurrentAge:              30,
			RetirementAge:           65,
			CurrentSavings:          decimal.NewFromInt(50000),
			MonthlyContributions:    decimal.NewFromInt(1000),
			DesiredRetirementIncome: decimal.NewFromInt(4000),
		},
		GlobalAssumptions: domain.GlobalAssumptions{
			ExpectedReturn:     decimal.NewFromInt(7),
			InflationRate:      decimal.NewFromInt(3),
			SafeWithdrawalRate: decimal.NewFromInt(4),
		},
		Scenarios: []domain.Scenario{{Name: "Test Scenario"}},
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(filepath.Join("testdata", "plan.yaml"))
	require.NoError(t, err)

	assertExamplePlan(t, config)
}

func TestLoadFromFile_TOML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(filepath.Join("testdata", "plan.toml"))
	require.NoError(t, err)

	assertExamplePlan(t, config)
}

func assertExamplePlan(t *testing.T, config *domain.Configuration) {
	t.Helper()

	assert.Equal(t, "Alex Example", config.Profile.Name)
	assert.Equal(t, 30, config.Profile.CurrentAge)
	assert.Equal(t, 65, config.Profile.RetirementAge)
	assert.True(t, config.Profile.CurrentSavings.Equal(decimal.NewFromInt(50000)))
	assert.True(t, config.GlobalAssumptions.ExpectedReturn.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 2025, config.GlobalAssumptions.StartYear)
	require.Len(t, config.Scenarios, 3)

	early, ok := config.FindScenario("retire at 60")
	require.True(t, ok)
	require.NotNil(t, early.RetirementAge)
	assert.Equal(t, 60, *early.RetirementAge)
	assert.Equal(t, "Stop working five years earlier", early.Description)

	in := config.Inputs(early)
	assert.Equal(t, 60, in.RetirementAge)
	assert.Equal(t, 1500.0, in.MonthlyContributions)
	assert.Equal(t, 7.0, in.ExpectedReturn, "unset overrides inherit the plan")

	conservative, ok := config.FindScenario("Conservative")
	require.True(t, ok)
	assert.Equal(t, 5.5, config.Inputs(conservative).ExpectedReturn)
	assert.Equal(t, 3.5, config.Inputs(conservative).SafeWithdrawalRate)
}

func TestLoadFromBytes_JSON(t *testing.T) {
	data := []byte(`{
		"profile": {"name": "J", "current_age": 40, "retirement_age": 55,
			"current_savings": "250000", "monthly_contributions": 2000, "desired_retirement_income": 6000},
		"assumptions": {"expected_return": 6, "inflation_rate": 2.5, "safe_withdrawal_rate": 4}
	}`)

	config, err := NewInputParser().LoadFromBytes(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 55, config.Profile.RetirementAge)
	assert.True(t, config.Profile.CurrentSavings.Equal(decimal.NewFromInt(250000)))
	assert.Len(t, config.EffectiveScenarios(), 1)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFromFile_InvalidAges(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "invalid_ages.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retirement age (65) must be greater than current age (70)")
}

func TestLoadFromBytes_Malformed(t *testing.T) {
	_, err := NewInputParser().LoadFromBytes([]byte("profile: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	_, err = NewInputParser().LoadFromBytes([]byte("{}"), Format("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported plan format")
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("plan.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("plan.yml"))
	assert.Equal(t, FormatTOML, FormatForPath("plan.TOML"))
	assert.Equal(t, FormatJSON, FormatForPath("/tmp/plan.json"))
	assert.Equal(t, FormatYAML, FormatForPath("plan"))
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"valid", func(c *domain.Configuration) {}, ""},
		{"negative savings", func(c *domain.Configuration) {
			c.Profile.CurrentSavings = decimal.NewFromInt(-1)
		}, "current savings cannot be negative"},
		{"negative contributions", func(c *domain.Configuration) {
			c.Profile.MonthlyContributions = decimal.NewFromInt(-5)
		}, "monthly contributions cannot be negative"},
		{"zero withdrawal rate", func(c *domain.Configuration) {
			c.GlobalAssumptions.SafeWithdrawalRate = decimal.Zero
		}, "safe withdrawal rate"},
		{"return at -100%", func(c *domain.Configuration) {
			c.GlobalAssumptions.ExpectedReturn = decimal.NewFromInt(-100)
		}, "expected return must be between"},
		{"inflation too high", func(c *domain.Configuration) {
			c.GlobalAssumptions.InflationRate = decimal.NewFromInt(150)
		}, "inflation rate must be between"},
		{"unnamed scenario", func(c *domain.Configuration) {
			c.Scenarios = append(c.Scenarios, domain.Scenario{})
		}, "name is required"},
		{"duplicate scenario", func(c *domain.Configuration) {
			c.Scenarios = append(c.Scenarios, domain.Scenario{Name: "test scenario"})
		}, "duplicate scenario name"},
		{"scenario retires before current age", func(c *domain.Configuration) {
			c.Scenarios[0].RetirementAge = domain.IntPtr(25)
		}, "retirement age must be greater than current age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)

			err := NewInputParser().ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateInputs_CollectsEveryProblem(t *testing.T) {
	err := NewInputParser().ValidateInputs(domain.CoastFIInputs{
		CurrentAge:         50,
		RetirementAge:      50,
		CurrentSavings:     -1,
		SafeWithdrawalRate: 0,
	})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 3)
	assert.Contains(t, err.Error(), "retirement age must be greater than current age")
}
