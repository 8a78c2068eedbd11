package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.Profile{
			Name:                    "Alex",
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
			StartYear:          2025,
		},
		Scenarios: []domain.Scenario{
			{Name: "Base"},
			{Name: "Double Down", MonthlyContributions: domain.DecimalPtr(decimal.NewFromInt(2000))},
		},
	}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestNewModelWithConfig(t *testing.T) {
	m := NewModelWithConfig(testConfig())

	require.NotNil(t, m.summary)
	assert.Equal(t, "Base", m.scenarioName)
	assert.Equal(t, 1000.0, m.summary.Inputs.MonthlyContributions)
	assert.Equal(t, domain.StatusBeyondRetirementAge, m.summary.Result.TimeToCoastFI)
	require.NotNil(t, m.comparison)
	assert.Len(t, m.comparison.Scenarios, 2)
	assert.Nil(t, m.Init())
}

func TestAdjustContributions(t *testing.T) {
	m := NewModelWithConfig(testConfig())
	m = press(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, paramContributions, m.focused)

	m = press(t, m, keyRight, keyRight)
	assert.Equal(t, 1200.0, m.summary.Inputs.MonthlyContributions)

	m = press(t, m, keyLeft)
	assert.Equal(t, 1100.0, m.summary.Inputs.MonthlyContributions)
}

func TestFocusWraps(t *testing.T) {
	m := NewModelWithConfig(testConfig())
	m = press(t, m, keyUp)
	assert.Equal(t, paramWithdrawalRate, m.focused)
	assert.True(t, m.sliders[paramWithdrawalRate].IsFocused)
	assert.False(t, m.sliders[paramCurrentAge].IsFocused)

	m = press(t, m, keyDown)
	assert.Equal(t, paramCurrentAge, m.focused)
}

func TestScenarioNavigation(t *testing.T) {
	m := NewModelWithConfig(testConfig())

	m = press(t, m, runes("n"))
	assert.Equal(t, "Double Down", m.scenarioName)
	assert.Equal(t, 2000.0, m.summary.Inputs.MonthlyContributions)
	assert.Equal(t, "20 years and 8 months", m.summary.Result.TimeToCoastFI)

	m = press(t, m, runes("n"))
	assert.Equal(t, "Base", m.scenarioName, "wraps around")

	m = press(t, m, runes("p"))
	assert.Equal(t, "Double Down", m.scenarioName)
}

func TestResetRestoresScenarioInputs(t *testing.T) {
	m := NewModelWithConfig(testConfig())
	m = press(t, m, keyDown, keyDown, keyDown, keyRight, runes("r"))
	assert.Equal(t, 1000.0, m.summary.Inputs.MonthlyContributions)
	assert.Equal(t, paramCurrentAge, m.focused)
}

func TestInvalidInputsKeepLastSummary(t *testing.T) {
	m := NewModelWithConfig(testConfig())
	before := m.summary

	m.sliders[paramRetirementAge].SetValue(30)
	m = m.recalculate()

	require.Error(t, m.inputErr)
	assert.Contains(t, m.inputErr.Error(), "retirement age must be greater than current age")
	assert.Same(t, before, m.summary)
	assert.Contains(t, m.View(), "retirement age must be greater than current age")
}

func TestSceneCycling(t *testing.T) {
	m := NewModelWithConfig(testConfig())
	assert.Contains(t, m.View(), "Coast FI Number")

	m = press(t, m, keyTab)
	assert.Equal(t, SceneProjection, m.scene)
	assert.Contains(t, m.View(), "Portfolio value by age")

	m = press(t, m, keyTab)
	assert.Equal(t, SceneCompare, m.scene)
	view := m.View()
	assert.Contains(t, view, "Double Down")
	assert.Contains(t, view, "Base (edited)")

	m = press(t, m, keyTab)
	assert.Equal(t, SceneParameters, m.scene)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, SceneCompare, m.scene)
}

func TestQuit(t *testing.T) {
	m := NewModelWithConfig(testConfig())
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestLoadingAndErrors(t *testing.T) {
	m := NewModel("plan.yaml")
	assert.True(t, m.loading)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading plan")

	// keys other than quit are ignored until a plan is loaded
	m = press(t, m, keyDown, keyTab)
	assert.Equal(t, SceneParameters, m.scene)

	updated, _ := m.Update(ErrorMsg{Err: errors.New("boom")})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Error: boom")
}

func TestConfigLoadedMsg(t *testing.T) {
	m := NewModel("plan.yaml")
	updated, _ := m.Update(ConfigLoadedMsg{Config: testConfig()})
	m = updated.(Model)

	assert.False(t, m.loading)
	require.NotNil(t, m.summary)
	assert.Equal(t, 2025, m.summary.Projection[0].Year)
}

func TestInitLoadsMissingFile(t *testing.T) {
	cmd := NewModel("does-not-exist.yaml").Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	assert.Error(t, msg.Err)
}

func TestWindowSize(t *testing.T) {
	m := NewModelWithConfig(testConfig())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 120, m.help.Width)
}
