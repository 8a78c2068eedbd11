package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/config"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/rgehrsitz/coastfi/internal/tui/components"
)

// Slider positions
const (
	paramCurrentAge = iota
	paramRetirementAge
	paramSavings
	paramContributions
	paramIncome
	paramReturn
	paramInflation
	paramWithdrawalRate
)

// Model represents the entire application state
type Model struct {
	scene  Scene
	width  int
	height int

	configPath string
	config     *domain.Configuration
	comparison *domain.ScenarioComparison

	calcEngine *calculation.CalculationEngine
	parser     *config.InputParser

	scenarioIndex int
	scenarioName  string
	sliders       []*components.ParameterSlider
	focused       int

	// Results for the current slider values; inputErr is set instead when they are invalid
	summary  *domain.ScenarioSummary
	inputErr error

	keys keyMap
	help help.Model

	err     error
	loading bool
}

// NewModel creates a model that loads the plan at configPath on Init
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		calcEngine: calculation.NewCalculationEngine(),
		parser:     config.NewInputParser(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      100,
		height:     32,
		loading:    true,
	}
}

// NewModelWithConfig creates a model around an already loaded plan
func NewModelWithConfig(cfg *domain.Configuration) Model {
	m := NewModel("")
	comparison, err := m.calcEngine.RunScenarios(context.Background(), cfg)
	if err != nil {
		m.loading = false
		m.err = err
		return m
	}
	return m.applyConfig(cfg, comparison)
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return loadConfigCmd(m.configPath, m.calcEngine)
}

// loadConfigCmd loads the plan and runs every scenario once for the compare view
func loadConfigCmd(path string, engine *calculation.CalculationEngine) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		comparison, err := engine.RunScenarios(context.Background(), cfg)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg, Comparison: comparison}
	}
}

func (m Model) applyConfig(cfg *domain.Configuration, comparison *domain.ScenarioComparison) Model {
	m.loading = false
	m.config = cfg
	m.comparison = comparison
	return m.selectScenario(0)
}

// selectScenario loads a plan scenario's resolved inputs into the sliders
func (m Model) selectScenario(index int) Model {
	scenarios := m.config.EffectiveScenarios()
	n := len(scenarios)
	index = ((index % n) + n) % n

	m.scenarioIndex = index
	m.scenarioName = scenarios[index].Name
	m.sliders = newSliders(m.config.Inputs(&scenarios[index]))
	m.focused = 0
	m.sliders[0].IsFocused = true
	return m.recalculate()
}

func newSliders(in domain.CoastFIInputs) []*components.ParameterSlider {
	return []*components.ParameterSlider{
		paramCurrentAge:     components.NewParameterSlider("Current age", components.KindYears, float64(in.CurrentAge), 18, 90, 1),
		paramRetirementAge:  components.NewParameterSlider("Retirement age", components.KindYears, float64(in.RetirementAge), 30, 100, 1),
		paramSavings:        components.NewParameterSlider("Current savings", components.KindMoney, in.CurrentSavings, 0, 2_000_000, 5000),
		paramContributions:  components.NewParameterSlider("Monthly contributions", components.KindMoney, in.MonthlyContributions, 0, 10_000, 100),
		paramIncome:         components.NewParameterSlider("Desired income / month", components.KindMoney, in.DesiredRetirementIncome, 0, 20_000, 250),
		paramReturn:         components.NewParameterSlider("Expected return", components.KindPercent, in.ExpectedReturn, -5, 15, 0.25),
		paramInflation:      components.NewParameterSlider("Inflation", components.KindPercent, in.InflationRate, 0, 10, 0.25),
		paramWithdrawalRate: components.NewParameterSlider("Safe withdrawal rate", components.KindPercent, in.SafeWithdrawalRate, 1, 10, 0.25),
	}
}

// inputs reads the current slider values
func (m Model) inputs() domain.CoastFIInputs {
	return domain.CoastFIInputs{
		CurrentAge:              int(m.sliders[paramCurrentAge].Value),
		RetirementAge:           int(m.sliders[paramRetirementAge].Value),
		CurrentSavings:          m.sliders[paramSavings].Value,
		MonthlyContributions:    m.sliders[paramContributions].Value,
		DesiredRetirementIncome: m.sliders[paramIncome].Value,
		ExpectedReturn:          m.sliders[paramReturn].Value,
		InflationRate:           m.sliders[paramInflation].Value,
		SafeWithdrawalRate:      m.sliders[paramWithdrawalRate].Value,
	}
}

// recalculate reruns the calculator for the slider values
func (m Model) recalculate() Model {
	in := m.inputs()
	if err := m.parser.ValidateInputs(in); err != nil {
		m.inputErr = err
		return m
	}
	m.inputErr = nil
	m.summary = m.calcEngine.Summarize(m.scenarioName, in, m.calcEngine.StartYear(m.config))
	return m
}
