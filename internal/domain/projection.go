package domain

// ScenarioSummary provides the calculator output and derived metrics for one scenario
type ScenarioSummary struct {
	Name        string                 `json:"name" yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Inputs      CoastFIInputs          `json:"inputs" yaml:"inputs"`
	Result      CoastFIResult          `json:"result" yaml:"result"`
	Projection  []InvestmentProjection `json:"projection" yaml:"projection"`

	// Derived from the projection
	PeakValue             float64 `json:"peakValue" yaml:"peak_value"`
	PeakAge               int     `json:"peakAge" yaml:"peak_age"`
	ValueAtRetirement     float64 `json:"valueAtRetirement" yaml:"value_at_retirement"`
	RealValueAtRetirement float64 `json:"realValueAtRetirement" yaml:"real_value_at_retirement"`
	TotalContributions    float64 `json:"totalContributions" yaml:"total_contributions"`
	DepletionAge          int     `json:"depletionAge,omitempty" yaml:"depletion_age,omitempty"` // 0 when the balance lasts the whole projection
	FinalValue            float64 `json:"finalValue" yaml:"final_value"`
}

// LastsThroughProjection reports whether the balance stays positive to the end of the projection
func (s *ScenarioSummary) LastsThroughProjection() bool {
	return s.DepletionAge == 0
}

// ScenarioComparison bundles the summaries of every scenario in a plan
type ScenarioComparison struct {
	PlanName    string            `json:"planName" yaml:"plan_name"`
	StartYear   int               `json:"startYear" yaml:"start_year"`
	Scenarios   []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
	Assumptions []string          `json:"assumptions" yaml:"assumptions"` // Dynamic assumptions from the plan
}
