package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	// Retirement timing
	registry.Register("postpone_retirement", createPostponeRetirement)
	registry.Register("retire_earlier", createRetireEarlier)
	registry.Register("set_retirement_age", createSetRetirementAge)

	// Savings
	registry.Register("adjust_contributions", createAdjustContributions)
	registry.Register("scale_contributions", createScaleContributions)
	registry.Register("add_lump_sum", createAddLumpSum)
	registry.Register("set_desired_income", createSetDesiredIncome)
	registry.Register("scale_desired_income", createScaleDesiredIncome)

	// Market assumptions
	registry.Register("set_expected_return", createSetExpectedReturn)
	registry.Register("set_inflation", createSetInflation)
	registry.Register("set_withdrawal_rate", createSetWithdrawalRate)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "postpone_retirement:years=2"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func intParam(transform, key string, params map[string]string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func decimalParam(transform, key string, params map[string]string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// Factory functions for each transform

func createPostponeRetirement(params map[string]string) (ScenarioTransform, error) {
	years, err := intParam("postpone_retirement", "years", params)
	if err != nil {
		return nil, err
	}
	return &PostponeRetirement{Years: years}, nil
}

func createRetireEarlier(params map[string]string) (ScenarioTransform, error) {
	years, err := intParam("retire_earlier", "years", params)
	if err != nil {
		return nil, err
	}
	return &RetireEarlier{Years: years}, nil
}

func createSetRetirementAge(params map[string]string) (ScenarioTransform, error) {
	age, err := intParam("set_retirement_age", "age", params)
	if err != nil {
		return nil, err
	}
	return &SetRetirementAge{Age: age}, nil
}

func createAdjustContributions(params map[string]string) (ScenarioTransform, error) {
	delta, err := decimalParam("adjust_contributions", "delta", params)
	if err != nil {
		return nil, err
	}
	return &AdjustContributions{Delta: delta}, nil
}

func createScaleContributions(params map[string]string) (ScenarioTransform, error) {
	factor, err := decimalParam("scale_contributions", "factor", params)
	if err != nil {
		return nil, err
	}
	return &ScaleContributions{Factor: factor}, nil
}

func createAddLumpSum(params map[string]string) (ScenarioTransform, error) {
	amount, err := decimalParam("add_lump_sum", "amount", params)
	if err != nil {
		return nil, err
	}
	return &AddLumpSum{Amount: amount}, nil
}

func createSetDesiredIncome(params map[string]string) (ScenarioTransform, error) {
	monthly, err := decimalParam("set_desired_income", "monthly", params)
	if err != nil {
		return nil, err
	}
	return &SetDesiredIncome{Monthly: monthly}, nil
}

func createScaleDesiredIncome(params map[string]string) (ScenarioTransform, error) {
	factor, err := decimalParam("scale_desired_income", "factor", params)
	if err != nil {
		return nil, err
	}
	return &ScaleDesiredIncome{Factor: factor}, nil
}

func createSetExpectedReturn(params map[string]string) (ScenarioTransform, error) {
	rate, err := decimalParam("set_expected_return", "rate", params)
	if err != nil {
		return nil, err
	}
	return &SetExpectedReturn{Rate: rate}, nil
}

func createSetInflation(params map[string]string) (ScenarioTransform, error) {
	rate, err := decimalParam("set_inflation", "rate", params)
	if err != nil {
		return nil, err
	}
	return &SetInflation{Rate: rate}, nil
}

func createSetWithdrawalRate(params map[string]string) (ScenarioTransform, error) {
	rate, err := decimalParam("set_withdrawal_rate", "rate", params)
	if err != nil {
		return nil, err
	}
	return &SetWithdrawalRate{Rate: rate}, nil
}
