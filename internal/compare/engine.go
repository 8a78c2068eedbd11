package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/config"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/rgehrsitz/coastfi/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario; empty uses the first scenario
	Templates        []string // Template names or "name:key=value" transform specs
	ConfigPath       string
}

// Compare runs the base scenario plus one alternative per template
func (ce *CompareEngine) Compare(
	ctx context.Context,
	cfg *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	baseScenario, err := findBase(cfg, options.BaseScenarioName)
	if err != nil {
		return nil, err
	}

	baseSummary, err := ce.CalcEngine.RunScenario(ctx, cfg, baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseSummary)

	resolved := cfg.Resolve(baseScenario)
	parser := config.NewInputParser()
	alternatives := []ComparisonResult{}

	for _, name := range options.Templates {
		template, err := ce.lookupTemplate(name)
		if err != nil {
			return nil, err
		}

		modified, err := transform.ApplyTemplate(resolved, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", name, err)
		}
		modified.Name = baseScenario.Name + "_" + template.Name

		if err := parser.ValidateInputs(cfg.Inputs(modified)); err != nil {
			return nil, fmt.Errorf("template %s produces invalid inputs: %w", name, err)
		}

		altSummary, err := ce.CalcEngine.RunScenario(ctx, cfg, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", name, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altSummary)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	return ce.newSet(cfg, options, baseScenario.Name, baseResult, alternatives), nil
}

// CompareScenarios compares explicit scenarios from the plan (not using templates)
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	cfg *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	baseScenario, err := findBase(cfg, baseScenarioName)
	if err != nil {
		return nil, err
	}

	baseSummary, err := ce.CalcEngine.RunScenario(ctx, cfg, baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseSummary)

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		scenario, ok := cfg.FindScenario(altName)
		if !ok {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altSummary, err := ce.CalcEngine.RunScenario(ctx, cfg, scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", altName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altSummary)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	return ce.newSet(cfg, CompareOptions{}, baseScenario.Name, baseResult, alternatives), nil
}

// lookupTemplate resolves a built-in template, or wraps a single transform spec as an ad-hoc template
func (ce *CompareEngine) lookupTemplate(name string) (transform.Template, error) {
	if template, ok := ce.TemplateRegistry.Get(name); ok {
		return template, nil
	}

	if ce.TransformRegistry != nil {
		if tr, err := ce.TransformRegistry.ParseTransformSpec(name); err == nil {
			return transform.Template{
				Name:        tr.Name(),
				Description: tr.Description(),
				Transforms:  []transform.ScenarioTransform{tr},
			}, nil
		}
	}

	return transform.Template{}, fmt.Errorf("template %s not found", name)
}

func (ce *CompareEngine) newSet(cfg *domain.Configuration, options CompareOptions, baseName string, base ComparisonResult, alternatives []ComparisonResult) *ComparisonSet {
	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &base,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
		Assumptions:        calculation.PlanAssumptions(cfg),
		PlanName:           cfg.Profile.Name,
		StartYear:          ce.CalcEngine.StartYear(cfg),
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet
}

func findBase(cfg *domain.Configuration, name string) (*domain.Scenario, error) {
	if name == "" {
		scenarios := cfg.EffectiveScenarios()
		return &scenarios[0], nil
	}
	scenario, ok := cfg.FindScenario(name)
	if !ok {
		return nil, fmt.Errorf("base scenario %s not found in configuration", name)
	}
	return scenario, nil
}
