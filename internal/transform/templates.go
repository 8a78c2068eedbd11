package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Category    string
	Description string
	Transforms  []ScenarioTransform
}

// Template categories, in help order
const (
	CategoryTiming      = "Retirement Timing"
	CategorySavings     = "Savings"
	CategoryMarket      = "Market Assumptions"
	CategoryLifestyle   = "Lifestyle"
	CategoryCombination = "Combination Strategies"
)

var categoryOrder = []string{CategoryTiming, CategorySavings, CategoryMarket, CategoryLifestyle, CategoryCombination}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common Coast FI what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "retire_early_5yr",
		Category:    CategoryTiming,
		Description: "Retire 5 years earlier",
		Transforms: []ScenarioTransform{
			&RetireEarlier{Years: 5},
		},
	})

	registry.Register(Template{
		Name:        "retire_late_5yr",
		Category:    CategoryTiming,
		Description: "Retire 5 years later",
		Transforms: []ScenarioTransform{
			&PostponeRetirement{Years: 5},
		},
	})

	registry.Register(Template{
		Name:        "double_contributions",
		Category:    CategorySavings,
		Description: "Double monthly contributions",
		Transforms: []ScenarioTransform{
			&ScaleContributions{Factor: decimal.NewFromInt(2)},
		},
	})

	registry.Register(Template{
		Name:        "stop_contributions",
		Category:    CategorySavings,
		Description: "Stop contributing today and coast",
		Transforms: []ScenarioTransform{
			&ScaleContributions{Factor: decimal.Zero},
		},
	})

	registry.Register(Template{
		Name:        "conservative_returns",
		Category:    CategoryMarket,
		Description: "5% expected return with a 3.5% withdrawal rate",
		Transforms: []ScenarioTransform{
			&SetExpectedReturn{Rate: decimal.NewFromInt(5)},
			&SetWithdrawalRate{Rate: decimal.NewFromFloat(3.5)},
		},
	})

	registry.Register(Template{
		Name:        "high_inflation",
		Category:    CategoryMarket,
		Description: "Sustained 5% inflation",
		Transforms: []ScenarioTransform{
			&SetInflation{Rate: decimal.NewFromInt(5)},
		},
	})

	registry.Register(Template{
		Name:        "lean_fire",
		Category:    CategoryLifestyle,
		Description: "Cut the retirement income target by 25%",
		Transforms: []ScenarioTransform{
			&ScaleDesiredIncome{Factor: decimal.NewFromFloat(0.75)},
		},
	})

	registry.Register(Template{
		Name:        "fat_fire",
		Category:    CategoryLifestyle,
		Description: "Raise the retirement income target by 50%",
		Transforms: []ScenarioTransform{
			&ScaleDesiredIncome{Factor: decimal.NewFromFloat(1.5)},
		},
	})

	registry.Register(Template{
		Name:        "conservative",
		Category:    CategoryCombination,
		Description: "Conservative: 5% return, 3.5% withdrawal rate, retire 2 years later",
		Transforms: []ScenarioTransform{
			&SetExpectedReturn{Rate: decimal.NewFromInt(5)},
			&SetWithdrawalRate{Rate: decimal.NewFromFloat(3.5)},
			&PostponeRetirement{Years: 2},
		},
	})

	registry.Register(Template{
		Name:        "aggressive",
		Category:    CategoryCombination,
		Description: "Aggressive: 8% return, 1.5x contributions, retire 5 years earlier",
		Transforms: []ScenarioTransform{
			&SetExpectedReturn{Rate: decimal.NewFromInt(8)},
			&ScaleContributions{Factor: decimal.NewFromFloat(1.5)},
			&RetireEarlier{Years: 5},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a resolved base scenario.
// The result is renamed after the template and carries its description.
func ApplyTemplate(base *domain.Scenario, template Template) (*domain.Scenario, error) {
	result, err := ApplyTransforms(base, template.Transforms)
	if err != nil {
		return nil, err
	}
	result.Name = template.Name
	result.Description = template.Description
	return result, nil
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	categories := make(map[string][]Template)
	for _, name := range registry.List() {
		t := registry.templates[name]
		category := t.Category
		if category == "" {
			category = CategoryCombination
		}
		categories[category] = append(categories[category], t)
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	for _, category := range categoryOrder {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  coastfi compare plan.yaml --with retire_early_5yr,double_contributions\n")
	sb.WriteString("  coastfi compare plan.yaml --with conservative,aggressive\n")

	return sb.String()
}
