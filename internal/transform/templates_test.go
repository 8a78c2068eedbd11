package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()
	registry.Register(Template{Name: "test_template", Description: "A test template"})

	retrieved, ok := registry.Get("test_template")
	require.True(t, ok)
	assert.Equal(t, "A test template", retrieved.Description)

	_, ok = registry.Get("TEST_TEMPLATE")
	assert.True(t, ok, "lookup is case-insensitive")

	_, ok = registry.Get("nonexistent")
	assert.False(t, ok)
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	for _, name := range []string{
		"retire_early_5yr", "retire_late_5yr", "double_contributions", "stop_contributions",
		"conservative", "aggressive", "high_inflation", "lean_fire", "fat_fire",
	} {
		template, ok := registry.Get(name)
		if assert.True(t, ok, "missing template %s", name) {
			assert.NotEmpty(t, template.Transforms, "template %s has no transforms", name)
			assert.NotEmpty(t, template.Category)
		}
	}
}

func TestBuiltInTemplates_ApplyToBase(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := resolvedBase()

	for _, name := range registry.List() {
		t.Run(name, func(t *testing.T) {
			template, _ := registry.Get(name)
			result, err := ApplyTemplate(base, template)
			require.NoError(t, err)
			assert.Equal(t, template.Name, result.Name)
			assert.Equal(t, template.Description, result.Description)
		})
	}
}

func TestApplyTemplate_Values(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := resolvedBase()

	aggressive, _ := registry.Get("aggressive")
	result, err := ApplyTemplate(base, aggressive)
	require.NoError(t, err)
	assert.Equal(t, 60, *result.RetirementAge)
	assert.Equal(t, "1500", result.MonthlyContributions.String())
	assert.Equal(t, "8", result.ExpectedReturn.String())

	stop, _ := registry.Get("stop_contributions")
	result, err = ApplyTemplate(base, stop)
	require.NoError(t, err)
	assert.True(t, result.MonthlyContributions.IsZero())

	lean, _ := registry.Get("lean_fire")
	result, err = ApplyTemplate(base, lean)
	require.NoError(t, err)
	assert.Equal(t, "3000", result.DesiredRetirementIncome.String())
}

func TestParseTemplateList(t *testing.T) {
	assert.Nil(t, ParseTemplateList(""))
	assert.Equal(t, []string{"a", "b"}, ParseTemplateList(" a, ,b "))
}

func TestGetTemplateHelp(t *testing.T) {
	assert.Equal(t, "No templates registered", GetTemplateHelp(NewTemplateRegistry()))

	help := GetTemplateHelp(CreateBuiltInTemplates())
	assert.Contains(t, help, "Retirement Timing:")
	assert.Contains(t, help, "retire_early_5yr")
	assert.Contains(t, help, "Lifestyle:")
	assert.Contains(t, help, "coastfi compare plan.yaml")
}
