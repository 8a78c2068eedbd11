package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec  string
		check func(t *testing.T, tr ScenarioTransform)
	}{
		{"postpone_retirement:years=2", func(t *testing.T, tr ScenarioTransform) {
			assert.Equal(t, &PostponeRetirement{Years: 2}, tr)
		}},
		{"set_retirement_age: age = 58", func(t *testing.T, tr ScenarioTransform) {
			assert.Equal(t, &SetRetirementAge{Age: 58}, tr)
		}},
		{"adjust_contributions:delta=-250.50", func(t *testing.T, tr ScenarioTransform) {
			ac, ok := tr.(*AdjustContributions)
			require.True(t, ok)
			assert.True(t, ac.Delta.Equal(decimal.NewFromFloat(-250.50)))
		}},
		{"set_expected_return:rate=6.5", func(t *testing.T, tr ScenarioTransform) {
			sr, ok := tr.(*SetExpectedReturn)
			require.True(t, ok)
			assert.True(t, sr.Rate.Equal(decimal.NewFromFloat(6.5)))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			tr, err := registry.ParseTransformSpec(tt.spec)
			require.NoError(t, err)
			tt.check(t, tr)
		})
	}
}

func TestTransformRegistry_ParseErrors(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec    string
		wantErr string
	}{
		{"postpone_retirement", "expected 'name:params'"},
		{"unknown:x=1", "unknown transform: unknown"},
		{"postpone_retirement:years", "expected 'key=value'"},
		{"postpone_retirement:months=12", "requires 'years' parameter"},
		{"postpone_retirement:years=two", "invalid years value"},
		{"set_inflation:rate=abc", "invalid rate value"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := registry.ParseTransformSpec(tt.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	assert.Len(t, names, 11)
	assert.Equal(t, "add_lump_sum", names[0])
	assert.Contains(t, names, "scale_desired_income")
}
