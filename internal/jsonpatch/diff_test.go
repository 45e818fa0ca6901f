package jsonpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tests := map[string]struct {
		a        interface{}
		b        interface{}
		expected []Operation
	}{
		"identical": {
			a:        map[string]interface{}{"num_cruises": 4.0},
			b:        map[string]interface{}{"num_cruises": 4.0},
			expected: nil,
		},
		"replaced scalar": {
			a: map[string]interface{}{"num_cruises": 4.0},
			b: map[string]interface{}{"num_cruises": 2.0},
			expected: []Operation{
				{Op: "replace", Path: "/num_cruises", Value: 2.0, Previous: 4.0},
			},
		},
		"added and removed keys": {
			a: map[string]interface{}{"a": 1.0, "random_seed": 7.0},
			b: map[string]interface{}{"a": 1.0, "z": true},
			expected: []Operation{
				{Op: "remove", Path: "/random_seed", Previous: 7.0},
				{Op: "add", Path: "/z", Value: true},
			},
		},
		"shorter salary ladder": {
			a: map[string]interface{}{"costa_salaries": []interface{}{1.0, 2.0, 3.0}},
			b: map[string]interface{}{"costa_salaries": []interface{}{1.0, 5.0}},
			expected: []Operation{
				{Op: "replace", Path: "/costa_salaries/1", Value: 5.0, Previous: 2.0},
				{Op: "remove", Path: "/costa_salaries/2", Previous: 3.0},
			},
		},
		"escaped key": {
			a: map[string]interface{}{"a/b": 1.0},
			b: map[string]interface{}{"a/b": 2.0},
			expected: []Operation{
				{Op: "replace", Path: "/a~1b", Value: 2.0, Previous: 1.0},
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Diff(tc.a, tc.b, ""))
		})
	}
}

func TestDiffValues(t *testing.T) {
	type doc struct {
		Cruises  int       `json:"num_cruises"`
		Salaries []float64 `json:"salaries"`
	}
	ops, err := DiffValues(doc{Cruises: 4, Salaries: []float64{5000}}, doc{Cruises: 3, Salaries: []float64{5000, 5500}})
	require.NoError(t, err)
	assert.Equal(t, []Operation{
		{Op: "replace", Path: "/num_cruises", Value: 3.0, Previous: 4.0},
		{Op: "add", Path: "/salaries/1", Value: 5500.0},
	}, ops)
}
