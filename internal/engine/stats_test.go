package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	tests := map[string]struct {
		xs       []float64
		q        float64
		expected float64
	}{
		"empty":              {xs: nil, q: 0.5, expected: 0},
		"single":             {xs: []float64{3}, q: 0.9, expected: 3},
		"tenth interpolates": {xs: []float64{4, 1, 3, 2}, q: 0.1, expected: 1.3},
		"ninetieth":          {xs: []float64{4, 1, 3, 2}, q: 0.9, expected: 3.7},
		"median exact rank":  {xs: []float64{5, 1, 3}, q: 0.5, expected: 3},
		"maximum":            {xs: []float64{5, 1, 3}, q: 1, expected: 5},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, percentile(tc.xs, tc.q), 1e-12)
		})
	}
}

func TestPercentileLeavesInputUnsorted(t *testing.T) {
	xs := []float64{3, 1, 2}
	percentile(xs, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestStddev(t *testing.T) {
	assert.Equal(t, 0.0, stddev(nil))
	assert.Equal(t, 0.0, stddev([]float64{7}))
	// Sample deviation: sum of squares 32 over 7.
	assert.InDelta(t, 2.138089935, stddev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestRatePct(t *testing.T) {
	assert.Equal(t, 0.0, ratePct(3, 0))
	assert.Equal(t, 25.0, ratePct(1, 4))
}
