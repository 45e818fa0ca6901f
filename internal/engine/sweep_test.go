package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-engine/internal/jsonpatch"
	"career-engine/internal/model"
)

func TestSweep(t *testing.T) {
	cfg := seeded(certainDisney(), 8)
	cfg.NumStudents = 20

	res, err := NewRunner().Sweep(context.Background(), &cfg, 3)
	require.NoError(t, err)
	require.Len(t, res.Points, 3)

	for i, p := range res.Points {
		assert.Equal(t, i+1, p.NumCruises)
		assert.Equal(t, 100.0, p.CompletionRate)
	}
	// Each extra cruise only adds payment.
	assert.Less(t, res.Points[0].AvgNetCashFlow, res.Points[1].AvgNetCashFlow)
	assert.Less(t, res.Points[1].AvgNetCashFlow, res.Points[2].AvgNetCashFlow)
	assert.Equal(t, 3, res.BestROICruises)
	assert.Equal(t, 3, res.BestNetReturnCruises)

	// The input scenario is left alone.
	assert.Equal(t, 4, cfg.NumCruises)
}

func TestSweepRejectsZeroCruises(t *testing.T) {
	cfg := model.DefaultScenario()

	_, err := NewRunner().Sweep(context.Background(), &cfg, 0)
	var invalid *model.ErrInvalidArgument
	assert.ErrorAs(t, err, &invalid)
}

func TestCompare(t *testing.T) {
	base := seeded(certainDisney(), 2)
	base.NumStudents = 30
	variant := base.Clone()
	variant.NumCruises = 2

	res, err := NewRunner().Compare(context.Background(), &base, &variant)
	require.NoError(t, err)

	assert.Equal(t, []jsonpatch.Operation{
		{Op: "replace", Path: "/num_cruises", Value: 2.0, Previous: 4.0},
	}, res.Changes)
	require.NotNil(t, res.Base)
	require.NotNil(t, res.Variant)

	deltas := make(map[string]model.MetricDelta)
	for _, d := range res.Deltas {
		deltas[d.Metric] = d
	}
	require.Contains(t, deltas, "avg_total_payments")
	// Two cruises fewer: 6500 and 7000 at 14%.
	assert.InDelta(t, -1890, deltas["avg_total_payments"].Delta, 1e-6)
	assert.InDelta(t, 0, deltas["completion_rate"].Delta, 1e-12)
	require.Contains(t, deltas, "avg_roi")
}

func TestMetricDeltasSkipUndefined(t *testing.T) {
	roi := 0.5
	base := &model.AggregateResult{CompletionRate: 80, AvgROI: &roi}
	variant := &model.AggregateResult{CompletionRate: 90}

	deltas := metricDeltas(base, variant)
	for _, d := range deltas {
		assert.NotEqual(t, "avg_roi", d.Metric)
		assert.NotEqual(t, "avg_annual_irr", d.Metric)
	}
	assert.Equal(t, model.MetricDelta{Metric: "completion_rate", Base: 80, Variant: 90, Delta: 10}, deltas[0])
}
