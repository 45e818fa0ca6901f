package engine

import (
	"context"

	"github.com/pkg/errors"

	"career-engine/internal/jsonpatch"
	"career-engine/internal/model"
)

// Compare runs base and variant side by side. Changes lists the scenario
// fields that differ, as JSON Patch operations turning base into variant.
func (r *Runner) Compare(ctx context.Context, base, variant *model.ScenarioConfig) (*model.Comparison, error) {
	changes, err := jsonpatch.DiffValues(base, variant)
	if err != nil {
		return nil, errors.Wrap(err, "diffing scenarios")
	}

	baseRes, err := r.Run(ctx, base)
	if err != nil {
		return nil, errors.Wrap(err, "running base scenario")
	}
	variantRes, err := r.Run(ctx, variant)
	if err != nil {
		return nil, errors.Wrap(err, "running variant scenario")
	}

	return &model.Comparison{
		Changes: changes,
		Base:    baseRes,
		Variant: variantRes,
		Deltas:  metricDeltas(baseRes, variantRes),
	}, nil
}

func metricDeltas(base, variant *model.AggregateResult) []model.MetricDelta {
	type metric struct {
		name          string
		base, variant *float64
	}
	metrics := []metric{
		{"completion_rate", &base.CompletionRate, &variant.CompletionRate},
		{"dropout_rate", &base.DropoutRate, &variant.DropoutRate},
		{"avg_duration", &base.AvgDuration, &variant.AvgDuration},
		{"avg_training_cost", &base.AvgTrainingCost, &variant.AvgTrainingCost},
		{"avg_total_payments", &base.AvgTotalPayments, &variant.AvgTotalPayments},
		{"avg_net_cash_flow", &base.AvgNetCashFlow, &variant.AvgNetCashFlow},
		{"avg_roi", base.AvgROI, variant.AvgROI},
		{"breakeven_rate", &base.BreakevenRate, &variant.BreakevenRate},
		{"repayment_rate", &base.RepaymentRate, &variant.RepaymentRate},
		{"avg_annual_irr", base.AvgAnnualIRR, variant.AvgAnnualIRR},
	}

	var deltas []model.MetricDelta
	for _, m := range metrics {
		// Undefined on either side: nothing to compare.
		if m.base == nil || m.variant == nil {
			continue
		}
		deltas = append(deltas, model.MetricDelta{
			Metric:  m.name,
			Base:    *m.base,
			Variant: *m.variant,
			Delta:   *m.variant - *m.base,
		})
	}
	return deltas
}
