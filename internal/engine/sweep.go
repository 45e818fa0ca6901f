package engine

import (
	"context"

	"github.com/pkg/errors"

	"career-engine/internal/model"
)

// Sweep runs cfg once per cruise count from 1 to maxCruises and reports how
// each count performs. Every point reuses cfg's seed, so the points differ
// only by the number of cruises.
func (r *Runner) Sweep(ctx context.Context, cfg *model.ScenarioConfig, maxCruises int) (*model.SweepResult, error) {
	if maxCruises < 1 {
		return nil, &model.ErrInvalidArgument{Name: "max_cruises", Value: maxCruises, Message: "must be at least 1"}
	}

	out := &model.SweepResult{}
	var bestROI, bestNet float64
	for n := 1; n <= maxCruises; n++ {
		point := cfg.Clone()
		point.NumCruises = n

		res, err := r.Run(ctx, &point)
		if err != nil {
			return nil, errors.Wrapf(err, "sweeping %d cruises", n)
		}

		out.Points = append(out.Points, model.SweepPoint{
			NumCruises:     n,
			CompletionRate: res.CompletionRate,
			DropoutRate:    res.DropoutRate,
			AvgDuration:    res.AvgDuration,
			AvgNetCashFlow: res.AvgNetCashFlow,
			AvgROI:         res.AvgROI,
			BreakevenRate:  res.BreakevenRate,
			AvgAnnualIRR:   res.AvgAnnualIRR,
		})

		if res.AvgROI != nil && (out.BestROICruises == 0 || *res.AvgROI > bestROI) {
			bestROI = *res.AvgROI
			out.BestROICruises = n
		}
		if out.BestNetReturnCruises == 0 || res.AvgNetCashFlow > bestNet {
			bestNet = res.AvgNetCashFlow
			out.BestNetReturnCruises = n
		}
	}
	return out, nil
}
