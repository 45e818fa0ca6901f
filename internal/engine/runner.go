package engine

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"career-engine/internal/career"
	"career-engine/internal/model"
	"career-engine/internal/scenario"
)

// Runner executes batches of independent trials over a scenario.
type Runner struct {
	workers int
	log     *log.Entry
}

type Option func(*Runner)

// WithWorkers bounds the number of trials simulated concurrently. Values
// below 1 keep the default.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithLogger(l *log.Entry) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: runtime.GOMAXPROCS(0),
		log:     log.WithField("component", "engine"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run expands cfg, simulates cfg.NumStudents trials and aggregates them.
// Trial i is seeded with cfg.TrialSeed(i), so the result does not depend on
// the worker count.
func (r *Runner) Run(ctx context.Context, cfg *model.ScenarioConfig) (*model.AggregateResult, error) {
	start := time.Now()
	states, trials, err := r.simulate(ctx, cfg, cfg.NumStudents)
	if err != nil {
		recordBatch(model.OutcomeFailure, time.Since(start))
		return nil, err
	}

	res := Aggregate(states, trials)
	elapsed := time.Since(start)
	recordBatch(model.OutcomeSuccess, elapsed)
	recordTrials(trials)

	r.log.WithFields(log.Fields{
		"states":          len(states),
		"trials":          res.NumTrials,
		"completion_rate": res.CompletionRate,
		"elapsed":         elapsed,
	}).Debug("batch finished")
	return res, nil
}

// Trace simulates trial 0 of cfg alone. It is the same trial the batch runs
// first.
func (r *Runner) Trace(ctx context.Context, cfg *model.ScenarioConfig) (*model.TrialResult, error) {
	_, trials, err := r.simulate(ctx, cfg, 1)
	if err != nil {
		return nil, err
	}
	return &trials[0], nil
}

func (r *Runner) simulate(ctx context.Context, cfg *model.ScenarioConfig, n int) ([]model.StateConfig, []model.TrialResult, error) {
	states, err := scenario.Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := career.Validate(states); err != nil {
		return nil, nil, errors.Wrap(err, "invalid state list")
	}
	plan := career.NewPlan(states)
	allocation := cfg.Allocation()

	r.log.WithFields(log.Fields{
		"states":  len(states),
		"trials":  n,
		"workers": r.workers,
	}).Debug("starting batch")

	trials := make([]model.TrialResult, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seq := career.NewFromPlan(plan, states, allocation, cfg.TrialSeed(i))
			seq.Run()
			trials[i] = seq.Result()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "simulation interrupted")
	}
	return states, trials, nil
}
