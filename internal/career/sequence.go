package career

import (
	"math"
	"math/rand"

	"github.com/hashicorp/go-multierror"

	"career-engine/internal/irr"
	"career-engine/internal/model"
)

// Sequence simulates one individual's walk through a state list. It owns its
// RNG, so independent sequences may run concurrently over the same states.
type Sequence struct {
	states     []model.StateConfig
	plan       *Plan
	allocation map[model.Provider]float64
	rng        *rand.Rand
	seed       int64

	route []int // indices still to walk: the prefix, then the selected branch
	pos   int

	selectedProvider model.Provider
	totalCost        float64
	totalPayments    float64
	lastSalary       float64
	completedStates  []int
	steps            []model.StepRecord

	dropout   bool
	completed bool
}

// New validates states and creates a sequence over them. allocation weights
// the provider draw; it is ignored when states carry no provider tags.
func New(states []model.StateConfig, allocation map[model.Provider]float64, seed int64) (*Sequence, error) {
	if err := Validate(states); err != nil {
		return nil, err
	}
	return NewFromPlan(NewPlan(states), states, allocation, seed), nil
}

// Validate checks every state of a list handed to the simulator directly.
// The error is a *multierror.Error of *model.ErrInvalidArgument, or nil.
func Validate(states []model.StateConfig) error {
	var result *multierror.Error
	for i, s := range states {
		if err := s.Validate(i); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// NewFromPlan is New with a plan shared across trials and no validation.
// plan must have been built from states.
func NewFromPlan(plan *Plan, states []model.StateConfig, allocation map[model.Provider]float64, seed int64) *Sequence {
	s := &Sequence{
		states:     states,
		plan:       plan,
		allocation: allocation,
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
		route:      append([]int(nil), plan.Prefix()...),
	}
	if len(states) == 0 {
		s.completed = true
	}
	return s
}

func (s *Sequence) Done() bool {
	return s.dropout || s.completed
}

func (s *Sequence) Dropout() bool {
	return s.dropout
}

func (s *Sequence) Completed() bool {
	return s.completed
}

func (s *Sequence) SelectedProvider() model.Provider {
	return s.selectedProvider
}

// Advance processes the current state and returns its step record. It returns
// false once the sequence has terminated; a terminated sequence is never
// mutated again.
func (s *Sequence) Advance() (model.StepRecord, bool) {
	if s.Done() {
		return model.StepRecord{}, false
	}
	if s.pos >= len(s.route) && !s.extendRoute() {
		s.completed = true
		return model.StepRecord{}, false
	}

	idx := s.route[s.pos]
	cfg := s.states[idx]

	s.totalCost += cfg.Cost
	step := model.StepRecord{
		StateIndex:      idx,
		StateName:       cfg.Name,
		Kind:            cfg.Kind,
		Provider:        cfg.Provider,
		DurationMonths:  cfg.DurationMonths,
		Cost:            cfg.Cost,
		PaymentFraction: cfg.PaymentFraction,
	}

	if s.rng.Float64() < cfg.DropoutProbability {
		s.dropout = true
		step.Outcome = model.StepDropout
		return s.record(step), true
	}

	if idx == s.plan.BranchPoint() && s.selectedProvider == model.ProviderNone {
		s.selectProvider()
	}

	step.Salary = s.salary(cfg)
	if cfg.Kind.Paying() {
		step.Payment = step.Salary * cfg.PaymentFraction
	}
	s.totalPayments += step.Payment
	s.completedStates = append(s.completedStates, idx)
	step.Outcome = model.StepCompleted

	s.pos++
	if s.pos >= len(s.route) && !s.extendRoute() {
		s.completed = true
	}
	return s.record(step), true
}

// Run drives the sequence to termination.
func (s *Sequence) Run() {
	for {
		if _, ok := s.Advance(); !ok {
			return
		}
	}
}

func (s *Sequence) record(step model.StepRecord) model.StepRecord {
	step.TotalCost = s.totalCost
	step.TotalPayments = s.totalPayments
	step.NetCashFlow = s.totalPayments - s.totalCost
	s.steps = append(s.steps, step)
	return step
}

// extendRoute appends the selected branch once the prefix is exhausted,
// drawing the provider first if the placement state never did.
func (s *Sequence) extendRoute() bool {
	if !s.plan.HasBranches() || len(s.route) > len(s.plan.Prefix()) {
		return false
	}
	if s.selectedProvider == model.ProviderNone {
		s.selectProvider()
	}
	branch := s.plan.Branch(s.selectedProvider)
	s.route = append(s.route, branch...)
	return len(branch) > 0
}

func (s *Sequence) selectProvider() {
	providers := s.plan.Providers()
	if len(providers) == 0 {
		return
	}

	var total float64
	for _, p := range providers {
		total += math.Max(0, s.allocation[p])
	}
	if total <= 0 {
		s.selectedProvider = providers[s.rng.Intn(len(providers))]
		return
	}

	u := s.rng.Float64() * total
	for _, p := range providers {
		w := math.Max(0, s.allocation[p])
		if u < w {
			s.selectedProvider = p
			return
		}
		u -= w
	}
	// Rounding left u at the upper edge; take the last weighted provider.
	for i := len(providers) - 1; i >= 0; i-- {
		if s.allocation[providers[i]] > 0 {
			s.selectedProvider = providers[i]
			return
		}
	}
}

// salary samples the state's salary. Negative draws are clamped to zero, not
// resampled.
func (s *Sequence) salary(cfg model.StateConfig) float64 {
	if !cfg.Kind.Paying() {
		return 0
	}

	var salary float64
	if cfg.SalaryFromPrevious {
		increase := s.lastSalary * cfg.SalaryIncreasePct / 100
		salary = s.lastSalary + s.normal(increase, increase*cfg.SalaryVariationPct/100)
	} else {
		salary = s.normal(cfg.BaseSalary, cfg.BaseSalary*cfg.SalaryVariationPct/100)
	}
	salary = math.Max(0, salary)
	s.lastSalary = salary
	return salary
}

func (s *Sequence) normal(mean, sd float64) float64 {
	return mean + math.Abs(sd)*s.rng.NormFloat64()
}

// Result returns the terminal record of the trial. It is meant to be called
// once Done reports true.
func (s *Sequence) Result() model.TrialResult {
	res := model.TrialResult{
		Seed:             s.seed,
		SelectedProvider: s.selectedProvider,
		Dropout:          s.dropout,
		Completed:        s.completed,
		TotalCost:        s.totalCost,
		TotalPayments:    s.totalPayments,
		NetCashFlow:      s.totalPayments - s.totalCost,
		CompletedStates:  append([]int{}, s.completedStates...),
		FinalStateIndex:  -1,
		Steps:            append([]model.StepRecord{}, s.steps...),
	}

	if s.totalCost > 0 {
		roi := res.NetCashFlow / s.totalCost
		res.ROI = &roi
	}

	for _, idx := range s.completedStates {
		res.DurationMonths += s.states[idx].DurationMonths
	}
	if n := len(s.steps); n > 0 {
		res.FinalStateIndex = s.steps[n-1].StateIndex
	}
	res.BreakevenState = breakeven(s.steps, s.totalCost)

	res.MonthlyCashFlows = MonthlyCashFlows(s.steps)
	if r, ok := irr.Monthly(res.MonthlyCashFlows); ok {
		annual := irr.Annualize(r)
		res.MonthlyIRR = &r
		res.AnnualIRR = &annual
	}
	return res
}

// breakeven returns the first completed state at which cumulative payments
// cover the trial's total cost.
func breakeven(steps []model.StepRecord, totalCost float64) *int {
	if totalCost <= 0 {
		return nil
	}
	for _, st := range steps {
		if st.Outcome == model.StepCompleted && st.TotalPayments >= totalCost {
			idx := st.StateIndex
			return &idx
		}
	}
	return nil
}
