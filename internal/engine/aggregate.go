package engine

import "career-engine/internal/model"

type stateAccumulator struct {
	entries      int
	completed    int
	dropouts     int
	salarySum    float64
	salaryCount  int
	totalCost    float64
	totalPayment float64
}

// Aggregate folds finished trials into batch statistics. Trials are consumed
// in slice order, so the output only depends on the trial results themselves.
//
// A trial enters a state when a step record exists for it, including the
// state it dropped out in. Salary and payment averages are taken over the
// entries with a positive sampled salary.
func Aggregate(states []model.StateConfig, trials []model.TrialResult) *model.AggregateResult {
	n := len(trials)
	acc := make([]stateAccumulator, len(states))

	res := &model.AggregateResult{
		NumTrials:              n,
		ProviderDistribution:   make(map[model.Provider]int),
		FinalStateDistribution: make(map[int]int),
	}
	for _, p := range model.Providers() {
		res.ProviderDistribution[p] = 0
	}

	var (
		completed, dropouts, breakevens int
		durations, visited              []float64
		costs, payments, nets           []float64
		rois, monthlyIRRs, annualIRRs   []float64
		sumCost, sumPayments            float64
	)

	for _, trial := range trials {
		if trial.Completed {
			completed++
		}
		if trial.Dropout {
			dropouts++
		}
		if trial.BreakevenState != nil {
			breakevens++
		}
		if trial.SelectedProvider == model.ProviderNone {
			res.UnassignedTrials++
		} else {
			res.ProviderDistribution[trial.SelectedProvider]++
		}
		if trial.FinalStateIndex >= 0 {
			res.FinalStateDistribution[trial.FinalStateIndex]++
		}

		durations = append(durations, float64(trial.DurationMonths))
		visited = append(visited, float64(len(trial.Steps)))
		costs = append(costs, trial.TotalCost)
		payments = append(payments, trial.TotalPayments)
		nets = append(nets, trial.NetCashFlow)
		sumCost += trial.TotalCost
		sumPayments += trial.TotalPayments

		if trial.ROI != nil {
			rois = append(rois, *trial.ROI)
		}
		if trial.MonthlyIRR != nil {
			monthlyIRRs = append(monthlyIRRs, *trial.MonthlyIRR)
			annualIRRs = append(annualIRRs, *trial.AnnualIRR)
		}

		entered := make(map[int]bool, len(trial.Steps))
		for _, step := range trial.Steps {
			idx := step.StateIndex
			if idx < 0 || idx >= len(states) {
				continue
			}
			a := &acc[idx]
			if !entered[idx] {
				entered[idx] = true
				a.entries++
				a.totalCost += states[idx].Cost
			}
			switch step.Outcome {
			case model.StepCompleted:
				a.completed++
			case model.StepDropout:
				a.dropouts++
			}
			if step.Salary > 0 {
				a.salarySum += step.Salary
				a.salaryCount++
			}
			a.totalPayment += step.Payment
		}
	}

	res.CompletionRate = ratePct(completed, n)
	res.DropoutRate = ratePct(dropouts, n)
	res.BreakevenRate = ratePct(breakevens, n)
	res.AvgDuration = mean(durations)
	res.AvgStatesVisited = mean(visited)
	res.AvgTrainingCost = mean(costs)
	res.AvgTotalPayments = mean(payments)
	res.AvgNetCashFlow = mean(nets)
	if sumCost > 0 {
		res.RepaymentRate = sumPayments / sumCost * 100
	}

	if len(rois) > 0 {
		res.AvgROI = ptr(mean(rois))
		res.ROIStd = ptr(stddev(rois))
		res.ROI10th = ptr(percentile(rois, 0.10))
		res.ROI90th = ptr(percentile(rois, 0.90))
	}
	if len(monthlyIRRs) > 0 {
		res.AvgMonthlyIRR = ptr(mean(monthlyIRRs))
		res.AvgAnnualIRR = ptr(mean(annualIRRs))
	}
	res.IRRDefinedTrials = len(monthlyIRRs)

	res.PerStateMetrics = stateMetrics(states, acc)
	res.PerProviderMetrics = providerMetrics(trials)
	return res
}

func stateMetrics(states []model.StateConfig, acc []stateAccumulator) []model.StateMetrics {
	out := make([]model.StateMetrics, len(states))
	for i, s := range states {
		a := acc[i]
		m := model.StateMetrics{
			Index:                 i,
			Name:                  s.Name,
			Kind:                  s.Kind,
			Provider:              s.Provider,
			EntryCount:            a.entries,
			CompletedCount:        a.completed,
			DropoutCount:          a.dropouts,
			SalaryCount:           a.salaryCount,
			ObservedDropoutRate:   ratePct(a.dropouts, a.entries),
			ConfiguredDropoutRate: s.DropoutProbability * 100,
			TotalCost:             a.totalCost,
			TotalPayment:          a.totalPayment,
		}
		if a.salaryCount > 0 {
			m.AvgSalary = a.salarySum / float64(a.salaryCount)
			m.AvgPayment = a.totalPayment / float64(a.salaryCount)
		}
		if s.Kind.Paying() {
			m.ExpectedPayment = m.AvgSalary * s.PaymentFraction
		}
		out[i] = m
	}
	return out
}

func providerMetrics(trials []model.TrialResult) []model.ProviderMetrics {
	var out []model.ProviderMetrics
	for _, p := range model.Providers() {
		var (
			completed, dropouts   int
			costs, payments, nets []float64
			rois                  []float64
		)
		for _, trial := range trials {
			if trial.SelectedProvider != p {
				continue
			}
			if trial.Completed {
				completed++
			}
			if trial.Dropout {
				dropouts++
			}
			costs = append(costs, trial.TotalCost)
			payments = append(payments, trial.TotalPayments)
			nets = append(nets, trial.NetCashFlow)
			if trial.ROI != nil {
				rois = append(rois, *trial.ROI)
			}
		}

		m := model.ProviderMetrics{
			Provider:       p,
			Trials:         len(costs),
			CompletionRate: ratePct(completed, len(costs)),
			DropoutRate:    ratePct(dropouts, len(costs)),
			AvgCost:        mean(costs),
			AvgPayments:    mean(payments),
			AvgNetCashFlow: mean(nets),
		}
		if len(rois) > 0 {
			m.AvgROI = ptr(mean(rois))
		}
		out = append(out, m)
	}
	return out
}
