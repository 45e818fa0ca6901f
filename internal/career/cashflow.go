package career

import "career-engine/internal/model"

// MonthlyCashFlows lays a trial's steps out on a monthly grid. A state's cost
// is an outflow in its first month; its payment is spread evenly over its
// duration. A dropout state contributes only its entry cost.
func MonthlyCashFlows(steps []model.StepRecord) []float64 {
	var flows []float64
	for _, st := range steps {
		if st.Outcome == model.StepDropout {
			flows = append(flows, -st.Cost)
			break
		}

		months := st.DurationMonths
		if months < 1 {
			months = 1
		}
		start := len(flows)
		flows = append(flows, make([]float64, months)...)
		flows[start] -= st.Cost
		if st.Payment != 0 {
			perMonth := st.Payment / float64(months)
			for m := 0; m < months; m++ {
				flows[start+m] += perMonth
			}
		}
	}
	return flows
}
