package model

import "career-engine/internal/jsonpatch"

// SweepPoint is the batch summary for one cruise count.
type SweepPoint struct {
	NumCruises     int      `json:"num_cruises"`
	CompletionRate float64  `json:"completion_rate"`
	DropoutRate    float64  `json:"dropout_rate"`
	AvgDuration    float64  `json:"avg_duration"`
	AvgNetCashFlow float64  `json:"avg_net_cash_flow"`
	AvgROI         *float64 `json:"avg_roi"`
	BreakevenRate  float64  `json:"breakeven_rate"`
	AvgAnnualIRR   *float64 `json:"avg_annual_irr"`
}

type SweepResult struct {
	Points []SweepPoint `json:"points"`
	// Zero when no point has a defined ROI.
	BestROICruises       int `json:"best_roi_cruises"`
	BestNetReturnCruises int `json:"best_net_return_cruises"`
}

type MetricDelta struct {
	Metric  string  `json:"metric"`
	Base    float64 `json:"base"`
	Variant float64 `json:"variant"`
	Delta   float64 `json:"delta"`
}

// Comparison holds two batches run side by side and what separates them.
type Comparison struct {
	Changes []jsonpatch.Operation `json:"changes"`
	Base    *AggregateResult      `json:"base"`
	Variant *AggregateResult      `json:"variant"`
	Deltas  []MetricDelta         `json:"deltas"`
}
