package model

type SimulationResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Scenario            *ScenarioConfig      `json:"scenario,omitempty"`
	Result              *AggregateResult     `json:"result,omitempty"`
	Trace               *TrialResult         `json:"trace,omitempty"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	RequestID              string `json:"request_id,omitempty"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
	States                 int    `json:"states"`
	Trials                 int    `json:"trials"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
