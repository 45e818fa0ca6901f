package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes. INVALID_SCENARIO, UNKNOWN_PRESET and SIMULATION_FAILED come
// with a critical level and no result; the others are warnings.
const (
	CodeInvalidScenario     = "INVALID_SCENARIO"
	CodeUnknownPreset       = "UNKNOWN_PRESET"
	CodeAllocationNot100    = "ALLOCATION_NOT_100"
	CodeLadderTruncated     = "SALARY_LADDER_TRUNCATED"
	CodeSimulationFailed    = "SIMULATION_FAILED"
	CodeNoProviderAllocated = "NO_PROVIDER_ALLOCATED"
)
