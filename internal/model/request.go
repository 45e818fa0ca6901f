package model

import json "github.com/goccy/go-json"

// SimulationRequest is what a caller posts to run a batch. Scenario fields
// override the preset (or the defaults when no preset is named); fields the
// caller omits keep their preset/default values.
type SimulationRequest struct {
	RequestID    string          `json:"request_id,omitempty"`
	Preset       string          `json:"preset,omitempty"`
	Scenario     json.RawMessage `json:"scenario,omitempty"`
	IncludeTrace bool            `json:"include_trace"`
}

// ComparisonRequest runs two scenarios side by side.
type ComparisonRequest struct {
	Base    SimulationRequest `json:"base"`
	Variant SimulationRequest `json:"variant"`
}
