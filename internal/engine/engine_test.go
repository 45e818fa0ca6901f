package engine

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"

	"career-engine/internal/model"
)

func TestProcessPreset(t *testing.T) {
	req := &model.SimulationRequest{
		RequestID:    "req-1",
		Preset:       "baseline",
		Scenario:     json.RawMessage(`{"num_students": 50, "random_seed": 4}`),
		IncludeTrace: true,
	}

	resp := NewRunner().Process(context.Background(), req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if resp.CalculationMetadata.RequestID != "req-1" {
		t.Fatalf("expected request_id req-1, got %s", resp.CalculationMetadata.RequestID)
	}

	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected calculation_id to be set")
	}

	if len(resp.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.Messages))
	}

	if resp.Result == nil {
		t.Fatal("expected a result")
	}

	if resp.Result.NumTrials != 50 || resp.CalculationMetadata.Trials != 50 {
		t.Fatalf("expected 50 trials, got %d", resp.Result.NumTrials)
	}

	// Training, placement and two ladders of 4 cruises with 3 breaks each.
	if resp.CalculationMetadata.States != 16 {
		t.Fatalf("expected 16 states, got %d", resp.CalculationMetadata.States)
	}

	if resp.Trace == nil {
		t.Fatal("expected a trace")
	}

	if resp.Trace.Seed != 4 {
		t.Fatalf("expected trace seed 4, got %d", resp.Trace.Seed)
	}

	if resp.Scenario == nil || resp.Scenario.NumStudents != 50 {
		t.Fatal("expected the resolved scenario to be echoed")
	}
}

func TestProcessUnknownPreset(t *testing.T) {
	req := &model.SimulationRequest{Preset: "lavish"}

	resp := NewRunner().Process(context.Background(), req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if len(resp.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.Messages))
	}

	if resp.Messages[0].Code != "UNKNOWN_PRESET" {
		t.Fatalf("expected UNKNOWN_PRESET, got %s", resp.Messages[0].Code)
	}

	if resp.Result != nil {
		t.Fatal("expected no result on failure")
	}
}

func TestProcessInvalidScenario(t *testing.T) {
	req := &model.SimulationRequest{
		Scenario: json.RawMessage(`{"num_students": 0, "basic_training_dropout_rate": 2}`),
	}

	resp := NewRunner().Process(context.Background(), req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	// One message per rejected field.
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(resp.Messages))
	}

	for i, msg := range resp.Messages {
		if msg.ID != i {
			t.Fatalf("expected message id %d, got %d", i, msg.ID)
		}
		if msg.Level != "CRITICAL" || msg.Code != "INVALID_SCENARIO" {
			t.Fatalf("unexpected message %+v", msg)
		}
	}
}

func TestProcessMalformedOverrides(t *testing.T) {
	req := &model.SimulationRequest{Scenario: json.RawMessage(`{"num_students": "many"}`)}

	resp := NewRunner().Process(context.Background(), req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if len(resp.Messages) != 1 || resp.Messages[0].Code != "INVALID_SCENARIO" {
		t.Fatalf("expected a single INVALID_SCENARIO message, got %+v", resp.Messages)
	}
}

func TestProcessAllocationWarning(t *testing.T) {
	req := &model.SimulationRequest{
		Scenario: json.RawMessage(`{"num_students": 20, "disney_allocation_pct": 50, "costa_allocation_pct": 20}`),
	}

	resp := NewRunner().Process(context.Background(), req)

	// Warnings never fail the calculation.
	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if len(resp.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.Messages))
	}

	if resp.Messages[0].Level != "WARNING" || resp.Messages[0].Code != "ALLOCATION_NOT_100" {
		t.Fatalf("unexpected message %+v", resp.Messages[0])
	}

	if resp.Trace != nil {
		t.Fatal("expected no trace unless requested")
	}
}
