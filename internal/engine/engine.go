package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"career-engine/internal/model"
	"career-engine/internal/scenario"
)

// Process resolves the request's scenario, runs the batch and wraps the
// outcome in the calculation envelope. Invalid input is reported as CRITICAL
// messages with a FAILURE outcome, never as a Go error.
func (r *Runner) Process(ctx context.Context, req *model.SimulationRequest) *model.SimulationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	addMessage := func(msg model.CalculationMessage) {
		msg.ID = len(allMessages)
		allMessages = append(allMessages, msg)
	}
	outcome := model.OutcomeSuccess
	resp := &model.SimulationResponse{}

	cfg, err := scenario.Resolve(req.Preset, req.Scenario)
	if err != nil {
		addMessage(resolveMessage(err))
		outcome = model.OutcomeFailure
	}

	if outcome == model.OutcomeSuccess {
		resp.Scenario = &cfg
		if err := scenario.Validate(&cfg); err != nil {
			for _, vm := range validationMessages(err) {
				addMessage(vm)
			}
			outcome = model.OutcomeFailure
		}
	}

	if outcome == model.OutcomeSuccess {
		for _, wm := range scenario.Warnings(&cfg) {
			addMessage(wm)
		}

		result, err := r.Run(ctx, &cfg)
		if err != nil {
			addMessage(model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeSimulationFailed,
				Message: err.Error(),
			})
			outcome = model.OutcomeFailure
		} else {
			resp.Result = result
			resp.CalculationMetadata.Trials = result.NumTrials
			resp.CalculationMetadata.States = len(result.PerStateMetrics)
		}
	}

	if outcome == model.OutcomeSuccess && req.IncludeTrace {
		trace, err := r.Trace(ctx, &cfg)
		if err != nil {
			addMessage(model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeSimulationFailed,
				Message: err.Error(),
			})
			outcome = model.OutcomeFailure
		} else {
			resp.Trace = trace
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}
	resp.Messages = allMessages
	resp.CalculationMetadata.CalculationID = uuid.New().String()
	resp.CalculationMetadata.RequestID = req.RequestID
	resp.CalculationMetadata.CalculationStartedAt = now.Add(-elapsed).Format(time.RFC3339)
	resp.CalculationMetadata.CalculationCompletedAt = now.Format(time.RFC3339)
	resp.CalculationMetadata.CalculationDurationMs = elapsed.Milliseconds()
	resp.CalculationMetadata.CalculationOutcome = outcome

	if outcome == model.OutcomeFailure {
		r.log.WithField("calculation_id", resp.CalculationMetadata.CalculationID).
			WithField("messages", len(allMessages)).
			Info("calculation failed")
	}
	return resp
}

func resolveMessage(err error) model.CalculationMessage {
	var invalid *model.ErrInvalidArgument
	if errors.As(err, &invalid) && invalid.Name == "preset" {
		return model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownPreset,
			Message: fmt.Sprintf("Unknown preset: %v", invalid.Value),
		}
	}
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeInvalidScenario,
		Message: err.Error(),
	}
}

// validationMessages emits one CRITICAL message per rejected field.
func validationMessages(err error) []model.CalculationMessage {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidScenario,
			Message: err.Error(),
		}}
	}
	msgs := make([]model.CalculationMessage, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidScenario,
			Message: e.Error(),
		})
	}
	return msgs
}
