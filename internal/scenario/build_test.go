package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-engine/internal/model"
)

func names(states []model.StateConfig) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Name
	}
	return out
}

func TestBuildDefault(t *testing.T) {
	cfg := model.DefaultScenario()
	states, err := Build(&cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Training",
		"Transportation and placement",
		"Disney Cruise 1", "Disney Break 1",
		"Disney Cruise 2", "Disney Break 2",
		"Disney Cruise 3", "Disney Break 3",
		"Disney Cruise 4",
		"Costa Cruise 1", "Costa Break 1",
		"Costa Cruise 2", "Costa Break 2",
		"Costa Cruise 3", "Costa Break 3",
		"Costa Cruise 4",
	}, names(states))

	assert.Equal(t, model.StateConfig{
		Kind:               model.KindTraining,
		Name:               "Training",
		Cost:               1500,
		DropoutProbability: 0.10,
		DurationMonths:     3,
	}, states[0])
	assert.Equal(t, model.KindPlacement, states[1].Kind)

	assert.Equal(t, model.StateConfig{
		Kind:               model.KindCruiseLeg,
		Name:               "Disney Cruise 2",
		Provider:           model.ProviderDisney,
		CruiseNumber:       2,
		DropoutProbability: 0.03,
		BaseSalary:         6000,
		SalaryVariationPct: 6,
		DurationMonths:     7,
		PaymentFraction:    0.14,
	}, states[4])

	assert.Equal(t, model.StateConfig{
		Kind:           model.KindBreak,
		Name:           "Costa Break 3",
		Provider:       model.ProviderCosta,
		DurationMonths: 2,
	}, states[14])

	for i, s := range states {
		assert.NoError(t, s.Validate(i))
	}
}

func TestBuildOptionalStates(t *testing.T) {
	cfg := model.DefaultScenario()
	cfg.IncludeOfferStage = true
	cfg.OfferStageCost = 25
	cfg.IncludeAdvancedTraining = false
	cfg.IncludeEarlyTermination = true
	cfg.IncludeBreaks = false
	cfg.NumCruises = 2

	states, err := Build(&cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Training",
		"Offer Stage",
		"Early Termination",
		"Disney Cruise 1", "Disney Cruise 2",
		"Costa Cruise 1", "Costa Cruise 2",
	}, names(states))
	assert.Equal(t, model.KindOfferStage, states[1].Kind)
	assert.Equal(t, 25.0, states[1].Cost)
	assert.Equal(t, 0.20, states[1].DropoutProbability)
	assert.Equal(t, model.KindEarlyTermination, states[2].Kind)
	assert.Equal(t, 0.05, states[2].DropoutProbability)
}

func TestBuildTruncatesLadder(t *testing.T) {
	cfg := model.DefaultScenario()
	cfg.NumCruises = 7
	cfg.IncludeBreaks = false
	cfg.CostaSalaries = []float64{5000, 5300}

	states, err := Build(&cfg)
	require.NoError(t, err)

	counts := make(map[model.Provider]int)
	for _, s := range states {
		if s.Kind == model.KindCruiseLeg {
			counts[s.Provider]++
		}
	}
	assert.Equal(t, 5, counts[model.ProviderDisney])
	assert.Equal(t, 2, counts[model.ProviderCosta])
}

func TestBuildZeroCruises(t *testing.T) {
	cfg := model.DefaultScenario()
	cfg.NumCruises = 0

	states, err := Build(&cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Training", "Transportation and placement"}, names(states))
}

func TestBuildIncreaseModel(t *testing.T) {
	cfg := model.DefaultScenario()
	cfg.SalaryModel = model.SalaryModelIncrease
	cfg.NumCruises = 7
	cfg.IncludeBreaks = false
	cfg.DisneySalaries = []float64{5500}

	states, err := Build(&cfg)
	require.NoError(t, err)

	var disney []model.StateConfig
	for _, s := range states {
		if s.Provider == model.ProviderDisney {
			disney = append(disney, s)
		}
	}
	// One base salary is enough: no truncation in the increase model.
	require.Len(t, disney, 7)
	assert.Equal(t, 5500.0, disney[0].BaseSalary)
	assert.Equal(t, 6.0, disney[0].SalaryVariationPct)
	assert.Equal(t, 0.0, disney[0].SalaryIncreasePct)
	assert.False(t, disney[0].SalaryFromPrevious)
	for _, s := range disney[1:] {
		assert.True(t, s.SalaryFromPrevious, s.Name)
		assert.Equal(t, 0.0, s.BaseSalary)
		assert.Equal(t, 10.0, s.SalaryIncreasePct)
		assert.Equal(t, 5.0, s.SalaryVariationPct)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	cfg := model.DefaultScenario()
	cfg.IncludeOfferStage = true

	first, err := Build(&cfg)
	require.NoError(t, err)
	second, err := Build(&cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildRejectsInvalid(t *testing.T) {
	cfg := model.DefaultScenario()
	cfg.DisneyPaymentFraction = 1.5

	_, err := Build(&cfg)
	var invalid *model.ErrInvalidArgument
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "disney_payment_fraction", invalid.Name)
}
