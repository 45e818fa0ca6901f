package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateKindText(t *testing.T) {
	raw, err := json.Marshal(StateConfig{Kind: KindCruiseLeg, Name: "Disney Cruise 1", DurationMonths: 7})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kind":"cruise_leg"`)

	var s StateConfig
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"placement"}`), &s))
	assert.Equal(t, KindPlacement, s.Kind)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"holiday"}`), &s))
	assert.Equal(t, "kind(42)", StateKind(42).String())
}

func TestPaying(t *testing.T) {
	for kind := range kindNames {
		assert.Equal(t, kind == KindCruiseLeg, kind.Paying(), kind.String())
	}
}

func TestStateConfigValidate(t *testing.T) {
	ok := StateConfig{Kind: KindTraining, Cost: 10, DropoutProbability: 0.5, DurationMonths: 1}
	assert.NoError(t, ok.Validate(0))

	bad := ok
	bad.DropoutProbability = 1.5
	var invalid *ErrInvalidArgument
	require.ErrorAs(t, bad.Validate(3), &invalid)
	assert.Equal(t, "states[3].dropout_probability", invalid.Name)
	assert.Equal(t, `value 1.5 is invalid for field "states[3].dropout_probability"; must be within [0, 1]`, invalid.Error())
}

func TestTrialSeed(t *testing.T) {
	cfg := DefaultScenario()
	assert.Equal(t, int64(5), cfg.TrialSeed(5))

	seed := int64(100)
	cfg.RandomSeed = &seed
	assert.Equal(t, int64(105), cfg.TrialSeed(5))
}

func TestClone(t *testing.T) {
	seed := int64(1)
	cfg := DefaultScenario()
	cfg.RandomSeed = &seed

	clone := cfg.Clone()
	clone.DisneySalaries[0] = 1
	*clone.RandomSeed = 2

	assert.Equal(t, 5500.0, cfg.DisneySalaries[0])
	assert.Equal(t, int64(1), *cfg.RandomSeed)
	assert.Equal(t, cfg.Allocation(), clone.Allocation())
}
