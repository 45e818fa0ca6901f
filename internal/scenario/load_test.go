package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-engine/internal/model"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"baseline", "optimistic", "pessimistic"}, Names())

	for _, name := range Names() {
		p, ok := Get(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, p.Description)

		cfg := p.Config()
		assert.NoError(t, Validate(&cfg), name)
		assert.Empty(t, Warnings(&cfg), name)
	}

	_, ok := Get("lavish")
	assert.False(t, ok)
}

func TestPresetConfigIsFresh(t *testing.T) {
	p, _ := Get("optimistic")
	a := p.Config()
	a.DisneySalaries[0] = 1

	b := p.Config()
	assert.Equal(t, 5800.0, b.DisneySalaries[0])
}

func TestResolve(t *testing.T) {
	cfg, err := Resolve("", nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultScenario(), cfg)

	cfg, err = Resolve("pessimistic", []byte(`{"num_students": 12, "random_seed": 3}`))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.NumStudents)
	require.NotNil(t, cfg.RandomSeed)
	assert.Equal(t, int64(3), *cfg.RandomSeed)
	assert.Equal(t, 3, cfg.NumCruises)
	assert.Equal(t, []float64{4500, 4800, 5100}, cfg.DisneySalaries)

	cfg, err = Resolve("", []byte(`{"costa_salaries": [1, 2]}`))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, cfg.CostaSalaries)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve("lavish", nil)
	var invalid *model.ErrInvalidArgument
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "preset", invalid.Name)

	_, err = Resolve("", []byte(`{"num_students": "many"}`))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	doc := `
preset: optimistic
num_students: 250
include_offer_stage: true
costa_salaries: [4000, 4100]
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.NumStudents)
	assert.True(t, cfg.IncludeOfferStage)
	assert.Equal(t, []float64{4000, 4100}, cfg.CostaSalaries)
	// Untouched keys come from the preset.
	assert.Equal(t, 5, cfg.NumCruises)
	assert.Equal(t, 0.15, cfg.DisneyPaymentFraction)
}

func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader("num_cruises: 2\n"))
	require.NoError(t, err)

	expected := model.DefaultScenario()
	expected.NumCruises = 2
	assert.Equal(t, expected, cfg)
}

func TestDecodeUnknownPreset(t *testing.T) {
	_, err := Decode(strings.NewReader("preset: lavish\n"))
	var invalid *model.ErrInvalidArgument
	assert.ErrorAs(t, err, &invalid)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("random_seed: 9\nsalary_model: increase\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.RandomSeed)
	assert.Equal(t, int64(9), *cfg.RandomSeed)
	assert.Equal(t, model.SalaryModelIncrease, cfg.SalaryModel)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
