package scenario

import (
	"bytes"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"career-engine/internal/model"
)

// Resolve starts from the named preset (or the defaults when preset is empty)
// and applies the JSON overrides on top. Fields missing from overrides keep
// their preset values.
func Resolve(preset string, overrides []byte) (model.ScenarioConfig, error) {
	cfg := model.DefaultScenario()
	if preset != "" {
		p, ok := Get(preset)
		if !ok {
			return model.ScenarioConfig{}, &model.ErrInvalidArgument{Name: "preset", Value: preset, Message: "unknown preset"}
		}
		cfg = p.Config()
	}

	overrides = bytes.TrimSpace(overrides)
	if len(overrides) == 0 || bytes.Equal(overrides, []byte("null")) {
		return cfg, nil
	}
	if err := json.Unmarshal(overrides, &cfg); err != nil {
		return model.ScenarioConfig{}, errors.Wrap(err, "decoding scenario overrides")
	}
	return cfg, nil
}

// Decode reads a YAML scenario document. A top-level "preset" key selects the
// base scenario; every other key overrides it.
func Decode(r io.Reader) (model.ScenarioConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.ScenarioConfig{}, errors.Wrap(err, "reading scenario")
	}

	var header struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return model.ScenarioConfig{}, errors.Wrap(err, "parsing scenario")
	}

	cfg := model.DefaultScenario()
	if header.Preset != "" {
		p, ok := Get(header.Preset)
		if !ok {
			return model.ScenarioConfig{}, &model.ErrInvalidArgument{Name: "preset", Value: header.Preset, Message: "unknown preset"}
		}
		cfg = p.Config()
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.ScenarioConfig{}, errors.Wrap(err, "parsing scenario")
	}
	return cfg, nil
}

func LoadFile(path string) (model.ScenarioConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ScenarioConfig{}, errors.Wrapf(err, "opening scenario %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return model.ScenarioConfig{}, errors.Wrapf(err, "loading scenario %s", path)
	}
	return cfg, nil
}
