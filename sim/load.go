package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadSimulationConfig reads a YAML file and overlays it on base.
// Keys absent from the file keep base's values. Uses strict parsing:
// unrecognized keys (typos) are rejected.
func LoadSimulationConfig(path string, base SimulationConfig) (SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("reading simulation config: %w", err)
	}
	cfg, err := ParseSimulationConfig(data, base)
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("parsing simulation config %s: %w", path, err)
	}
	logrus.Debugf("loaded simulation config overlay from %s", path)
	return cfg, nil
}

// ParseSimulationConfig decodes YAML bytes on top of a copy of base.
func ParseSimulationConfig(data []byte, base SimulationConfig) (SimulationConfig, error) {
	cfg := base
	if base.RandomSeed != nil {
		seed := *base.RandomSeed
		cfg.RandomSeed = &seed
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SimulationConfig{}, err
	}
	if total := cfg.AllocationTotal(); math.Abs(total-100) > 1e-9 {
		logrus.Warnf("provider allocation totals %.2f%%, expected 100%%", total)
	}
	return cfg, nil
}
