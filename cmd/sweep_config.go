package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/entropy-bench/entropy-bench/bench"
)

// Define struct for YAML
type SweepPresetFile struct {
	Sweeps map[string]SweepPreset `yaml:"sweeps"`
}

type SweepPreset struct {
	SizeMin     int      `yaml:"size_min"`
	SizeMax     int      `yaml:"size_max"`
	SizeStep    int      `yaml:"size_step"`
	EntropyMin  float64  `yaml:"entropy_min"`
	EntropyMax  float64  `yaml:"entropy_max"`
	EntropyStep float64  `yaml:"entropy_step"`
	Kinds       []string `yaml:"kinds"`
}

// GetSweepPreset loads a named sweep preset from a YAML file and combines it
// with the runtime flags that are not part of the preset (seed, workers,
// output directory).
func GetSweepPreset(path, name string, seed int64, workers int, outputDir string) (bench.SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bench.SweepConfig{}, fmt.Errorf("read preset file: %w", err)
	}

	var cfg SweepPresetFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return bench.SweepConfig{}, fmt.Errorf("parse preset file: %w", err)
	}

	preset, ok := cfg.Sweeps[name]
	if !ok {
		return bench.SweepConfig{}, fmt.Errorf("no preset %q in %s", name, path)
	}
	logrus.Infof("Using sweep preset %v", name)

	parsedKinds, err := parseKinds(preset.Kinds)
	if err != nil {
		return bench.SweepConfig{}, err
	}

	return bench.SweepConfig{
		Sizes:     bench.SizeRange{Min: preset.SizeMin, Max: preset.SizeMax, Step: preset.SizeStep},
		Entropies: bench.EntropyRange{Min: preset.EntropyMin, Max: preset.EntropyMax, Step: preset.EntropyStep},
		Kinds:     parsedKinds,
		Seed:      seed,
		Workers:   workers,
		OutputDir: outputDir,
	}, nil
}
