package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "Bubble Sort"
	DefaultCount     = 10
	DefaultSpeed     = "Normal"
	DefaultTimeScale = 1.0
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
)

type Config struct {
	Algorithm string  `yaml:"algorithm"`
	Count     int     `yaml:"count"`
	Speed     string  `yaml:"speed"`
	Seed      int64   `yaml:"seed"`
	TimeScale float64 `yaml:"time_scale"`
	Theme     string  `yaml:"theme"`
	LogLevel  string  `yaml:"log_level"`
	// Values, when set, replaces random generation with a fixed sequence.
	Values []int `yaml:"values,omitempty"`
	// ExperimentalMergeSort lets the start action run the merge sort.
	ExperimentalMergeSort bool `yaml:"experimental_merge_sort"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Count:     DefaultCount,
		Speed:     DefaultSpeed,
		TimeScale: DefaultTimeScale,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a YAML file on top of DefaultConfig, so absent keys keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	out := *c
	if c.Values != nil {
		out.Values = append([]int(nil), c.Values...)
	}
	return &out
}
