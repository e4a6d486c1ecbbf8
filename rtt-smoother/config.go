package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bostick/common/file"
	"github.com/bostick/common/logging"
)

type Config struct {
	WindowSize   int    `yaml:"window_size"`
	LogLevel     string `yaml:"log_level"`
	InputFile    string `yaml:"input_file"`
	TextfilePath string `yaml:"textfile_path"`
	Namespace    string `yaml:"namespace"`

	SyntheticTargets []string `yaml:"synthetic_targets"`
	SyntheticSamples int      `yaml:"synthetic_samples"`
	Seed             uint64   `yaml:"seed"`
}

func defaultConfig() Config {
	return Config{
		WindowSize:       20,
		LogLevel:         "info",
		SyntheticSamples: 100,
		Seed:             1,
	}
}

// loadConfig layers defaults, the optional YAML file named by CONFIG_FILE,
// and environment overrides, in that order.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := envString("CONFIG_FILE", ""); path != "" {
		raw, err := file.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.WindowSize = envInt("WINDOW_SIZE", cfg.WindowSize)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.InputFile = envString("INPUT_FILE", cfg.InputFile)
	cfg.TextfilePath = envString("TEXTFILE_PATH", cfg.TextfilePath)
	cfg.Namespace = envString("METRICS_NAMESPACE", cfg.Namespace)
	if targets := envList("SYNTHETIC_TARGETS"); targets != nil {
		cfg.SyntheticTargets = targets
	}
	cfg.SyntheticSamples = envInt("SYNTHETIC_SAMPLES", cfg.SyntheticSamples)
	cfg.Seed = uint64(envInt("SEED", int(cfg.Seed)))

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.WindowSize < 1 {
		errs = append(errs, fmt.Errorf("WINDOW_SIZE must be at least 1, got %d", c.WindowSize))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(c.SyntheticTargets) > 0 && c.SyntheticSamples < 1 {
		errs = append(errs, fmt.Errorf("SYNTHETIC_SAMPLES must be at least 1, got %d", c.SyntheticSamples))
	}
	return errors.Join(errs...)
}

func envString(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envList(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
