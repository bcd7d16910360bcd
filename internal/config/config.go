package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/keepactive/keepactive/internal/engine"
)

// Worker topologies.
const (
	TopologyThread  = "thread"  // workers as goroutines in this process
	TopologyProcess = "process" // workers as spawned child processes
)

const envPrefix = "keepactive"

// Config holds the raw target lists and engine tuning before normalization.
// Precedence: built-in defaults < config file < KEEPACTIVE_* environment
// variables < command-line flags (applied by the caller).
type Config struct {
	WindowTitles []string      `envconfig:"WINDOWS"`
	ProcessNames []string      `envconfig:"EXECUTABLES"`
	Interval     time.Duration `envconfig:"INTERVAL"`
	Topology     string        `envconfig:"TOPOLOGY"`
}

// fileConfig is the YAML shape of a config file. Interval is a string so
// users can write "100ms" rather than nanoseconds.
type fileConfig struct {
	Windows     []string `yaml:"windows"`
	Executables []string `yaml:"executables"`
	Interval    string   `yaml:"interval"`
	Topology    string   `yaml:"topology"`
}

// Load builds a Config from an optional YAML file path plus environment
// overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Config{
		Interval: engine.DefaultInterval,
		Topology: TopologyThread,
	}

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if len(fc.Windows) > 0 {
		cfg.WindowTitles = fc.Windows
	}
	if len(fc.Executables) > 0 {
		cfg.ProcessNames = fc.Executables
	}
	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", fc.Interval, err)
		}
		cfg.Interval = d
	}
	if fc.Topology != "" {
		cfg.Topology = fc.Topology
	}
	return nil
}

func (c Config) validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	switch c.Topology {
	case TopologyThread, TopologyProcess:
		return nil
	default:
		return fmt.Errorf("unknown topology %q (use %s or %s)", c.Topology, TopologyThread, TopologyProcess)
	}
}
