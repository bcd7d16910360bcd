package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keepactive/keepactive/internal/config"
	"github.com/keepactive/keepactive/internal/engine"
	"github.com/keepactive/keepactive/internal/platform"
)

// addTargetFlags registers the target and tuning flags shared by the
// commands that drive the engine.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("window", "w", nil, "Window title to target (repeatable; fallback when no executable matches)")
	cmd.Flags().StringArrayP("exe", "e", nil, "Executable name to target (repeatable, e.g. notepad.exe)")
	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().Duration("interval", 0, "Polling interval (default 100ms)")
}

// loadConfig merges the optional config file, environment overrides, and
// command-line flags. Flag targets are appended to configured ones; the
// normalizer deduplicates later.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	titles, _ := cmd.Flags().GetStringArray("window")
	exes, _ := cmd.Flags().GetStringArray("exe")
	cfg.WindowTitles = append(cfg.WindowTitles, titles...)
	cfg.ProcessNames = append(cfg.ProcessNames, exes...)

	if cmd.Flags().Changed("interval") {
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			return cfg, fmt.Errorf("interval must be positive, got %s", interval)
		}
		cfg.Interval = interval
	}
	if cmd.Flags().Changed("topology") {
		cfg.Topology, _ = cmd.Flags().GetString("topology")
		if cfg.Topology != config.TopologyThread && cfg.Topology != config.TopologyProcess {
			return cfg, fmt.Errorf("unknown topology %q (use %s or %s)", cfg.Topology, config.TopologyThread, config.TopologyProcess)
		}
	}
	return cfg, nil
}

// ensureElevated runs the privilege bootstrap when the platform provides
// one. It reports true when the process has been relaunched elevated and
// must exit without constructing the engine.
func ensureElevated() (bool, error) {
	if platform.EnsureElevatedFunc == nil {
		return false, nil
	}
	return platform.EnsureElevatedFunc()
}

// newController builds a controller with the topology picked in cfg.
func newController(cfg config.Config) (*engine.Controller, error) {
	var runner engine.Runner
	switch cfg.Topology {
	case config.TopologyProcess:
		runner = &engine.ProcessRunner{Interval: cfg.Interval}
	default:
		provider, err := platform.NewProvider()
		if err != nil {
			return nil, err
		}
		runner = &engine.GoroutineRunner{
			Interval:  cfg.Interval,
			Locator:   engine.NewLocator(provider.Reader, logger),
			Activator: provider.Activator,
			Log:       logger,
		}
	}
	return engine.NewController(runner, logger), nil
}

// StringParam returns a string value from MCP tool arguments.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// BoolParam returns a bool value from MCP tool arguments.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// StringListParam returns a list of strings from MCP tool arguments,
// tolerating both a JSON array and a single string.
func StringListParam(params map[string]interface{}, key string) []string {
	switch v := params[key].(type) {
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
