package main

import (
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config holds the settings that may come from a YAML file. Flags override
// the file.
type config struct {
	// Field is "real" or "complex".
	Field string `yaml:"field"`
	// Trace is the trace level: "error", "info" or "debug".
	Trace string `yaml:"trace"`
	// Constants are names the number parser recognizes, as expressions.
	Constants map[string]string `yaml:"constants"`
	// Given binds symbols to values, as expressions.
	Given map[string]string `yaml:"given"`
}

// loadConfig reads a config file. An empty name gives the defaults.
func loadConfig(name string) (*config, error) {
	cfg := &config{}
	if name != "" {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", name)
		}
	}
	if cfg.Field == "" {
		cfg.Field = "real"
	}
	if cfg.Trace == "" {
		cfg.Trace = "error"
	}
	return cfg, nil
}

// addGiven parses a name=value flag into cfg.Given.
func (cfg *config) addGiven(s string) error {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return errors.Errorf(`symbol bindings must be "name=value", not %q`, s)
	}
	if cfg.Given == nil {
		cfg.Given = map[string]string{}
	}
	cfg.Given[strings.TrimSpace(d[0])] = strings.TrimSpace(d[1])
	return nil
}

// setTraceLevel sets the level of the core tracer.
func setTraceLevel(level string) error {
	switch level {
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return errors.Errorf("unknown trace level %q", level)
	}
	return nil
}
