package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdfix/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring config files.
type envConfig struct {
	ConfigPath string // MDFIX_CONFIG: config file name or path
	InputDir   string // MDFIX_INPUT_DIR: default input directory
	OutputDir  string // MDFIX_OUTPUT_DIR: default output directory
	Style      string // MDFIX_STYLE: preview style name, path, or CSS
	Workers    int    // MDFIX_WORKERS: parallel workers
}

// knownEnvVars lists valid MDFIX_* environment variables.
var knownEnvVars = map[string]bool{
	"MDFIX_CONFIG":     true,
	"MDFIX_INPUT_DIR":  true,
	"MDFIX_OUTPUT_DIR": true,
	"MDFIX_STYLE":      true,
	"MDFIX_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDFIX_CONFIG"),
		InputDir:   os.Getenv("MDFIX_INPUT_DIR"),
		OutputDir:  os.Getenv("MDFIX_OUTPUT_DIR"),
		Style:      os.Getenv("MDFIX_STYLE"),
	}

	if workers := os.Getenv("MDFIX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MDFIX_* variable.
// Helps catch typos like MDFIX_WORKER.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MDFIX_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the environment variables
// that are set. Precedence: CLI flags > env vars > config file > defaults.
// CLI flags are applied afterwards by each command.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" {
		cfg.Render.Style = env.Style
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
