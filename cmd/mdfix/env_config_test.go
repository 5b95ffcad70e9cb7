package main

// Notes:
// - loadEnvConfig: we test every MDFIX_* variable, and that invalid or
//   non-positive worker counts are ignored rather than reported.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that set variables override config values and
//   unset ones leave them alone.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-mdfix/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("MDFIX_CONFIG", "/path/to/config.yaml")
		t.Setenv("MDFIX_INPUT_DIR", "/input")
		t.Setenv("MDFIX_OUTPUT_DIR", "/output")
		t.Setenv("MDFIX_STYLE", "minimal")
		t.Setenv("MDFIX_WORKERS", "4")

		cfg := loadEnvConfig()

		want := envConfig{
			ConfigPath: "/path/to/config.yaml",
			InputDir:   "/input",
			OutputDir:  "/output",
			Style:      "minimal",
			Workers:    4,
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	for _, workers := range []string{"abc", "0", "-2"} {
		t.Run("ignored workers "+workers, func(t *testing.T) {
			t.Setenv("MDFIX_WORKERS", workers)

			if cfg := loadEnvConfig(); cfg.Workers != 0 {
				t.Errorf("Workers = %d, want 0 for %q", cfg.Workers, workers)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("unknown variable warns", func(t *testing.T) {
		t.Setenv("MDFIX_WORKER", "2")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "unknown environment variable MDFIX_WORKER (typo?)") {
			t.Errorf("expected typo warning, got %q", buf.String())
		}
	})

	t.Run("known variable is silent", func(t *testing.T) {
		t.Setenv("MDFIX_STYLE", "default")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "MDFIX_STYLE") {
			t.Errorf("known variable should not warn, got %q", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment overrides config
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Input.DefaultDir = "docs"
		cfg.Render.Style = "default"
		cfg.Workers = 2

		applyEnvConfig(&envConfig{InputDir: "notes", OutputDir: "out", Style: "minimal", Workers: 8}, cfg)

		if cfg.Input.DefaultDir != "notes" {
			t.Errorf("Input.DefaultDir = %q, want notes", cfg.Input.DefaultDir)
		}
		if cfg.Output.DefaultDir != "out" {
			t.Errorf("Output.DefaultDir = %q, want out", cfg.Output.DefaultDir)
		}
		if cfg.Render.Style != "minimal" {
			t.Errorf("Render.Style = %q, want minimal", cfg.Render.Style)
		}
		if cfg.Workers != 8 {
			t.Errorf("Workers = %d, want 8", cfg.Workers)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Input.DefaultDir = "docs"
		cfg.Workers = 2

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Input.DefaultDir != "docs" {
			t.Errorf("Input.DefaultDir = %q, want docs", cfg.Input.DefaultDir)
		}
		if cfg.Workers != 2 {
			t.Errorf("Workers = %d, want 2", cfg.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadSettings - Config name resolution and hints
// ---------------------------------------------------------------------------

func TestLoadSettings(t *testing.T) {
	t.Run("config name from environment", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "team.yaml", "fix:\n  protectCode: true\n")
		t.Setenv("MDFIX_CONFIG", path)

		env := newTestEnv("")
		cfg, err := loadSettings(commonFlags{}, env.Environment)
		if err != nil {
			t.Fatalf("loadSettings() error = %v", err)
		}
		if !cfg.Fix.ProtectCode {
			t.Error("Fix.ProtectCode = false, want true from config")
		}
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("MDFIX_CONFIG", writeFile(t, dir, "env.yaml", "workers: 2\n"))
		flagPath := writeFile(t, dir, "flag.yaml", "workers: 3\n")

		env := newTestEnv("")
		cfg, err := loadSettings(commonFlags{config: flagPath}, env.Environment)
		if err != nil {
			t.Fatalf("loadSettings() error = %v", err)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3 from --config", cfg.Workers)
		}
	})

	t.Run("missing named config carries hint", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		env := newTestEnv("")
		_, err := loadSettings(commonFlags{config: "absent"}, env.Environment)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "hint: use --config") {
			t.Errorf("error should carry hint, got %q", err)
		}
	})

	t.Run("no config uses defaults", func(t *testing.T) {
		t.Setenv("MDFIX_CONFIG", "")

		env := newTestEnv("")
		cfg, err := loadSettings(commonFlags{}, env.Environment)
		if err != nil {
			t.Fatalf("loadSettings() error = %v", err)
		}
		if cfg.Render.Lang != "ja" {
			t.Errorf("Render.Lang = %q, want ja", cfg.Render.Lang)
		}
	})
}
