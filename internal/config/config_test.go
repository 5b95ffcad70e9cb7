package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Render.Lang != "ja" {
		t.Errorf("Render.Lang = %q, want %q", cfg.Render.Lang, "ja")
	}
	if cfg.Fix.ProtectCode || cfg.Fix.SkipFrontmatter || cfg.Fix.NormalizeLineEndings {
		t.Errorf("Fix = %+v, want all disabled", cfg.Fix)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (auto)", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value", "", 10, false},
		{"at limit", "abcde", 5, false},
		{"over limit", "abcdef", 5, true},
		{"multibyte counted in bytes", "日本", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("field", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"workers max", func(c *Config) { c.Workers = MaxWorkers }, nil},
		{"negative workers", func(c *Config) { c.Workers = -1 }, ErrInvalidWorkers},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, ErrInvalidWorkers},
		{"valid extensions", func(c *Config) { c.Input.Extensions = []string{"md", ".mdx"} }, nil},
		{"empty extension", func(c *Config) { c.Input.Extensions = []string{""} }, ErrInvalidExt},
		{"extension with separator", func(c *Config) { c.Input.Extensions = []string{"../md"} }, ErrInvalidExt},
		{"too many extensions", func(c *Config) { c.Input.Extensions = make([]string, MaxExtensions+1) }, ErrInvalidExt},
		{"title too long", func(c *Config) { c.Render.Title = strings.Repeat("a", MaxTitleLength+1) }, ErrFieldTooLong},
		{"lang too long", func(c *Config) { c.Render.Lang = strings.Repeat("a", MaxLangLength+1) }, ErrFieldTooLong},
		{"inline CSS allowed", func(c *Config) { c.Render.Style = "body { margin: 0 }" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("YAML file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "mdfix.yaml", `input:
  defaultDir: "./docs"
  extensions: [md, mdx]
fix:
  protectCode: true
  skipFrontmatter: true
render:
  style: minimal
  title: 記事
workers: 4
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "./docs" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "./docs")
		}
		if len(cfg.Input.Extensions) != 2 {
			t.Errorf("Input.Extensions = %v, want 2 entries", cfg.Input.Extensions)
		}
		if !cfg.Fix.ProtectCode || !cfg.Fix.SkipFrontmatter {
			t.Errorf("Fix = %+v, want protectCode and skipFrontmatter", cfg.Fix)
		}
		if cfg.Render.Style != "minimal" || cfg.Render.Title != "記事" {
			t.Errorf("Render = %+v", cfg.Render)
		}
		if cfg.Render.Lang != "ja" {
			t.Errorf("Render.Lang = %q, want default %q", cfg.Render.Lang, "ja")
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("TOML file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "mdfix.toml", `workers = 2

[fix]
normalizeLineEndings = true

[render]
lang = "ja-JP"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Fix.NormalizeLineEndings {
			t.Error("Fix.NormalizeLineEndings = false, want true")
		}
		if cfg.Render.Lang != "ja-JP" {
			t.Errorf("Render.Lang = %q, want %q", cfg.Render.Lang, "ja-JP")
		}
		if cfg.Workers != 2 {
			t.Errorf("Workers = %d, want 2", cfg.Workers)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	parseErrors := []struct {
		name    string
		file    string
		content string
	}{
		{"invalid YAML", "invalid.yaml", "workers: [unclosed"},
		{"unknown YAML field", "unknown.yaml", "workers: 1\nunknownField: x\n"},
		{"invalid TOML", "invalid.toml", "workers = "},
		{"unknown TOML field", "unknown.toml", "[render]\ncolour = \"red\"\n"},
		{"empty YAML", "empty.yaml", ""},
	}
	for _, tt := range parseErrors {
		t.Run(tt.name+" returns ErrConfigParse", func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.file, tt.content)
			_, err := LoadConfig(path)
			if !errors.Is(err, ErrConfigParse) {
				t.Errorf("error = %v, want ErrConfigParse", err)
			}
		})
	}

	t.Run("invalid value returns validation error", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "workers: 1000\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidWorkers) {
			t.Errorf("error = %v, want ErrInvalidWorkers", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Getuid() == 0 {
			t.Skip("permission bits do not block reads here")
		}
		path := writeConfig(t, t.TempDir(), "unreadable.yaml", "workers: 1\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		t.Cleanup(func() { _ = os.Chmod(path, 0o600) })

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})
}

// Name resolution changes the working directory and environment, so these
// subtests cannot run in parallel.
func TestLoadConfig_NameResolution(t *testing.T) {
	t.Run("name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "team.yaml", "render:\n  style: fromname\n")
		t.Chdir(dir)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Render.Style != "fromname" {
			t.Errorf("Render.Style = %q, want %q", cfg.Render.Style, "fromname")
		}
	})

	t.Run("name resolves toml when no yaml exists", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "team.toml", "workers = 3\n")
		t.Chdir(dir)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("name resolves in user config directory", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
		}
		home := t.TempDir()
		if err := os.MkdirAll(filepath.Join(home, "go-mdfix"), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		writeConfig(t, filepath.Join(home, "go-mdfix"), "shared.yml", "workers: 5\n")
		t.Chdir(t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", home)

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 5 {
			t.Errorf("Workers = %d, want 5", cfg.Workers)
		}
	})

	t.Run("missing name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		_, err := LoadConfig("absent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		for _, want := range []string{"absent.yaml", "absent.yml", "absent.toml"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q should mention %q", err, want)
			}
		}
	})
}

func TestSearchPaths(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	got := SearchPaths("team")
	want := []string{
		"team.yaml", "team.yml", "team.toml",
		filepath.Join(home, "go-mdfix", "team.yaml"),
		filepath.Join(home, "go-mdfix", "team.yml"),
		filepath.Join(home, "go-mdfix", "team.toml"),
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("SearchPaths() = %v, want %v", got, want)
	}
}
