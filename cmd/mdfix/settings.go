package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdfix"
	"github.com/alnah/go-mdfix/internal/assets"
	"github.com/alnah/go-mdfix/internal/config"
	"github.com/alnah/go-mdfix/internal/fileutil"
	"github.com/alnah/go-mdfix/internal/hints"
)

// loadSettings resolves configuration from the config file and the
// environment. Command flags are merged by the caller.
func loadSettings(common commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if !common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// fixerOptions turns resolved settings into library options.
func fixerOptions(cfg *config.Config) []mdfix.Option {
	return []mdfix.Option{
		mdfix.WithProtectCode(cfg.Fix.ProtectCode),
		mdfix.WithSkipFrontmatter(cfg.Fix.SkipFrontmatter),
		mdfix.WithNormalizeLineEndings(cfg.Fix.NormalizeLineEndings),
	}
}

// newFixer builds a Fixer and attaches a hint to style errors.
func newFixer(opts ...mdfix.Option) (*mdfix.Fixer, error) {
	fixer, err := mdfix.NewFixer(opts...)
	if err != nil {
		if errors.Is(err, mdfix.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.ListStyles()))
		}
		return nil, err
	}
	return fixer, nil
}
