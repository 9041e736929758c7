package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lox/pongforbots/internal/policy"
	"github.com/lox/pongforbots/internal/server"
)

// PolicyFlags selects the policy used by AI sides of a local match.
type PolicyFlags struct {
	Policy       string `default:"tracker" enum:"tracker,linear" help:"AI policy (tracker|linear)"`
	ModelURL     string `help:"Base URL linear models are fetched from"`
	ModelName    string `default:"pong" help:"Linear model name"`
	ModelVersion int    `default:"1" help:"Linear model version"`
	CacheDir     string `help:"Model cache directory (default user cache dir)"`
}

func (f PolicyFlags) load(ctx context.Context, cfg *server.Config, logger zerolog.Logger) (policy.Policy, error) {
	cfg.Policy.Kind = f.Policy
	cfg.Policy.URL = f.ModelURL
	cfg.Policy.Name = f.ModelName
	cfg.Policy.Version = f.ModelVersion
	cfg.Policy.CacheDir = f.CacheDir
	if cfg.Policy.CacheDir == "" {
		cfg.Policy.CacheDir = defaultCacheDir()
	}
	return cfg.LoadPolicy(ctx, logger)
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pongforbots", "models")
}
