package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/pongforbots/internal/modelcache"
	"github.com/lox/pongforbots/internal/policy"
)

// LoadPolicy builds the policy described by the policy block. A linear model
// is fetched through the model cache; callers may run without a policy when
// this fails, in which case AI sides stay still.
func (c *Config) LoadPolicy(ctx context.Context, logger zerolog.Logger) (policy.Policy, error) {
	field := c.GameConfig()
	switch c.Policy.Kind {
	case "tracker":
		return policy.NewTracker(field), nil
	case "linear":
		cache, err := modelcache.New(c.Policy.CacheDir, c.Policy.URL, modelcache.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		lin, err := LoadLinear(ctx, cache, c.Policy.Name, c.Policy.Version)
		if err != nil {
			return nil, err
		}
		return lin, nil
	default:
		return nil, fmt.Errorf("unknown policy kind %q", c.Policy.Kind)
	}
}

// LoadLinear gets a linear model blob from cache and decodes it.
func LoadLinear(ctx context.Context, cache *modelcache.Cache, name string, version int) (*policy.Linear, error) {
	data, err := cache.Get(ctx, name, version)
	if err != nil {
		return nil, err
	}
	model, err := policy.UnmarshalModel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", modelcache.Key(name, version), err)
	}
	return policy.NewLinear(model)
}

