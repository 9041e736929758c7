package main

import (
	"context"
	"fmt"

	"github.com/lox/pongforbots/cmd/pongforbots/shared"
	"github.com/lox/pongforbots/internal/modelcache"
	"github.com/lox/pongforbots/internal/policy"
)

// ModelCmd groups model cache commands
type ModelCmd struct {
	Fetch ModelFetchCmd `cmd:"" help:"Download a model version into the cache"`
	Clear ModelClearCmd `cmd:"" help:"Remove every cached model"`
	Ls    ModelLsCmd    `cmd:"" help:"List cached models"`
}

type ModelFetchCmd struct {
	URL      string `required:"" help:"Base URL models are served from"`
	Name     string `default:"pong" help:"Model name"`
	Version  int    `default:"1" help:"Model version"`
	CacheDir string `help:"Model cache directory (default user cache dir)"`
}

func (c *ModelFetchCmd) Run() error {
	logger := shared.SetupLogger("info", false)
	cache, err := modelcache.New(cacheDirOr(c.CacheDir), c.URL, modelcache.WithLogger(logger))
	if err != nil {
		return err
	}
	data, err := cache.Get(context.Background(), c.Name, c.Version)
	if err != nil {
		return err
	}
	model, err := policy.UnmarshalModel(data)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d bytes, model %q v%d\n", modelcache.Key(c.Name, c.Version), len(data), model.Name, model.Version)
	return nil
}

type ModelClearCmd struct {
	CacheDir string `help:"Model cache directory (default user cache dir)"`
}

func (c *ModelClearCmd) Run() error {
	cache, err := modelcache.New(cacheDirOr(c.CacheDir), "")
	if err != nil {
		return err
	}
	return cache.Clear()
}

type ModelLsCmd struct {
	CacheDir string `help:"Model cache directory (default user cache dir)"`
}

func (c *ModelLsCmd) Run() error {
	cache, err := modelcache.New(cacheDirOr(c.CacheDir), "")
	if err != nil {
		return err
	}
	keys, err := cache.Keys()
	if err != nil {
		return err
	}
	size, err := cache.Size()
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	fmt.Printf("%d models, %d bytes\n", len(keys), size)
	return nil
}

func cacheDirOr(dir string) string {
	if dir != "" {
		return dir
	}
	return defaultCacheDir()
}
