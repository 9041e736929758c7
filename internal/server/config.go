package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/policy"
)

// Config represents the complete server configuration
type Config struct {
	Server *ServerSettings `hcl:"server,block"`
	Match  *MatchSettings  `hcl:"match,block"`
	Policy *PolicySettings `hcl:"policy,block"`
}

// ServerSettings contains listener and loop configuration
type ServerSettings struct {
	Address        string `hcl:"address,optional"`
	Port           int    `hcl:"port,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	TickRate       int    `hcl:"tick_rate,optional"`       // simulation steps per second
	BroadcastEvery int    `hcl:"broadcast_every,optional"` // ticks between state broadcasts
}

// MatchSettings decides who plays each side
type MatchSettings struct {
	Player1       string `hcl:"player1,optional"`
	Player2       string `hcl:"player2,optional"`
	BotDifficulty string `hcl:"bot_difficulty,optional"`
	TopScore      int    `hcl:"top_score,optional"`
	Seed          int64  `hcl:"seed,optional"`
}

// PolicySettings describes where AI players get their model
type PolicySettings struct {
	Kind     string `hcl:"kind,optional"` // "tracker" or "linear"
	Name     string `hcl:"name,optional"`
	Version  int    `hcl:"version,optional"`
	URL      string `hcl:"url,optional"`
	CacheDir string `hcl:"cache_dir,optional"`
}

const (
	defaultAddress        = "0.0.0.0"
	defaultPort           = 8765
	defaultTickRate       = 60
	defaultBroadcastEvery = 2
)

// DefaultConfig returns the reference setup: a human on the right against an
// AI on the left, simulated at 60 ticks per second.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig loads server configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Match == nil {
		c.Match = &MatchSettings{}
	}
	if c.Policy == nil {
		c.Policy = &PolicySettings{}
	}

	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.TickRate == 0 {
		c.Server.TickRate = defaultTickRate
	}
	if c.Server.BroadcastEvery == 0 {
		c.Server.BroadcastEvery = defaultBroadcastEvery
	}

	if c.Match.Player1 == "" {
		c.Match.Player1 = "human"
	}
	if c.Match.Player2 == "" {
		c.Match.Player2 = "ai"
	}
	if c.Match.BotDifficulty == "" {
		c.Match.BotDifficulty = "hard"
	}
	if c.Match.TopScore == 0 {
		c.Match.TopScore = game.DefaultConfig().TopScore
	}

	if c.Policy.Kind == "" {
		c.Policy.Kind = "tracker"
	}
	if c.Policy.Name == "" {
		c.Policy.Name = "pong"
	}
	if c.Policy.Version == 0 {
		c.Policy.Version = 1
	}
}

// Validate validates the server configuration. Controller kinds outside
// human, bot and ai are reported as control.ErrInvalidKind.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.TickRate < 1 || c.Server.TickRate > 1000 {
		return fmt.Errorf("tick rate must be between 1 and 1000, got %d", c.Server.TickRate)
	}
	if c.Server.BroadcastEvery < 1 {
		return fmt.Errorf("broadcast_every must be positive, got %d", c.Server.BroadcastEvery)
	}
	if _, err := control.ParseKind(c.Match.Player1); err != nil {
		return fmt.Errorf("match player1: %w", err)
	}
	if _, err := control.ParseKind(c.Match.Player2); err != nil {
		return fmt.Errorf("match player2: %w", err)
	}
	if _, err := game.ParseDifficulty(c.Match.BotDifficulty); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if c.Match.TopScore < 1 {
		return fmt.Errorf("match top_score must be positive, got %d", c.Match.TopScore)
	}
	switch c.Policy.Kind {
	case "tracker":
	case "linear":
		if c.Policy.URL == "" || c.Policy.CacheDir == "" {
			return fmt.Errorf("policy kind linear needs url and cache_dir")
		}
	default:
		return fmt.Errorf("unknown policy kind %q", c.Policy.Kind)
	}
	return nil
}

// Address returns the full listen address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// TickInterval returns the time between simulation steps
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Server.TickRate)
}

// Controllers resolves both match sides. Policy is attached to AI sides.
func (c *Config) Controllers(p policy.Policy) (control.Controller, control.Controller, error) {
	difficulty, err := game.ParseDifficulty(c.Match.BotDifficulty)
	if err != nil {
		return control.Controller{}, control.Controller{}, err
	}
	var out [2]control.Controller
	for i, name := range []string{c.Match.Player1, c.Match.Player2} {
		kind, err := control.ParseKind(name)
		if err != nil {
			return control.Controller{}, control.Controller{}, err
		}
		out[i] = control.Controller{Kind: kind, Difficulty: difficulty}
		if kind == control.AI {
			out[i].Policy = p
		}
	}
	return out[0], out[1], nil
}

// GameConfig returns the simulation rules for the match.
func (c *Config) GameConfig() game.Config {
	g := game.DefaultConfig()
	g.TopScore = c.Match.TopScore
	return g
}
