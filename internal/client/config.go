package client

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/lox/pongforbots/internal/game"
)

// Environment variables read by FromEnv
const (
	// EnvServer is the server URL, e.g. ws://localhost:8765/ws
	EnvServer = "PONGFORBOTS_SERVER"

	// EnvSeed seeds client-side randomness such as bot exploration
	EnvSeed = "PONGFORBOTS_SEED"

	// EnvPlayer names the side a bot client drives: 1 or 2
	EnvPlayer = "PONGFORBOTS_PLAYER"
)

// EnvConfig holds configuration parsed from environment variables
type EnvConfig struct {
	ServerURL string
	Seed      int64
	Player    game.Player
}

// FromEnv parses configuration from environment variables. Unset values are
// left at their zero value so flags can fill them in.
func FromEnv() (*EnvConfig, error) {
	cfg := &EnvConfig{ServerURL: os.Getenv(EnvServer)}

	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if s := os.Getenv(EnvPlayer); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || !game.Player(n).Valid() {
			return nil, fmt.Errorf("invalid %s value %q: must be 1 or 2", EnvPlayer, s)
		}
		cfg.Player = game.Player(n)
	}

	return cfg, nil
}

// NormalizeURL converts http(s) URLs to ws(s) and adds the /ws path when the
// URL has none.
func NormalizeURL(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "ws://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid server URL %q: missing host", raw)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/ws"
	}
	return u.String(), nil
}
