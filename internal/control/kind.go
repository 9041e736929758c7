// Package control decides who moves each paddle: a human, a scripted bot or
// a learned policy. Drivers resolve both sides once per tick and hand plain
// actions to the simulation.
package control

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKind is returned for a controller kind outside human, bot and ai.
// It is a configuration error and is never recovered from.
var ErrInvalidKind = errors.New("all players must be ai, bot or human")

// Kind names a controller type.
type Kind int

const (
	Human Kind = iota + 1
	Bot
	AI
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Bot:
		return "bot"
	case AI:
		return "ai"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= Human && k <= AI
}

// ParseKind accepts "human", "bot" (or "bots") and "ai".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "bot", "bots":
		return Bot, nil
	case "ai":
		return AI, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
