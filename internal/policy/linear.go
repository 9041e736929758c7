package policy

//go:generate msgp
//msgp:ignore Linear

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/pongforbots/internal/game"
)

// InputSize is the length of the flattened observation a model consumes.
const InputSize = HistoryLen * FrameSize * FrameSize

var ErrBadModel = errors.New("malformed model")

// LinearModel is the serialized form of a Linear policy: one weight row and
// one bias per action over the flattened, 0..1 scaled frame history.
type LinearModel struct {
	Name    string      `msg:"name"`
	Version int         `msg:"version"`
	Weights [][]float32 `msg:"weights"`
	Bias    []float32   `msg:"bias"`
}

// Validate checks the model dimensions.
func (m *LinearModel) Validate() error {
	if len(m.Weights) != game.NumActions || len(m.Bias) != game.NumActions {
		return fmt.Errorf("%w: want %d actions, got %d rows and %d biases",
			ErrBadModel, game.NumActions, len(m.Weights), len(m.Bias))
	}
	for i, row := range m.Weights {
		if len(row) != InputSize {
			return fmt.Errorf("%w: row %d has %d weights, want %d", ErrBadModel, i, len(row), InputSize)
		}
	}
	return nil
}

// MarshalModel serializes m to msgpack.
func MarshalModel(m *LinearModel) ([]byte, error) {
	return m.MarshalMsg(nil)
}

// UnmarshalModel parses and validates a msgpack model blob.
func UnmarshalModel(data []byte) (*LinearModel, error) {
	var m LinearModel
	if _, err := m.UnmarshalMsg(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadModel, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Linear scores every action with a dot product over the frame history and
// picks the argmax. The same weights serve both sides.
type Linear struct {
	model *LinearModel
}

// NewLinear returns a policy backed by a validated model.
func NewLinear(m *LinearModel) (*Linear, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Linear{model: m}, nil
}

// Model returns the underlying weights.
func (l *Linear) Model() *LinearModel {
	return l.model
}

func (l *Linear) Act(ctx context.Context, _ game.Player, frames []Frame) (game.Action, error) {
	if err := checkHistory(frames); err != nil {
		return game.Stay, err
	}
	frames = frames[len(frames)-HistoryLen:]

	logits := make([]float32, game.NumActions)
	for a, row := range l.model.Weights {
		if err := ctx.Err(); err != nil {
			return game.Stay, err
		}
		sum := l.model.Bias[a]
		for fi := range frames {
			off := fi * FrameSize * FrameSize
			for i, px := range frames[fi] {
				if px != 0 {
					sum += row[off+i]
				}
			}
		}
		logits[a] = sum
	}
	return argmax(logits), nil
}
