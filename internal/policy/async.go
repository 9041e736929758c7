package policy

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/pongforbots/internal/game"
)

// DefaultInferenceTimeout bounds a single background decision.
const DefaultInferenceTimeout = 250 * time.Millisecond

// Async runs a Policy off the caller's goroutine. The simulation never waits
// for it: Poll hands back the most recent finished decision, or Stay.
type Async struct {
	policy  Policy
	player  game.Player
	timeout time.Duration
	logger  zerolog.Logger

	mu      sync.Mutex
	gen     uint64 // bumped by Reset; results from older generations are dropped
	running bool
	ready   bool
	action  game.Action
	err     error
	wg      sync.WaitGroup
}

// NewAsync wraps p for player.
func NewAsync(p Policy, player game.Player, logger zerolog.Logger) *Async {
	return &Async{
		policy:  p,
		player:  player,
		timeout: DefaultInferenceTimeout,
		logger:  logger.With().Str("component", "policy").Stringer("player", player).Logger(),
	}
}

// SetTimeout overrides the per-inference deadline.
func (a *Async) SetTimeout(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.timeout = d
}

// Poll returns the latest finished decision and, if no inference is in
// flight, starts one on frames. Poll takes ownership of frames.
func (a *Async) Poll(ctx context.Context, frames []Frame) (game.Action, error) {
	if err := checkHistory(frames); err != nil {
		return game.Stay, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		a.running = true
		a.wg.Add(1)
		go a.infer(ctx, a.gen, frames, a.timeout)
	}

	if a.err != nil {
		return game.Stay, a.err
	}
	if !a.ready {
		return game.Stay, ErrNotReady
	}
	return a.action, nil
}

// Wait blocks until any in-flight inference finishes.
func (a *Async) Wait() {
	a.wg.Wait()
}

// Reset forgets the last decision. An in-flight inference still runs to
// completion but its result is discarded, and the next Poll starts afresh.
func (a *Async) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.running = false
	a.ready = false
	a.action = game.Stay
	a.err = nil
}

func (a *Async) infer(ctx context.Context, gen uint64, frames []Frame, timeout time.Duration) {
	defer a.wg.Done()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	action, err := a.policy.Act(ctx, a.player, frames)

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		return
	}
	a.running = false

	if err != nil {
		if a.err == nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn().Err(err).Msg("Inference failed, substituting stay")
		}
		a.err = err
		a.ready = false
		a.action = game.Stay
		return
	}
	if a.err != nil {
		a.logger.Info().Msg("Inference recovered")
	}
	a.err = nil
	a.ready = true
	a.action = action.Normalize()
}
