package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/policy"
)

// Controller describes how one paddle is driven. Difficulty applies to Bot,
// Policy to AI; both are ignored for Human.
type Controller struct {
	Kind       Kind
	Difficulty game.Difficulty
	Policy     policy.Policy
}

type slot struct {
	ctrl      Controller
	intent    game.Action
	frames    policy.FrameStack
	async     *policy.Async
	available bool
}

// Resolver turns the current state plus pending human intents into one
// action per player. It is not safe for concurrent use; drivers call it from
// their tick goroutine.
type Resolver struct {
	cfg        game.Config
	rng        game.Rand
	logger     zerolog.Logger
	difficulty game.Difficulty
	policy     policy.Policy
	slots      [2]*slot
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDefaultPolicy sets the policy used when a side switches to AI without
// naming one.
func WithDefaultPolicy(p policy.Policy) ResolverOption {
	return func(r *Resolver) { r.policy = p }
}

// WithDefaultDifficulty sets the difficulty used when a side switches to Bot.
func WithDefaultDifficulty(d game.Difficulty) ResolverOption {
	return func(r *Resolver) { r.difficulty = d }
}

// NewResolver validates both controllers. An unknown kind is returned as
// ErrInvalidKind before any simulation starts.
func NewResolver(cfg game.Config, rng game.Rand, logger zerolog.Logger, c1, c2 Controller, opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{
		cfg:    cfg,
		rng:    rng,
		logger: logger.With().Str("component", "control").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for i, c := range [2]Controller{c1, c2} {
		p := game.Players[i]
		if err := validate(c); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		r.slots[i] = &slot{ctrl: c, available: true}
		r.attach(p)
	}
	return r, nil
}

func validate(c Controller) error {
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidKind, c.Kind)
	}
	return nil
}

func (r *Resolver) attach(p game.Player) {
	s := r.slots[p.Index()]
	s.frames.Reset()
	s.async = nil
	if s.ctrl.Kind == AI && s.ctrl.Policy != nil {
		s.async = policy.NewAsync(s.ctrl.Policy, p, r.logger)
	}
}

// SetController replaces the controller for p.
func (r *Resolver) SetController(p game.Player, c Controller) error {
	if !p.Valid() {
		return fmt.Errorf("unknown player %d", int(p))
	}
	if err := validate(c); err != nil {
		return err
	}
	r.slots[p.Index()].ctrl = c
	r.slots[p.Index()].available = true
	r.attach(p)
	r.logger.Info().Stringer("player", p).Stringer("kind", c.Kind).Msg("Controller changed")
	return nil
}

// SetKind switches p to kind using the resolver's defaults.
func (r *Resolver) SetKind(p game.Player, kind Kind) error {
	return r.SetController(p, Controller{Kind: kind, Difficulty: r.difficulty, Policy: r.policy})
}

// Kind returns the controller kind for p.
func (r *Resolver) Kind(p game.Player) Kind {
	return r.slots[p.Index()].ctrl.Kind
}

// Kinds returns both controller kinds.
func (r *Resolver) Kinds() [2]Kind {
	return [2]Kind{r.slots[0].ctrl.Kind, r.slots[1].ctrl.Kind}
}

// PolicyLoaded reports whether AI sides have a policy to call.
func (r *Resolver) PolicyLoaded() bool {
	return r.policy != nil
}

// SetIntent records the latest human intent for p. The last value wins and
// persists until replaced.
func (r *Resolver) SetIntent(p game.Player, a game.Action) {
	if !p.Valid() {
		return
	}
	r.slots[p.Index()].intent = a.Normalize()
}

// Reset clears intents and frame histories.
func (r *Resolver) Reset() {
	for _, s := range r.slots {
		s.intent = game.Stay
		s.frames.Reset()
		if s.async != nil {
			s.async.Reset()
		}
		s.available = true
	}
}

// Resolve returns the actions for this tick given the current state.
func (r *Resolver) Resolve(ctx context.Context, snap game.Snapshot) (game.Action, game.Action) {
	var frame policy.Frame
	rendered := false
	var out [2]game.Action

	for i, s := range r.slots {
		p := game.Players[i]
		switch s.ctrl.Kind {
		case Human:
			out[i] = s.intent
		case Bot:
			out[i] = game.BotMove(s.ctrl.Difficulty, snap.Ball, snap.PaddleY(p), r.cfg.PaddleHeight, r.rng)
		case AI:
			if !rendered {
				frame = policy.Rasterize(snap, r.cfg)
				rendered = true
			}
			s.frames.Push(frame)
			out[i] = r.resolvePolicy(ctx, p, s)
		}
	}
	return out[0], out[1]
}

func (r *Resolver) resolvePolicy(ctx context.Context, p game.Player, s *slot) game.Action {
	if s.async == nil {
		r.markUnavailable(p, s, errors.New("no policy loaded"))
		return game.Stay
	}
	action, err := s.async.Poll(ctx, s.frames.Frames())
	if err != nil {
		if !errors.Is(err, policy.ErrNotReady) {
			r.markUnavailable(p, s, err)
		}
		return game.Stay
	}
	if !s.available {
		r.logger.Info().Stringer("player", p).Msg("Policy available")
		s.available = true
	}
	return action
}

func (r *Resolver) markUnavailable(p game.Player, s *slot, err error) {
	if s.available {
		r.logger.Warn().Err(err).Stringer("player", p).Msg("Policy unavailable, substituting stay")
		s.available = false
	}
}

// Wait blocks until any background inference has finished.
func (r *Resolver) Wait() {
	for _, s := range r.slots {
		if s.async != nil {
			s.async.Wait()
		}
	}
}
