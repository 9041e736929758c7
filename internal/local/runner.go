// Package local plays matches in-process: an interactive runner for the TUI
// and a headless batch simulator.
package local

import (
	"context"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/replay"
)

// DefaultInterval is the reference 60 Hz tick.
const DefaultInterval = time.Second / 60

// Options configures a Runner.
type Options struct {
	Clock    quartz.Clock
	Interval time.Duration
	Logger   zerolog.Logger
	Recorder *replay.Recorder // optional
}

// Runner owns an episode and steps it on a ticker. Methods may be called
// from any goroutine.
type Runner struct {
	opts   Options
	logger zerolog.Logger

	mu       sync.Mutex
	episode  *game.Episode
	resolver *control.Resolver
	seq      uint64

	started chan struct{}
}

// NewRunner wraps ep, driven by resolver.
func NewRunner(ep *game.Episode, resolver *control.Resolver, opts Options) *Runner {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Runner{
		opts:     opts,
		logger:   opts.Logger.With().Str("component", "local").Logger(),
		episode:  ep,
		resolver: resolver,
		started:  make(chan struct{}),
	}
}

// Started is closed once Run is ticking.
func (r *Runner) Started() <-chan struct{} {
	return r.started
}

// Run steps the episode once per interval until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ticker := r.opts.Clock.NewTicker(r.opts.Interval, "local", "tick")
	defer ticker.Stop()
	close(r.started)

	for {
		select {
		case <-ctx.Done():
			r.resolver.Wait()
			return nil
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.episode.Done() {
		return
	}
	a1, a2 := r.resolver.Resolve(ctx, r.snapshot())
	res, err := r.episode.Step(a1, a2)
	if err != nil {
		r.logger.Error().Err(err).Msg("Step rejected")
		return
	}
	r.seq++
	if r.opts.Recorder != nil {
		r.opts.Recorder.Step(a1, a2)
	}
	if res.Done {
		s1, s2 := r.episode.Score()
		r.logger.Info().Stringer("winner", r.episode.Winner()).Int("score1", s1).Int("score2", s2).Msg("Match finished")
	}
}

func (r *Runner) snapshot() game.Snapshot {
	s := r.episode.Snapshot()
	s.Seq = r.seq
	return s
}

// SetIntent records the held direction for a human side.
func (r *Runner) SetIntent(p game.Player, a game.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolver.SetIntent(p, a)
}

// SetKind switches who controls p.
func (r *Runner) SetKind(p game.Player, kind control.Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolver.SetKind(p, kind)
}

// SetMode is SetKind for front ends that cannot act on an error.
func (r *Runner) SetMode(p game.Player, kind control.Kind) {
	if err := r.SetKind(p, kind); err != nil {
		r.logger.Warn().Err(err).Stringer("player", p).Msg("Mode change rejected")
	}
}

// Reset restarts the match.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.episode.Reset()
	r.resolver.Reset()
	r.seq++
	if r.opts.Recorder != nil {
		r.opts.Recorder.Reset()
	}
	r.logger.Info().Msg("Match reset")
}

// Snapshot returns the current state.
func (r *Runner) Snapshot() game.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// View returns the current state for display. A local match is always live.
func (r *Runner) View() control.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return control.View{
		Snapshot:  r.snapshot(),
		Live:      true,
		Connected: true,
		Modes:     r.resolver.Kinds(),
	}
}
