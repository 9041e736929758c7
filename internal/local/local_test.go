package local

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/randutil"
	"github.com/lox/pongforbots/internal/replay"
)

const testInterval = time.Second / 60

func startRunner(t *testing.T, seed int64, c1, c2 control.Controller, rec *replay.Recorder) (*Runner, *quartz.Mock) {
	t.Helper()
	cfg := game.DefaultConfig()
	ep, err := game.NewEpisode(cfg, randutil.New(seed))
	require.NoError(t, err)
	resolver, err := control.NewResolver(cfg, randutil.Derive(seed, 1), zerolog.Nop(), c1, c2)
	require.NoError(t, err)

	mClock := quartz.NewMock(t)
	r := NewRunner(ep, resolver, Options{Clock: mClock, Interval: testInterval, Logger: zerolog.Nop(), Recorder: rec})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = r.Run(ctx)
	}()
	<-r.Started()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return r, mClock
}

func advance(t *testing.T, r *Runner, mClock *quartz.Mock, ticks int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for range ticks {
		want := r.Snapshot().Seq + 1
		mClock.Advance(testInterval).MustWait(ctx)
		require.Eventually(t, func() bool { return r.Snapshot().Seq == want }, time.Second, time.Millisecond)
	}
}

func TestRunnerAppliesIntents(t *testing.T) {
	human := control.Controller{Kind: control.Human}
	r, mClock := startRunner(t, 3, human, human, nil)

	v := r.View()
	assert.True(t, v.Live)
	assert.Equal(t, [2]control.Kind{control.Human, control.Human}, v.Modes)
	start := v.Snapshot.Paddle1Y

	r.SetIntent(game.Player1, game.Up)
	r.SetIntent(game.Player2, game.Down)
	advance(t, r, mClock, 2)

	s := r.Snapshot()
	assert.Equal(t, uint64(2), s.Seq)
	assert.Equal(t, start-2*4*14, s.Paddle1Y)
	assert.Equal(t, start+2*4*14, s.Paddle2Y)

	t.Run("reset recentres and bumps seq", func(t *testing.T) {
		r.Reset()
		s := r.Snapshot()
		assert.Equal(t, uint64(3), s.Seq)
		assert.Equal(t, start, s.Paddle1Y)

		// intents are cleared by reset
		advance(t, r, mClock, 1)
		assert.Equal(t, start, r.Snapshot().Paddle1Y)
	})

	t.Run("mode changes", func(t *testing.T) {
		r.SetMode(game.Player2, control.Bot)
		assert.Equal(t, control.Bot, r.View().Modes[1])

		err := r.SetKind(game.Player1, control.Kind(42))
		require.ErrorIs(t, err, control.ErrInvalidKind)
		assert.Equal(t, control.Human, r.View().Modes[0])
	})
}

func TestRunnerRecordingReplays(t *testing.T) {
	seed := int64(21)
	bot := control.Controller{Kind: control.Bot, Difficulty: game.Hard}
	rec := replay.NewRecorder(seed, game.DefaultConfig())
	r, mClock := startRunner(t, seed, bot, bot, rec)

	advance(t, r, mClock, 30)
	r.Reset()
	advance(t, r, mClock, 30)

	live := r.Snapshot()
	got, err := replay.Verify(rec.Finish(live))
	require.NoError(t, err)
	assert.Equal(t, live, got)
}

func TestSimulateIsDeterministic(t *testing.T) {
	t.Parallel()
	opts := SimulateOptions{
		Difficulty: [2]game.Difficulty{game.Hard, game.Easy},
		Workers:    4,
	}

	a, err := Simulate(context.Background(), 6, 99, opts)
	require.NoError(t, err)
	b, err := Simulate(context.Background(), 6, 99, opts)
	require.NoError(t, err)
	require.Len(t, a, 6)
	assert.Equal(t, a, b)

	for i, r := range a {
		assert.Equal(t, i, r.Episode)
		assert.True(t, r.Winner.Valid(), "episode %d should finish", i)
		assert.Equal(t, 20, max(r.Score1, r.Score2))
	}

	sum := Summarize(a)
	assert.Equal(t, 6, sum.Episodes)
	assert.Equal(t, 6, sum.Wins[0]+sum.Wins[1])
	assert.Zero(t, sum.Unfinished)
	assert.Positive(t, sum.MeanTicks)
}

func TestSimulateRecordsReplays(t *testing.T) {
	t.Parallel()
	results, err := Simulate(context.Background(), 2, 5, SimulateOptions{
		MaxTicks: 400,
		Record:   true,
	})
	require.NoError(t, err)

	for _, r := range results {
		require.NotNil(t, r.Replay)
		assert.Equal(t, r.Ticks, r.Replay.Ticks())
		snap, err := replay.Verify(r.Replay)
		require.NoError(t, err)
		assert.Equal(t, r.Score1, snap.Score1)
	}
}

func TestSimulateHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, 3, 1, SimulateOptions{})
	require.ErrorIs(t, err, context.Canceled)
}
