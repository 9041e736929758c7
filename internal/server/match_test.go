package server

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/protocol"
	"github.com/lox/pongforbots/internal/randutil"
)

func newTestMatch(t *testing.T, cfg game.Config, c1, c2 control.Controller, out Broadcaster, clock quartz.Clock) *Match {
	t.Helper()
	rng := randutil.New(7)
	ep, err := game.NewEpisode(cfg, rng)
	require.NoError(t, err)
	resolver, err := control.NewResolver(cfg, rng, testLogger(), c1, c2)
	require.NoError(t, err)
	return NewMatch(ep, resolver, out, MatchOptions{
		Clock:          clock,
		Interval:       testInterval,
		BroadcastEvery: 2,
		Logger:         testLogger(),
	})
}

var (
	human = control.Controller{Kind: control.Human}
	bot   = control.Controller{Kind: control.Bot, Difficulty: game.Hard}
)

func TestMatchBroadcastsEveryOtherTick(t *testing.T) {
	out := newRecorder()
	m := newTestMatch(t, game.DefaultConfig(), human, human, out, quartz.NewMock(t))
	ctx := context.Background()

	for range 4 {
		m.tick(ctx)
	}

	require.Len(t, out.msgs, 2)
	assert.Equal(t, uint64(2), out.next(t).(*protocol.State).Seq)
	assert.Equal(t, uint64(4), out.next(t).(*protocol.State).Seq)
	assert.Equal(t, uint64(4), m.Status().Seq)
}

func TestMatchStopsSteppingWhenDone(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.TopScore = 1
	out := newRecorder()
	m := newTestMatch(t, cfg, bot, human, out, quartz.NewMock(t))
	ctx := context.Background()

	for i := 0; !m.Status().Done; i++ {
		require.Less(t, i, 100000, "match never finished")
		m.tick(ctx)
		for len(out.msgs) > 0 {
			<-out.msgs
		}
	}

	final := m.Status()
	for range 3 {
		m.tick(ctx)
	}
	assert.Equal(t, final, m.Status(), "a finished match is frozen")
	require.Len(t, out.msgs, 3, "a finished match broadcasts every tick")
	for range 3 {
		st := out.next(t).(*protocol.State)
		assert.True(t, st.Done)
		assert.Equal(t, final.Seq, st.Seq)
	}

	m.handle(ctx, command{kind: cmdReset})
	st := out.next(t).(*protocol.State)
	assert.False(t, st.Done)
	assert.Equal(t, final.Seq+1, st.Seq)
	assert.Equal(t, 0, st.Score1+st.Score2)
}

func TestMatchCommands(t *testing.T) {
	out := newRecorder()
	client := newRecorder()
	m := newTestMatch(t, game.DefaultConfig(), human, human, out, quartz.NewMock(t))
	ctx := context.Background()

	m.handle(ctx, command{kind: cmdMode, player: game.Player2, mode: control.AI, from: client})
	assert.Equal(t, protocol.NewMode(2, "ai"), client.next(t))
	assert.Equal(t, control.AI, m.Status().Kinds[1])

	m.handle(ctx, command{kind: cmdMode, player: game.Player1, mode: control.Kind(0), from: client})
	assert.Equal(t, "invalid_mode", client.next(t).(*protocol.Error).Code)

	m.handle(ctx, command{kind: cmdAction, player: game.Player1, action: game.Down})
	m.tick(ctx)
	m.handle(ctx, command{kind: cmdGetState, from: client})
	st := client.next(t).(*protocol.State)
	assert.Equal(t, 420.0+4*14, st.Paddle1.Y)
	assert.Equal(t, 420.0, st.Paddle2.Y, "an AI without a policy stays put")
}

func TestMatchRunLoop(t *testing.T) {
	mClock := quartz.NewMock(t)
	out := newRecorder()
	m := newTestMatch(t, game.DefaultConfig(), bot, bot, out, mClock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()
	<-m.Started()

	waitCtx := testContext(t)
	mClock.Advance(testInterval).MustWait(waitCtx)
	require.Eventually(t, func() bool { return m.Status().Seq == 1 }, time.Second, time.Millisecond)
	mClock.Advance(testInterval).MustWait(waitCtx)
	assert.Equal(t, uint64(2), out.next(t).(*protocol.State).Seq)

	require.NoError(t, m.Reset(waitCtx))
	assert.Equal(t, uint64(3), out.next(t).(*protocol.State).Seq)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("match loop did not stop")
	}
	require.ErrorIs(t, m.RequestState(context.Background(), out), ErrMatchStopped)
}
