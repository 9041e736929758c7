package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/randutil"
)

func newTestEpisode(t *testing.T) *Episode {
	t.Helper()
	ep, err := NewEpisode(DefaultConfig(), &scriptedRand{})
	require.NoError(t, err)
	return ep
}

func TestEpisodeReset(t *testing.T) {
	ep := newTestEpisode(t)

	assert.Equal(t, 1240.0, ep.Paddle(Player1).X, "player 1 defends the right edge")
	assert.Equal(t, 20.0, ep.Paddle(Player2).X, "player 2 defends the left edge")
	assert.Equal(t, 420.0, ep.Paddle(Player1).Y)
	assert.Equal(t, 420.0, ep.Paddle(Player2).Y)

	ep.paddle1.Y = 0
	ep.score1, ep.score2, ep.done = 20, 3, true
	ep.Reset()

	s := ep.Snapshot()
	assert.Equal(t, 420.0, s.Paddle1Y)
	assert.Equal(t, 420.0, s.Paddle2Y)
	assert.Zero(t, s.Score1)
	assert.Zero(t, s.Score2)
	assert.False(t, s.Done)
	assert.Equal(t, 640.0, s.Ball.X)
}

func TestEpisodeScoring(t *testing.T) {
	t.Run("ball leaving the left edge scores for player 1", func(t *testing.T) {
		ep := newTestEpisode(t)
		ep.ball.X, ep.ball.Y = -12, 300
		ep.ball.VX, ep.ball.VY = -2, 1

		res, err := ep.Step(Stay, Stay)
		require.NoError(t, err)

		assert.Equal(t, Player1, res.Scorer)
		assert.Equal(t, [2]int{1, -1}, res.Reward)
		s1, s2 := ep.Score()
		assert.Equal(t, 1, s1)
		assert.Equal(t, 0, s2)
		assert.Equal(t, 640.0, ep.ball.X, "ball is re-served after a point")
	})

	t.Run("ball leaving the right edge scores for player 2", func(t *testing.T) {
		ep := newTestEpisode(t)
		ep.ball.X, ep.ball.Y = 1275, 300
		ep.ball.VX, ep.ball.VY = 2, 1

		res, err := ep.Step(Stay, Stay)
		require.NoError(t, err)

		assert.Equal(t, Player2, res.Scorer)
		assert.Equal(t, [2]int{-1, 1}, res.Reward)
		s1, s2 := ep.Score()
		assert.Equal(t, 0, s1)
		assert.Equal(t, 1, s2)
	})

	t.Run("no score while the ball is in play", func(t *testing.T) {
		ep := newTestEpisode(t)
		res, err := ep.Step(Up, Down)
		require.NoError(t, err)

		assert.Zero(t, res.Scorer)
		assert.Equal(t, [2]int{}, res.Reward)
		assert.Equal(t, 420.0-4*14, ep.paddle1.Y, "paddles move once per sub-step")
		assert.Equal(t, 420.0+4*14, ep.paddle2.Y)
	})
}

func TestEpisodeTermination(t *testing.T) {
	ep := newTestEpisode(t)
	ep.score1 = 19
	ep.ball.X, ep.ball.Y = -12, 300
	ep.ball.VX, ep.ball.VY = -2, 1

	res, err := ep.Step(Stay, Stay)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.True(t, ep.Done())
	assert.Equal(t, Player1, ep.Winner())

	before := ep.Snapshot()
	res, err = ep.Step(Down, Down)
	require.ErrorIs(t, err, ErrEpisodeDone)
	assert.True(t, res.Done)
	assert.Equal(t, before, ep.Snapshot(), "a finished episode must not change")

	ep.Reset()
	assert.False(t, ep.Done())
	assert.Zero(t, ep.Winner())
	_, err = ep.Step(Stay, Stay)
	require.NoError(t, err)
}

func TestEpisodeDeterminism(t *testing.T) {
	run := func() []Snapshot {
		ep, err := NewEpisode(DefaultConfig(), randutil.New(7))
		require.NoError(t, err)
		actions := randutil.New(99)

		var out []Snapshot
		for range 2000 {
			a1 := Action(actions.IntN(NumActions))
			a2 := Action(actions.IntN(NumActions))
			if _, err := ep.Step(a1, a2); err != nil {
				ep.Reset()
			}
			out = append(out, ep.Snapshot())
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestNewEpisodeRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepRepeat = 0
	_, err := NewEpisode(cfg, &scriptedRand{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewEpisode(DefaultConfig(), nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
