package prediction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/game"
)

func newPredictor(human1, human2 bool) *Predictor {
	p := New(game.DefaultConfig(), DefaultConfig())
	p.SetHuman(game.Player1, human1)
	p.SetHuman(game.Player2, human2)
	return p
}

func snap(seq uint64, y1, y2 float64) game.Snapshot {
	return game.Snapshot{Seq: seq, Paddle1Y: y1, Paddle2Y: y2, Ball: game.BallState{X: 100, Y: 200, VX: 3, VY: -2}}
}

func TestAdvanceMovesOnlyHumanPaddles(t *testing.T) {
	p := newPredictor(true, false)
	p.Advance(game.Up, game.Down)

	assert.Equal(t, 412.0, p.LocalY(game.Player1))
	assert.Equal(t, 420.0, p.LocalY(game.Player2))
}

func TestAdvanceRejectsMovesPastWalls(t *testing.T) {
	p := newPredictor(true, true)
	_, err := p.Apply(snap(1, 4, 838))
	require.NoError(t, err)
	// Far from the centred start, both snap.
	require.Equal(t, 4.0, p.LocalY(game.Player1))

	p.Advance(game.Up, game.Down)
	assert.Equal(t, 4.0, p.LocalY(game.Player1))
	assert.Equal(t, 838.0, p.LocalY(game.Player2))
}

func TestApplySmallDesyncBlends(t *testing.T) {
	p := newPredictor(true, false)
	_, err := p.Apply(snap(1, 420, 420))
	require.NoError(t, err)

	p.Advance(game.Up, game.Stay) // local 412
	corr, err := p.Apply(snap(2, 422, 300))
	require.NoError(t, err)

	assert.True(t, corr[0].Predicted)
	assert.False(t, corr[0].Snapped)
	assert.InDelta(t, 10.0, corr[0].Diff, 1e-9)
	assert.InDelta(t, 415.0, p.LocalY(game.Player1), 1e-9, "412 + 10*0.3")
	assert.Equal(t, 300.0, p.LocalY(game.Player2), "remote paddles mirror the server")
}

func TestApplyConvergesGeometrically(t *testing.T) {
	const serverY = 438.0 // 18 below the centred start, inside the snap threshold
	p := newPredictor(true, false)
	diff0 := serverY - p.LocalY(game.Player1)
	require.LessOrEqual(t, math.Abs(diff0), DefaultConfig().SnapThreshold)

	converged := -1
	for k := 1; k <= 40; k++ {
		corr, err := p.Apply(snap(uint64(k), serverY, 420))
		require.NoError(t, err)
		require.False(t, corr[0].Snapped, "snapshot %d", k)

		diff := math.Abs(serverY - p.LocalY(game.Player1))
		assert.InDelta(t, math.Abs(diff0)*math.Pow(0.7, float64(k)), diff, 1e-9, "snapshot %d", k)
		if converged < 0 && diff < 0.01 {
			converged = k
		}
	}

	require.Positive(t, converged, "never came within 0.01 of the server")
	assert.Equal(t, 22, converged, "18 * 0.7^22 is the first value below 0.01")
}

func TestApplyLargeDesyncSnaps(t *testing.T) {
	p := newPredictor(true, true)
	corr, err := p.Apply(snap(1, 500, 300))
	require.NoError(t, err)

	assert.True(t, corr[0].Snapped)
	assert.True(t, corr[1].Snapped)
	assert.Equal(t, 500.0, p.LocalY(game.Player1))
	assert.Equal(t, 300.0, p.LocalY(game.Player2))
}

func TestApplyExactlyAtThresholdBlends(t *testing.T) {
	p := newPredictor(true, false)
	corr, err := p.Apply(snap(1, 440, 420))
	require.NoError(t, err)

	assert.False(t, corr[0].Snapped)
	assert.InDelta(t, 426.0, p.LocalY(game.Player1), 1e-9)
}

func TestApplyClampsServerY(t *testing.T) {
	p := newPredictor(false, true)
	_, err := p.Apply(snap(1, -50, 2000))
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.LocalY(game.Player1))
	assert.Equal(t, 840.0, p.LocalY(game.Player2))
}

func TestApplyDiscardsStaleSnapshots(t *testing.T) {
	p := newPredictor(false, false)
	_, err := p.Apply(snap(5, 100, 100))
	require.NoError(t, err)

	_, err = p.Apply(snap(4, 200, 200))
	require.ErrorIs(t, err, ErrStale)
	_, err = p.Apply(snap(5, 200, 200))
	require.ErrorIs(t, err, ErrStale)
	assert.Equal(t, 100.0, p.LocalY(game.Player1))

	p.Forget()
	_, err = p.Apply(snap(1, 200, 200))
	require.NoError(t, err, "a forgotten history accepts any sequence")
}

func TestViewKeepsServerBall(t *testing.T) {
	p := newPredictor(true, false)
	_, ok := p.View()
	assert.False(t, ok)

	s := snap(1, 420, 420)
	s.Score1 = 3
	_, err := p.Apply(s)
	require.NoError(t, err)
	p.Advance(game.Down, game.Stay)

	v, ok := p.View()
	require.True(t, ok)
	assert.Equal(t, s.Ball, v.Ball)
	assert.Equal(t, 3, v.Score1)
	assert.Equal(t, 428.0, v.Paddle1Y)
	assert.Equal(t, 420.0, v.Paddle2Y)
}
