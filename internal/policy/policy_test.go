package policy

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/game"
)

func snapshotWithBall(x, y float64) game.Snapshot {
	return game.Snapshot{
		Ball:     game.BallState{X: x, Y: y},
		Paddle1Y: 420,
		Paddle2Y: 420,
	}
}

func history(f Frame) []Frame {
	return []Frame{f, f, f}
}

func countLit(f Frame) int {
	n := 0
	for _, px := range f {
		if px != 0 {
			n++
		}
	}
	return n
}

func TestRasterize(t *testing.T) {
	cfg := game.DefaultConfig()
	f := Rasterize(snapshotWithBall(650, 470), cfg)

	for _, px := range f {
		assert.True(t, px == 0 || px == 255, "frame must be binarized")
	}

	// Paddle rows 36..47 in two columns each, ball 2x2.
	assert.Equal(t, 2*12*2+4, countLit(f))
	assert.Equal(t, uint8(255), f.At(41, 42), "ball")
	assert.Equal(t, uint8(255), f.At(36, 81), "right paddle top")
	assert.Equal(t, uint8(255), f.At(47, 1), "left paddle bottom")
	assert.Equal(t, uint8(0), f.At(35, 81))
	assert.Equal(t, uint8(0), f.At(10, 10))
}

func TestRasterizeClipsOffField(t *testing.T) {
	f := Rasterize(snapshotWithBall(-40, -40), game.DefaultConfig())
	assert.Equal(t, 2*12*2, countLit(f), "a ball outside the field lights nothing")
}

func TestBinarize(t *testing.T) {
	gray := make([]uint8, FrameSize*FrameSize)
	gray[0] = 1
	gray[5] = 200
	f := Binarize(gray)
	assert.Equal(t, uint8(255), f[0])
	assert.Equal(t, uint8(255), f[5])
	assert.Equal(t, 2, countLit(f))
}

func TestFrameStack(t *testing.T) {
	var s FrameStack
	assert.False(t, s.Ready())
	assert.Empty(t, s.Frames())

	mark := func(i int) Frame {
		var f Frame
		f[0] = uint8(i)
		return f
	}

	for i := 1; i <= 5; i++ {
		s.Push(mark(i))
	}
	require.True(t, s.Ready())

	frames := s.Frames()
	require.Len(t, frames, HistoryLen)
	assert.Equal(t, []uint8{3, 4, 5}, []uint8{frames[0][0], frames[1][0], frames[2][0]}, "oldest first")

	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestTracker(t *testing.T) {
	cfg := game.DefaultConfig()
	tr := NewTracker(cfg)
	ctx := context.Background()

	tests := []struct {
		name   string
		player game.Player
		ballY  float64
		want   game.Action
	}{
		{"ball below right paddle", game.Player1, 800, game.Down},
		{"ball above right paddle", game.Player1, 100, game.Up},
		{"ball level with right paddle", game.Player1, 470, game.Stay},
		{"ball below left paddle", game.Player2, 800, game.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Rasterize(snapshotWithBall(650, tt.ballY), cfg)
			got, err := tr.Act(ctx, tt.player, history(f))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := tr.Act(ctx, game.Player1, nil)
	require.ErrorIs(t, err, ErrNotReady)
}

func testModel(bias [3]float32, downWeight float32) *LinearModel {
	m := &LinearModel{Name: "pong", Version: 2, Bias: bias[:]}
	for a := range game.NumActions {
		row := make([]float32, InputSize)
		if game.Action(a) == game.Down {
			for i := range row {
				row[i] = downWeight
			}
		}
		m.Weights = append(m.Weights, row)
	}
	return m
}

func TestLinear(t *testing.T) {
	ctx := context.Background()

	l, err := NewLinear(testModel([3]float32{0, 0.5, 0}, 0.01))
	require.NoError(t, err)

	var empty Frame
	got, err := l.Act(ctx, game.Player1, history(empty))
	require.NoError(t, err)
	assert.Equal(t, game.Up, got, "bias decides on a blank field")

	lit := Rasterize(snapshotWithBall(650, 470), game.DefaultConfig())
	got, err = l.Act(ctx, game.Player2, history(lit))
	require.NoError(t, err)
	assert.Equal(t, game.Down, got)
}

func TestLinearModelEncoding(t *testing.T) {
	m := testModel([3]float32{1, 2, 3}, 0.25)
	data, err := MarshalModel(m)
	require.NoError(t, err)

	decoded, err := UnmarshalModel(data)
	require.NoError(t, err)
	assert.Equal(t, m.Name, decoded.Name)
	assert.Equal(t, m.Version, decoded.Version)
	assert.Equal(t, m.Bias, decoded.Bias)
	assert.Equal(t, float32(0.25), decoded.Weights[game.Down][InputSize-1])

	_, err = UnmarshalModel([]byte{0xc1})
	require.ErrorIs(t, err, ErrBadModel)

	short := &LinearModel{Weights: [][]float32{{1}}, Bias: []float32{0}}
	data, err = MarshalModel(short)
	require.NoError(t, err)
	_, err = UnmarshalModel(data)
	require.ErrorIs(t, err, ErrBadModel)
}

func TestAsync(t *testing.T) {
	ctx := context.Background()
	var f Frame

	t.Run("stay until the first decision lands", func(t *testing.T) {
		release := make(chan struct{})
		p := Func(func(ctx context.Context, _ game.Player, _ []Frame) (game.Action, error) {
			<-release
			return game.Down, nil
		})
		a := NewAsync(p, game.Player1, zerolog.Nop())

		got, err := a.Poll(ctx, history(f))
		assert.ErrorIs(t, err, ErrNotReady)
		assert.Equal(t, game.Stay, got)

		close(release)
		a.Wait()

		got, err = a.Poll(ctx, history(f))
		require.NoError(t, err)
		assert.Equal(t, game.Down, got)
		a.Wait()
	})

	t.Run("short history never starts inference", func(t *testing.T) {
		calls := 0
		p := Func(func(context.Context, game.Player, []Frame) (game.Action, error) {
			calls++
			return game.Up, nil
		})
		a := NewAsync(p, game.Player2, zerolog.Nop())

		got, err := a.Poll(ctx, []Frame{f})
		assert.ErrorIs(t, err, ErrNotReady)
		assert.Equal(t, game.Stay, got)
		a.Wait()
		assert.Zero(t, calls)
	})

	t.Run("decisions from before a reset are dropped", func(t *testing.T) {
		releaseOld := make(chan struct{})
		var calls atomic.Int32
		p := Func(func(context.Context, game.Player, []Frame) (game.Action, error) {
			if calls.Add(1) == 1 {
				<-releaseOld
				return game.Up, nil
			}
			return game.Down, nil
		})
		a := NewAsync(p, game.Player1, zerolog.Nop())

		_, err := a.Poll(ctx, history(f))
		require.ErrorIs(t, err, ErrNotReady)

		a.Reset()
		got, err := a.Poll(ctx, history(f)) // starts a fresh inference
		assert.ErrorIs(t, err, ErrNotReady)
		assert.Equal(t, game.Stay, got)

		close(releaseOld)
		a.Wait()
		require.Equal(t, int32(2), calls.Load())

		got, err = a.Poll(ctx, history(f))
		require.NoError(t, err)
		assert.Equal(t, game.Down, got, "the pre-reset Up never lands")
		a.Wait()
	})

	t.Run("failures substitute stay", func(t *testing.T) {
		boom := errors.New("boom")
		p := Func(func(context.Context, game.Player, []Frame) (game.Action, error) {
			return game.Up, boom
		})
		a := NewAsync(p, game.Player1, zerolog.Nop())

		_, _ = a.Poll(ctx, history(f))
		a.Wait()

		got, err := a.Poll(ctx, history(f))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, game.Stay, got)
		a.Wait()
	})
}
