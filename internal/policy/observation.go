package policy

import (
	"math"

	"github.com/lox/pongforbots/internal/game"
)

const (
	// FrameSize is the edge length of an observation frame.
	FrameSize = 84
	// HistoryLen is the number of frames a policy consumes per decision.
	HistoryLen = 3

	lit = 255
)

// Frame is a single binarized observation, row major.
type Frame [FrameSize * FrameSize]uint8

// At returns the cell at row r, column c.
func (f *Frame) At(r, c int) uint8 {
	return f[r*FrameSize+c]
}

// Binarize converts an arbitrary grayscale image of FrameSize x FrameSize
// pixels into a Frame: any non-zero pixel becomes 255.
func Binarize(gray []uint8) Frame {
	var f Frame
	for i := range min(len(gray), len(f)) {
		if gray[i] > 0 {
			f[i] = lit
		}
	}
	return f
}

// Rasterize renders a snapshot onto a downscaled frame. A cell is lit when
// its footprint on the field overlaps a paddle or the ball.
func Rasterize(s game.Snapshot, cfg game.Config) Frame {
	var f Frame
	cellW := cfg.Width / FrameSize
	cellH := cfg.Height / FrameSize

	fill := func(r game.Rect) {
		c0, c1 := span(r.X, r.W, cellW)
		r0, r1 := span(r.Y, r.H, cellH)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				f[row*FrameSize+col] = lit
			}
		}
	}

	fill(game.Rect{X: cfg.PaddleX(game.Player1), Y: s.Paddle1Y, W: cfg.PaddleWidth, H: cfg.PaddleHeight})
	fill(game.Rect{X: cfg.PaddleX(game.Player2), Y: s.Paddle2Y, W: cfg.PaddleWidth, H: cfg.PaddleHeight})
	fill(game.Rect{X: s.Ball.X, Y: s.Ball.Y, W: cfg.BallSize, H: cfg.BallSize})
	return f
}

// span returns the inclusive range of cells a segment [pos, pos+size) touches.
// An empty range is returned as (1, 0).
func span(pos, size, cell float64) (int, int) {
	lo := int(math.Floor(pos / cell))
	hi := int(math.Ceil((pos+size)/cell)) - 1
	lo = max(lo, 0)
	hi = min(hi, FrameSize-1)
	if lo > hi {
		return 1, 0
	}
	return lo, hi
}
