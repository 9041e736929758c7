package tui

import (
	"math"
	"strings"

	"github.com/lox/pongforbots/internal/game"
)

type cell uint8

const (
	cellEmpty cell = iota
	cellPlayer1
	cellPlayer2
	cellBall
)

// grid rasterises a snapshot onto cols x rows character cells.
func grid(s game.Snapshot, cfg game.Config, cols, rows int) [][]cell {
	g := make([][]cell, rows)
	for r := range g {
		g[r] = make([]cell, cols)
	}

	paint := func(x, y, w, h float64, c cell) {
		c0, c1 := cellSpan(x, w, cfg.Width, cols)
		r0, r1 := cellSpan(y, h, cfg.Height, rows)
		for r := r0; r <= r1; r++ {
			for col := c0; col <= c1; col++ {
				g[r][col] = c
			}
		}
	}
	paint(cfg.PaddleX(game.Player1), s.Paddle1Y, cfg.PaddleWidth, cfg.PaddleHeight, cellPlayer1)
	paint(cfg.PaddleX(game.Player2), s.Paddle2Y, cfg.PaddleWidth, cfg.PaddleHeight, cellPlayer2)
	paint(s.Ball.X, s.Ball.Y, cfg.BallSize, cfg.BallSize, cellBall)
	return g
}

// cellSpan maps [pos, pos+size) in a field of extent onto cell indices,
// clamped to the grid.
func cellSpan(pos, size, extent float64, cells int) (int, int) {
	scale := float64(cells) / extent
	first := int(math.Floor(pos * scale))
	last := int(math.Ceil((pos+size)*scale)) - 1
	first = max(0, min(first, cells-1))
	last = max(first, min(last, cells-1))
	return first, last
}

var cellGlyph = [...]string{
	cellEmpty:   " ",
	cellPlayer1: "█",
	cellPlayer2: "█",
	cellBall:    "●",
}

// renderGrid draws g with one style per run of identical cells.
func renderGrid(g [][]cell) string {
	lines := make([]string, len(g))
	for r, row := range g {
		var b strings.Builder
		for i := 0; i < len(row); {
			j := i
			for j < len(row) && row[j] == row[i] {
				j++
			}
			run := strings.Repeat(cellGlyph[row[i]], j-i)
			switch row[i] {
			case cellPlayer1:
				run = Player1Style.Render(run)
			case cellPlayer2:
				run = Player2Style.Render(run)
			case cellBall:
				run = BallStyle.Render(run)
			}
			b.WriteString(run)
			i = j
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}
