package game

// Paddle is a vertically moving bar with a fixed x position.
type Paddle struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	fieldH float64
	startY float64
}

// NewPaddle places a paddle at (x, y). Speed is the distance covered by one
// Move.
func NewPaddle(x, y, w, h, speed, fieldHeight float64) *Paddle {
	return &Paddle{X: x, Y: y, W: w, H: h, Speed: speed, fieldH: fieldHeight, startY: y}
}

// Move applies one discrete step. A step that would leave [0, fieldHeight-H]
// is rejected outright: the paddle stays where it is rather than being
// clamped against the wall.
func (p *Paddle) Move(a Action) {
	var ny float64
	switch a {
	case Up:
		ny = p.Y - p.Speed
	case Down:
		ny = p.Y + p.Speed
	default:
		return
	}
	if ny >= 0 && ny <= p.fieldH-p.H {
		p.Y = ny
	}
}

// Reset returns the paddle to its starting height.
func (p *Paddle) Reset() {
	p.Y = p.startY
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Center returns the y coordinate of the paddle's midpoint.
func (p *Paddle) Center() float64 {
	return p.Y + p.H/2
}
