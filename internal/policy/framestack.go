package policy

// FrameStack keeps the most recent HistoryLen frames.
type FrameStack struct {
	frames [HistoryLen]Frame
	n      int
	head   int
}

// Push appends a frame, evicting the oldest once full.
func (s *FrameStack) Push(f Frame) {
	s.frames[s.head] = f
	s.head = (s.head + 1) % HistoryLen
	if s.n < HistoryLen {
		s.n++
	}
}

// Ready reports whether a full history is available.
func (s *FrameStack) Ready() bool {
	return s.n == HistoryLen
}

// Len returns the number of buffered frames.
func (s *FrameStack) Len() int {
	return s.n
}

// Frames returns a copy of the buffered frames, oldest first.
func (s *FrameStack) Frames() []Frame {
	out := make([]Frame, 0, s.n)
	start := (s.head - s.n + HistoryLen) % HistoryLen
	for i := range s.n {
		out = append(out, s.frames[(start+i)%HistoryLen])
	}
	return out
}

// Reset discards all frames.
func (s *FrameStack) Reset() {
	s.n = 0
	s.head = 0
}
