package client

import "time"

const (
	DefaultInitialBackoff = time.Second
	DefaultMaxBackoff     = 30 * time.Second
)

// Backoff produces reconnect delays that double after every failure up to a
// ceiling.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
	next    time.Duration
}

// NewBackoff returns the reference schedule: 1s, 2s, 4s ... capped at 30s.
func NewBackoff() *Backoff {
	return &Backoff{Initial: DefaultInitialBackoff, Max: DefaultMaxBackoff}
}

// Next returns the delay before the next attempt and doubles the one after.
func (b *Backoff) Next() time.Duration {
	if b.next == 0 {
		b.next = b.Initial
	}
	d := b.next
	b.next = min(b.next*2, b.Max)
	return d
}

// Reset restarts the schedule after a successful connection.
func (b *Backoff) Reset() {
	b.next = 0
}
