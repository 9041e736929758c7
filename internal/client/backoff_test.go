package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff(t *testing.T) {
	t.Parallel()
	b := NewBackoff()

	var got []time.Duration
	for range 7 {
		got = append(got, b.Next())
	}
	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second,
		16 * time.Second, 30 * time.Second, 30 * time.Second,
	}, got)

	b.Reset()
	assert.Equal(t, time.Second, b.Next())
}
