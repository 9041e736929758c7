package main

import (
	"errors"
	"fmt"

	"github.com/lox/pongforbots/internal/replay"
)

// ReplayCmd re-runs a recorded match
type ReplayCmd struct {
	File string `arg:"" type:"existingfile" help:"Replay file written by local --record or simulate --record-dir"`
}

func (c *ReplayCmd) Run() error {
	rec, err := replay.Load(c.File)
	if err != nil {
		return err
	}

	snap, err := replay.Verify(rec)
	fmt.Printf("seed %d, %d ticks\n", rec.Seed, rec.Ticks())
	fmt.Printf("final score %d-%d, done=%t, seq=%d\n", snap.Score1, snap.Score2, snap.Done, snap.Seq)
	if errors.Is(err, replay.ErrMismatch) {
		return err
	}
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}
	fmt.Println("replay matches the recorded result")
	return nil
}
