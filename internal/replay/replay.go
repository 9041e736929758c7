// Package replay records the actions applied to a match so it can be re-run
// exactly from its seed.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lox/pongforbots/internal/fileutil"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/randutil"
)

// FormatVersion is written into every record.
const FormatVersion = 1

// resetMark stands for a match reset in the action log.
const resetMark = 'r'

var (
	ErrBadRecord = errors.New("malformed replay")
	ErrMismatch  = errors.New("replay does not reproduce recorded result")
)

// Record is everything needed to reproduce a match. Actions holds two digits
// per tick (player 1 then player 2, 0 stay 1 up 2 down) and an 'r' for every
// reset.
type Record struct {
	Version int         `toml:"version"`
	Seed    int64       `toml:"seed"`
	Config  game.Config `toml:"config"`
	Actions string      `toml:"actions"`
	Final   Final       `toml:"final"`
}

// Final is the recorded outcome used to verify a replay.
type Final struct {
	Seq    uint64 `toml:"seq"`
	Score1 int    `toml:"score1"`
	Score2 int    `toml:"score2"`
	Done   bool   `toml:"done"`
}

// Ticks counts recorded steps.
func (r *Record) Ticks() int {
	return (len(r.Actions) - strings.Count(r.Actions, string(resetMark))) / 2
}

// Recorder accumulates a Record while a match is played. It is safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	seed    int64
	cfg     game.Config
	actions strings.Builder
}

// NewRecorder starts a record for a match seeded with seed.
func NewRecorder(seed int64, cfg game.Config) *Recorder {
	return &Recorder{seed: seed, cfg: cfg}
}

// Step logs one applied tick.
func (r *Recorder) Step(a1, a2 game.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions.WriteByte(byte('0' + a1.Normalize()))
	r.actions.WriteByte(byte('0' + a2.Normalize()))
}

// Reset logs a match reset.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions.WriteByte(resetMark)
}

// Finish returns the record with final as its expected outcome.
func (r *Recorder) Finish(final game.Snapshot) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Record{
		Version: FormatVersion,
		Seed:    r.seed,
		Config:  r.cfg,
		Actions: r.actions.String(),
		Final: Final{
			Seq:    final.Seq,
			Score1: final.Score1,
			Score2: final.Score2,
			Done:   final.Done,
		},
	}
}

// Encode writes rec as TOML.
func Encode(w io.Writer, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: record is nil", ErrBadRecord)
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(rec)
}

// Save writes rec to path atomically.
func Save(path string, rec *Record) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, rec)
	})
}

// Load reads a record written by Save.
func Load(path string) (*Record, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a TOML record.
func Decode(r io.Reader) (*Record, error) {
	var rec Record
	if _, err := toml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadRecord, rec.Version)
	}
	return &rec, nil
}

// Play re-runs rec from its seed and returns the final snapshot. Seq counts
// steps and resets the way a live match does.
func Play(rec *Record) (game.Snapshot, error) {
	ep, err := game.NewEpisode(rec.Config, randutil.New(rec.Seed))
	if err != nil {
		return game.Snapshot{}, err
	}

	var seq uint64
	log := rec.Actions
	for i := 0; i < len(log); {
		if log[i] == resetMark {
			ep.Reset()
			seq++
			i++
			continue
		}
		if i+1 >= len(log) {
			return game.Snapshot{}, fmt.Errorf("%w: truncated action at offset %d", ErrBadRecord, i)
		}
		a1, a2 := game.Action(log[i]-'0'), game.Action(log[i+1]-'0')
		if !a1.Valid() || !a2.Valid() {
			return game.Snapshot{}, fmt.Errorf("%w: invalid action %q at offset %d", ErrBadRecord, log[i:i+2], i)
		}
		if _, err := ep.Step(a1, a2); err != nil {
			return game.Snapshot{}, fmt.Errorf("%w: tick at offset %d: %v", ErrBadRecord, i, err)
		}
		seq++
		i += 2
	}

	snap := ep.Snapshot()
	snap.Seq = seq
	return snap, nil
}

// Verify plays rec and checks it ends where it was recorded to.
func Verify(rec *Record) (game.Snapshot, error) {
	snap, err := Play(rec)
	if err != nil {
		return snap, err
	}
	got := Final{Seq: snap.Seq, Score1: snap.Score1, Score2: snap.Score2, Done: snap.Done}
	if got != rec.Final {
		return snap, fmt.Errorf("%w: got %+v, recorded %+v", ErrMismatch, got, rec.Final)
	}
	return snap, nil
}
