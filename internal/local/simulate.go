package local

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/randutil"
	"github.com/lox/pongforbots/internal/replay"
)

// SimulateOptions configures a batch of headless bot matches.
type SimulateOptions struct {
	Config     game.Config
	Difficulty [2]game.Difficulty
	MaxTicks   int  // per episode, 0 for DefaultMaxTicks
	Workers    int  // 0 for GOMAXPROCS
	Record     bool // attach a replay to every result
}

// DefaultMaxTicks bounds an episode that never finishes.
const DefaultMaxTicks = 100_000

// Result summarises one simulated episode.
type Result struct {
	Episode int
	Seed    int64
	Ticks   int
	Score1  int
	Score2  int
	Winner  game.Player // zero if MaxTicks was reached first
	Replay  *replay.Record
}

// Simulate plays n bot-vs-bot episodes in parallel. Episode i is seeded from
// seed and i alone, so results do not depend on scheduling.
func Simulate(ctx context.Context, n int, seed int64, opts SimulateOptions) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}
	if opts.Config.Width == 0 {
		opts.Config = game.DefaultConfig()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultMaxTicks
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range n {
		g.Go(func() error {
			res, err := playEpisode(ctx, i, randutil.DeriveSeed(seed, uint64(i)), opts)
			if err != nil {
				return fmt.Errorf("episode %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func playEpisode(ctx context.Context, idx int, seed int64, opts SimulateOptions) (Result, error) {
	cfg := opts.Config
	ep, err := game.NewEpisode(cfg, randutil.New(seed))
	if err != nil {
		return Result{}, err
	}
	bots := randutil.Derive(seed, 1)

	var rec *replay.Recorder
	if opts.Record {
		rec = replay.NewRecorder(seed, cfg)
	}

	ticks := 0
	for !ep.Done() && ticks < opts.MaxTicks {
		if ticks%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		s := ep.Snapshot()
		a1 := game.BotMove(opts.Difficulty[0], s.Ball, s.Paddle1Y, cfg.PaddleHeight, bots)
		a2 := game.BotMove(opts.Difficulty[1], s.Ball, s.Paddle2Y, cfg.PaddleHeight, bots)
		if _, err := ep.Step(a1, a2); err != nil {
			return Result{}, err
		}
		if rec != nil {
			rec.Step(a1, a2)
		}
		ticks++
	}

	s1, s2 := ep.Score()
	res := Result{
		Episode: idx,
		Seed:    seed,
		Ticks:   ticks,
		Score1:  s1,
		Score2:  s2,
		Winner:  ep.Winner(),
	}
	if rec != nil {
		final := ep.Snapshot()
		final.Seq = uint64(ticks)
		res.Replay = rec.Finish(final)
	}
	return res, nil
}

// Summary aggregates simulation results.
type Summary struct {
	Episodes   int
	Wins       [2]int
	Unfinished int
	MeanTicks  float64
}

// Summarize totals wins per player.
func Summarize(results []Result) Summary {
	s := Summary{Episodes: len(results)}
	total := 0
	for _, r := range results {
		total += r.Ticks
		if r.Winner.Valid() {
			s.Wins[r.Winner.Index()]++
		} else {
			s.Unfinished++
		}
	}
	if len(results) > 0 {
		s.MeanTicks = float64(total) / float64(len(results))
	}
	return s
}
