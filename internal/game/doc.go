// Package game implements the deterministic pong simulation core.
//
// The main type is Episode, which owns two paddles, a ball and the score of a
// single match. Episodes carry no hidden globals: all randomness (serve speed
// and direction, bounce jitter, bot exploration) comes from an injected Rand.
//
// # Basic Usage
//
//	ep, err := game.NewEpisode(game.DefaultConfig(), randutil.New(42))
//	if err != nil {
//	    return err
//	}
//	res, err := ep.Step(game.Up, game.Stay)
//	if errors.Is(err, game.ErrEpisodeDone) {
//	    ep.Reset()
//	}
//
// # Simulation Model
//
// Every Step runs Config.StepRepeat sub-steps. Each sub-step moves player 1's
// paddle, then player 2's, then integrates the ball one unit at a time so it
// can never tunnel through a paddle. Scoring is checked once per Step, after
// all sub-steps: a ball whose centre leaves the left edge scores for player 1
// (right paddle), leaving the right edge scores for player 2 (left paddle).
//
// # Deterministic Testing
//
// Pass a seeded source (randutil.New) to reproduce a match exactly, or a
// scripted Rand implementation to force specific serves and bounces.
package game
