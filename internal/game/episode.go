package game

import (
	"errors"
	"fmt"
)

// ErrEpisodeDone is returned by Step once a player has reached the top score.
// The episode stays terminal until Reset.
var ErrEpisodeDone = errors.New("episode is done")

// Episode is the complete state of one match.
type Episode struct {
	cfg     Config
	rng     Rand
	paddle1 *Paddle
	paddle2 *Paddle
	ball    *Ball
	score1  int
	score2  int
	done    bool
}

// StepResult describes what happened during a Step.
type StepResult struct {
	Scorer Player // zero if nobody scored
	Reward [2]int // per player, indexed by Player.Index
	Done   bool
}

// NewEpisode validates cfg and returns a freshly reset episode.
func NewEpisode(cfg Config, rng Rand) (*Episode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	e := &Episode{
		cfg: cfg,
		rng: rng,
		paddle1: NewPaddle(cfg.PaddleX(Player1), cfg.PaddleStartY(),
			cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, cfg.Height),
		paddle2: NewPaddle(cfg.PaddleX(Player2), cfg.PaddleStartY(),
			cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, cfg.Height),
	}
	e.Reset()
	return e, nil
}

// Reset starts a new match: paddles centred, a new ball served, scores zeroed.
func (e *Episode) Reset() {
	e.paddle1.Reset()
	e.paddle2.Reset()
	e.ball = NewBall(e.cfg, e.rng)
	e.score1 = 0
	e.score2 = 0
	e.done = false
}

// Step advances the match by one tick of Config.StepRepeat sub-steps.
func (e *Episode) Step(a1, a2 Action) (StepResult, error) {
	if e.done {
		return StepResult{Done: true}, ErrEpisodeDone
	}

	for range e.cfg.StepRepeat {
		e.paddle1.Move(a1)
		e.paddle2.Move(a2)
		e.ball.Move(e.paddle1.Rect(), e.paddle2.Rect())
	}

	var res StepResult
	center := e.ball.X + e.ball.W/2
	switch {
	case center < 0:
		e.score1++
		res.Scorer = Player1
		e.ball.Spawn()
	case center > e.cfg.Width:
		e.score2++
		res.Scorer = Player2
		e.ball.Spawn()
	}
	if res.Scorer != 0 {
		res.Reward[res.Scorer.Index()] = 1
		res.Reward[res.Scorer.Opponent().Index()] = -1
	}

	e.done = e.score1 >= e.cfg.TopScore || e.score2 >= e.cfg.TopScore
	res.Done = e.done
	return res, nil
}

// Done reports whether the match has finished.
func (e *Episode) Done() bool { return e.done }

// Score returns both scores.
func (e *Episode) Score() (int, int) { return e.score1, e.score2 }

// Winner returns the player that reached the top score, or zero.
func (e *Episode) Winner() Player {
	switch {
	case !e.done:
		return 0
	case e.score1 >= e.cfg.TopScore:
		return Player1
	default:
		return Player2
	}
}

// Config returns the rules the episode was created with.
func (e *Episode) Config() Config { return e.cfg }

// Paddle returns the paddle controlled by p.
func (e *Episode) Paddle(p Player) *Paddle {
	if p == Player1 {
		return e.paddle1
	}
	return e.paddle2
}

// Ball returns the ball.
func (e *Episode) Ball() *Ball { return e.ball }

// Snapshot copies the observable state.
func (e *Episode) Snapshot() Snapshot {
	return Snapshot{
		Ball: BallState{
			X:  e.ball.X,
			Y:  e.ball.Y,
			VX: e.ball.VX,
			VY: e.ball.VY,
		},
		Paddle1Y: e.paddle1.Y,
		Paddle2Y: e.paddle2.Y,
		Score1:   e.score1,
		Score2:   e.score2,
		Done:     e.done,
	}
}
