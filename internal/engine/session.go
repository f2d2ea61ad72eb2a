// Package engine drives a registered game at a fixed tick rate.
// It owns the pieces every host shares: pending input, host-level pause,
// restart handling and the game-over/reset hooks used for scores and sound.
package engine

import (
	"time"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/registry"
)

// Result describes a finished run, passed to game-over hooks.
type Result struct {
	GameID  string
	Score   int
	Ticks   int
	Seed    int64
	Message string
}

// Options tunes a Session.
type Options struct {
	// Seeder produces seeds for a zero RuntimeConfig.Seed and for every
	// restart. Nil means time-based seeds.
	Seeder func() int64

	// FixedSeed replays the configured seed on every restart.
	FixedSeed bool
}

// Session wraps one game instance with input buffering and run bookkeeping.
// It is not safe for concurrent use; hosts call it from a single goroutine.
type Session struct {
	game   registry.Game
	cfg    core.RuntimeConfig
	opts   Options
	input  core.InputFrame
	state  core.GameState
	paused bool
	ticks  int

	onGameOver []func(Result)
	onReset    []func()
}

// NewSession creates a session for game. Call Start before ticking.
func NewSession(game registry.Game, cfg core.RuntimeConfig, opts Options) *Session {
	if opts.Seeder == nil {
		opts.Seeder = func() int64 { return time.Now().UnixNano() }
	}
	if cfg.Seed == 0 {
		cfg.Seed = opts.Seeder()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return &Session{
		game:  game,
		cfg:   cfg,
		opts:  opts,
		input: core.NewInputFrame(),
	}
}

// OnGameOver registers fn to run once per run, on the tick the game ends.
func (s *Session) OnGameOver(fn func(Result)) {
	s.onGameOver = append(s.onGameOver, fn)
}

// OnReset registers fn to run after every restart.
func (s *Session) OnReset(fn func()) {
	s.onReset = append(s.onReset, fn)
}

// Start resets the game with the session config.
func (s *Session) Start() {
	s.game.Reset(s.cfg)
	s.state = s.game.State()
	s.paused = false
	s.ticks = 0
	s.input.Clear()
}

// Press queues an action for the next tick.
func (s *Session) Press(a core.Action) {
	s.input.Set(a)
}

// Tick applies the queued input and advances the game by one step.
// Restart is honored only after the game is over; paused or finished
// sessions never step the game.
func (s *Session) Tick() core.GameState {
	defer s.input.Clear()

	if s.input.Has(core.ActionRestart) && s.state.Over() {
		s.restart()
		return s.State()
	}

	if s.input.Has(core.ActionPause) && !s.state.Over() {
		s.paused = !s.paused
	}

	if s.state.Over() || s.paused {
		return s.State()
	}

	res := s.game.Step(s.input)
	s.ticks++
	wasOver := s.state.Over()
	s.state = res.State

	if s.state.Over() && !wasOver {
		result := Result{
			GameID:  s.game.ID(),
			Score:   s.state.Score,
			Ticks:   s.ticks,
			Seed:    s.cfg.Seed,
			Message: s.state.Message,
		}
		for _, fn := range s.onGameOver {
			fn(result)
		}
	}

	return s.State()
}

// Restart resets the game immediately if it is over.
// Reports whether a restart happened.
func (s *Session) Restart() bool {
	if !s.state.Over() {
		return false
	}
	s.restart()
	s.input.Clear()
	return true
}

func (s *Session) restart() {
	if !s.opts.FixedSeed {
		s.cfg.Seed = s.opts.Seeder()
	}
	s.Start()
	for _, fn := range s.onReset {
		fn()
	}
}

// Resize updates the terminal dimensions reported to the game on the next reset.
func (s *Session) Resize(w, h int) {
	s.cfg.ScreenW = w
	s.cfg.ScreenH = h
}

// State returns the latest game state with the host pause flag applied.
func (s *Session) State() core.GameState {
	st := s.state
	st.Paused = s.paused
	return st
}

// Over reports whether the current run has ended.
func (s *Session) Over() bool { return s.state.Over() }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Ticks returns the number of steps in the current run.
func (s *Session) Ticks() int { return s.ticks }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Config returns the runtime config the game was last reset with.
func (s *Session) Config() core.RuntimeConfig { return s.cfg }

// Game returns the wrapped game.
func (s *Session) Game() registry.Game { return s.game }

// Render draws the game, plus a pause overlay when paused.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)
	if s.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}
