package engine

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cookie-arcade/internal/core"
)

// countGame scores one point per step and ends after overAt steps.
type countGame struct {
	overAt int
	steps  int
	resets int
	cfg    core.RuntimeConfig
	state  core.GameState
	inputs []core.InputFrame
}

func (g *countGame) ID() string    { return "count" }
func (g *countGame) Title() string { return "Count" }

func (g *countGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.steps = 0
	g.state = core.GameState{Phase: core.PhaseRunning}
}

func (g *countGame) Step(in core.InputFrame) core.StepResult {
	if g.state.Over() {
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	g.state.Score++
	if g.overAt > 0 && g.state.Score >= g.overAt {
		g.state.Phase = core.PhaseOver
		g.state.Message = "caught"
	}
	return core.StepResult{State: g.state}
}

func (g *countGame) Render(dst *core.Screen) { dst.Clear() }
func (g *countGame) State() core.GameState   { return g.state }

func seq(seeds ...int64) func() int64 {
	i := 0
	return func() int64 {
		s := seeds[i%len(seeds)]
		i++
		return s
	}
}

func TestSessionGameOverHookFiresOnce(t *testing.T) {
	g := &countGame{overAt: 2}
	s := NewSession(g, core.RuntimeConfig{Seed: 9, TickRate: 60}, Options{})

	var results []Result
	s.OnGameOver(func(r Result) { results = append(results, r) })
	s.Start()

	for i := 0; i < 5; i++ {
		s.Tick()
	}

	if len(results) != 1 {
		t.Fatalf("game-over hook fired %d times, expected 1", len(results))
	}
	r := results[0]
	if r.GameID != "count" || r.Score != 2 || r.Ticks != 2 || r.Seed != 9 || r.Message != "caught" {
		t.Errorf("unexpected result: %+v", r)
	}
	if g.steps != 2 {
		t.Errorf("game stepped %d times after ending, expected 2", g.steps)
	}
	if !s.Over() {
		t.Error("session should report Over")
	}
}

func TestSessionPauseSkipsSteps(t *testing.T) {
	g := &countGame{}
	s := NewSession(g, core.RuntimeConfig{Seed: 1}, Options{})
	s.Start()

	s.Press(core.ActionPause)
	st := s.Tick()
	if !st.Paused || !s.Paused() {
		t.Error("session should be paused")
	}
	s.Tick()
	s.Tick()
	if g.steps != 0 {
		t.Errorf("paused session stepped the game %d times", g.steps)
	}

	s.Press(core.ActionPause)
	st = s.Tick()
	if st.Paused {
		t.Error("second pause should resume")
	}
	if g.steps != 1 || st.Score != 1 {
		t.Errorf("resuming tick should step once, steps=%d score=%d", g.steps, st.Score)
	}
}

func TestSessionRestartOnlyWhenOver(t *testing.T) {
	g := &countGame{overAt: 3}
	s := NewSession(g, core.RuntimeConfig{Seed: 5}, Options{Seeder: seq(100, 200)})

	resets := 0
	s.OnReset(func() { resets++ })
	s.Start()

	s.Press(core.ActionRestart)
	s.Tick()
	if g.resets != 1 || resets != 0 {
		t.Errorf("restart while running should be ignored, game resets=%d hooks=%d", g.resets, resets)
	}
	if s.Restart() {
		t.Error("Restart() while running should report false")
	}

	for !s.Over() {
		s.Tick()
	}
	if s.State().Message == "" {
		t.Fatal("finished run should carry a message")
	}

	s.Press(core.ActionRestart)
	st := s.Tick()
	if g.resets != 2 || resets != 1 {
		t.Errorf("restart after game over: game resets=%d hooks=%d", g.resets, resets)
	}
	if st.Over() || st.Score != 0 || st.Message != "" {
		t.Errorf("restart should clear state, got %+v", st)
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d after restart, expected 0", s.Ticks())
	}
	if s.Seed() != 100 {
		t.Errorf("restart should draw a new seed, got %d", s.Seed())
	}
	if g.steps != 0 {
		t.Error("restart tick should not step the game")
	}
}

func TestSessionFixedSeed(t *testing.T) {
	g := &countGame{overAt: 1}
	s := NewSession(g, core.RuntimeConfig{Seed: 77}, Options{FixedSeed: true, Seeder: seq(1)})
	s.Start()

	s.Tick()
	if !s.Restart() {
		t.Fatal("Restart() after game over should succeed")
	}
	if s.Seed() != 77 || g.cfg.Seed != 77 {
		t.Errorf("fixed seed should replay 77, got %d", s.Seed())
	}
}

func TestSessionZeroSeedUsesSeeder(t *testing.T) {
	g := &countGame{}
	s := NewSession(g, core.RuntimeConfig{}, Options{Seeder: seq(42)})
	s.Start()

	if g.cfg.Seed != 42 {
		t.Errorf("zero seed should come from the seeder, got %d", g.cfg.Seed)
	}
	if g.cfg.TickRate != 60 {
		t.Errorf("zero tick rate should default to 60, got %d", g.cfg.TickRate)
	}
}

func TestSessionForwardsAndClearsInput(t *testing.T) {
	g := &countGame{}
	s := NewSession(g, core.RuntimeConfig{Seed: 1}, Options{})
	s.Start()

	s.Press(core.ActionUp)
	s.Press(core.ActionUp)
	s.Tick()
	s.Tick()

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	if g.inputs[0].Count(core.ActionUp) != 2 {
		t.Errorf("first step should see two Up presses, got %d", g.inputs[0].Count(core.ActionUp))
	}
	if g.inputs[1].Has(core.ActionUp) {
		t.Error("input should be cleared after each tick")
	}
}

func TestSessionRenderPauseOverlay(t *testing.T) {
	g := &countGame{}
	s := NewSession(g, core.RuntimeConfig{Seed: 1}, Options{})
	s.Start()

	scr := core.NewScreen(40, 10)
	s.Press(core.ActionPause)
	s.Tick()
	s.Render(scr)

	found := false
	for y := 0; y < scr.Height(); y++ {
		if strings.Contains(scr.Row(y), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Errorf("paused render should show the overlay:\n%s", scr.String())
	}
}
