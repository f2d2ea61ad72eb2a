package term

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/engine"
	"github.com/vovakirdan/cookie-arcade/internal/sfx"
)

// tallyGame prints its score and ends after overAt steps.
type tallyGame struct {
	overAt int
	score  int
}

func (g *tallyGame) ID() string               { return "tally" }
func (g *tallyGame) Title() string            { return "Tally" }
func (g *tallyGame) Reset(core.RuntimeConfig) { g.score = 0 }
func (g *tallyGame) State() core.GameState    { return g.state() }

func (g *tallyGame) Step(core.InputFrame) core.StepResult {
	g.score++
	return core.StepResult{State: g.state()}
}

func (g *tallyGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, fmt.Sprintf("score %d", g.score), core.ColorHUD)
}

func (g *tallyGame) state() core.GameState {
	if g.score >= g.overAt {
		return core.GameState{Score: g.score, Phase: core.PhaseOver, Message: "caught"}
	}
	return core.GameState{Score: g.score, Phase: core.PhaseRunning}
}

type cueRecorder struct {
	cues chan sfx.Cue
}

func (r *cueRecorder) Play(c sfx.Cue) { r.cues <- c }

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func row(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteString(string(cells[y*w+x].Runes))
	}
	return sb.String()
}

func TestMapEvent(t *testing.T) {
	tests := []struct {
		ev   tcell.Event
		want core.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionPause},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), core.ActionUp},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), core.ActionRight},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.ActionRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
		{tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone), core.ActionRestart},
		{tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone), core.ActionNone},
	}

	for i, tc := range tests {
		if got := MapEvent(tc.ev); got != tc.want {
			t.Errorf("case %d: MapEvent = %s, expected %s", i, got, tc.want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should use the terminal default style")
	}
	fg, _, _ := styleFor(core.ColorCookie).Decompose()
	if fg != tcell.PaletteColor(core.ColorCookie.ANSI()) {
		t.Errorf("cookie foreground = %v", fg)
	}
}

func TestDraw(t *testing.T) {
	screen := newSimScreen(t, 10, 3)
	defer screen.Fini()

	buf := core.NewScreen(10, 3)
	buf.DrawText(1, 1, "hi")
	Draw(screen, buf)

	if got := row(screen, 1); !strings.HasPrefix(got, " hi") {
		t.Errorf("row 1 = %q", got)
	}
}

func TestRunPlaysUntilQuit(t *testing.T) {
	screen := newSimScreen(t, 20, 4)
	defer screen.Fini()

	sess := engine.NewSession(&tallyGame{overAt: 2}, core.RuntimeConfig{Seed: 1}, engine.Options{FixedSeed: true})
	sess.Start()

	sched := engine.NewManualScheduler()
	rec := &cueRecorder{cues: make(chan sfx.Cue, 8)}
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), screen, sess, Options{Sound: rec, Scheduler: sched})
	}()

	// A move while running plays a cue
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	select {
	case c := <-rec.cues:
		if c != sfx.CueMove {
			t.Errorf("cue = %s, expected move", c)
		}
	case <-time.After(time.Second):
		t.Fatal("move cue was not played")
	}

	for i := 0; i < 2; i++ {
		if !sched.TryFire(time.Second) {
			t.Fatalf("tick %d was not accepted", i+1)
		}
	}

	// Over: the loop stops listening until a click restarts it
	if sched.TryFire(50 * time.Millisecond) {
		t.Fatal("loop should not tick a finished game")
	}
	screen.InjectMouse(2, 2, tcell.Button1, tcell.ModNone)
	restarted := false
	for i := 0; i < 100 && !restarted; i++ {
		restarted = sched.TryFire(10 * time.Millisecond)
	}
	if !restarted {
		t.Fatal("click should restart the run")
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after quit")
	}

	if got := row(screen, 0); !strings.HasPrefix(got, "score 1") {
		t.Errorf("last frame row 0 = %q", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newSimScreen(t, 20, 4)
	defer screen.Fini()

	sess := engine.NewSession(&tallyGame{overAt: 100}, core.RuntimeConfig{Seed: 1}, engine.Options{})
	sess.Start()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, screen, sess, Options{Scheduler: engine.NewManualScheduler()})
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
