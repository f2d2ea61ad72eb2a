// Package term runs a game directly on a tcell screen, without Bubble Tea.
// The engine loop owns the session; a separate goroutine only polls
// terminal events and forwards them as actions.
package term

import (
	"context"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/engine"
	"github.com/vovakirdan/cookie-arcade/internal/sfx"
)

// Options configures Run.
type Options struct {
	Sound     sfx.Player       // Nil means silent
	Scheduler engine.Scheduler // Nil means a ticker at the session tick rate
	Logger    *log.Logger
}

// MapEvent translates a terminal event to a game action.
func MapEvent(ev tcell.Event) core.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return core.ActionUp
		case tcell.KeyDown:
			return core.ActionDown
		case tcell.KeyLeft:
			return core.ActionLeft
		case tcell.KeyRight:
			return core.ActionRight
		case tcell.KeyEscape:
			return core.ActionPause
		case tcell.KeyCtrlC:
			return core.ActionQuit
		case tcell.KeyRune:
			if ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c' {
				return core.ActionQuit
			}
			return mapRune(ev.Rune())
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			return core.ActionRestart
		}
	}
	return core.ActionNone
}

func mapRune(r rune) core.Action {
	switch unicode.ToLower(r) {
	case 'w':
		return core.ActionUp
	case 's':
		return core.ActionDown
	case 'a':
		return core.ActionLeft
	case 'd':
		return core.ActionRight
	case 'p':
		return core.ActionPause
	case 'r':
		return core.ActionRestart
	case 'q':
		return core.ActionQuit
	}
	return core.ActionNone
}

// styleFor returns the tcell style of a palette color.
func styleFor(c core.Color) tcell.Style {
	style := tcell.StyleDefault
	if code := c.ANSI(); code >= 0 {
		style = style.Foreground(tcell.PaletteColor(code))
	}
	if c == core.ColorAlert || c == core.ColorHUD {
		style = style.Bold(true)
	}
	return style
}

// Draw copies src onto dst and shows it.
func Draw(dst tcell.Screen, src *core.Screen) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	dst.Show()
}

// Run plays sess on screen until the player quits or ctx is cancelled.
// The caller owns screen: Init before, Fini after.
func Run(ctx context.Context, screen tcell.Screen, sess *engine.Session, opts Options) error {
	sound := opts.Sound
	if sound == nil {
		sound = sfx.Mute{}
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = engine.NewTicker(sess.Config().TickRate)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	actions := make(chan core.Action, 64)
	go pollEvents(ctx, screen, actions, opts.Logger)

	w, h := screen.Size()
	buf := core.NewScreen(w, h)
	sess.Resize(w, h)

	loop := &engine.Loop{
		Session:   sess,
		Scheduler: sched,
		Actions:   actions,
		Draw: func(s *engine.Session) {
			if w, h := screen.Size(); w != buf.Width() || h != buf.Height() {
				buf.Resize(w, h)
				s.Resize(w, h)
			}
			s.Render(buf)
			Draw(screen, buf)
		},
		Pressed: func(s *engine.Session, a core.Action) {
			if cue, ok := sfx.ForAction(a); ok && !s.Over() && !s.Paused() {
				sound.Play(cue)
			}
		},
	}
	return loop.Run(ctx)
}

// pollEvents forwards terminal events until the screen is finalized or ctx ends.
func pollEvents(ctx context.Context, screen tcell.Screen, actions chan<- core.Action, logger *log.Logger) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}

		a := MapEvent(ev)
		if a == core.ActionNone {
			continue
		}
		select {
		case actions <- a:
		case <-ctx.Done():
			return
		default:
			if logger != nil {
				logger.Debug("dropping input, queue full", "action", a)
			}
		}
	}
}
