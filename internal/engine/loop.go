package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/cookie-arcade/internal/core"
)

// Scheduler is the frame clock driving a Loop.
type Scheduler interface {
	Ticks() <-chan time.Time
	Stop()
}

// Ticker is a Scheduler backed by time.Ticker.
type Ticker struct {
	t *time.Ticker
}

// NewTicker creates a scheduler firing rate times per second.
func NewTicker(rate int) *Ticker {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(rate))}
}

func (t *Ticker) Ticks() <-chan time.Time { return t.t.C }
func (t *Ticker) Stop()                   { t.t.Stop() }

// ManualScheduler fires only when told to. Used by tests and headless runs.
type ManualScheduler struct {
	ch chan time.Time
}

// NewManualScheduler creates an unbuffered manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{ch: make(chan time.Time)}
}

func (m *ManualScheduler) Ticks() <-chan time.Time { return m.ch }
func (m *ManualScheduler) Stop()                   {}

// TryFire delivers one tick if a receiver takes it within d.
func (m *ManualScheduler) TryFire(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case m.ch <- time.Now():
		return true
	case <-timer.C:
		return false
	}
}

// Loop runs a Session on a single goroutine.
type Loop struct {
	Session   *Session
	Scheduler Scheduler
	Actions   <-chan core.Action

	// Draw is called after every tick and restart. Optional.
	Draw func(*Session)

	// Pressed is called after an action is queued. Optional.
	Pressed func(*Session, core.Action)
}

// Run processes actions and ticks until a Quit action arrives, the action
// channel closes or ctx is cancelled. While the session is over it stops
// listening to the scheduler; only a Restart action brings it back.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Scheduler.Stop()

	l.draw()
	for {
		ticks := l.Scheduler.Ticks()
		if l.Session.Over() {
			ticks = nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case a, ok := <-l.Actions:
			if !ok || a == core.ActionQuit {
				return nil
			}
			if a == core.ActionRestart {
				if l.Session.Restart() {
					l.draw()
				}
				continue
			}
			l.Session.Press(a)
			if l.Pressed != nil {
				l.Pressed(l.Session, a)
			}

		case <-ticks:
			l.Session.Tick()
			l.draw()
		}
	}
}

func (l *Loop) draw() {
	if l.Draw != nil {
		l.Draw(l.Session)
	}
}
