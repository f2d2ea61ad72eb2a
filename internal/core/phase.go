package core

// Phase is the game's run state. There are exactly two phases: the game is
// either running or over, and only a reset leaves Over.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// PhaseEvent triggers a phase transition.
type PhaseEvent int

const (
	EventCaught PhaseEvent = iota // player collided with an obstacle or the monster
	EventReset                    // explicit restart from the host
)

// Apply returns the phase after ev and whether the transition is legal.
// Illegal transitions leave the phase unchanged.
func (p Phase) Apply(ev PhaseEvent) (Phase, bool) {
	switch {
	case p == PhaseRunning && ev == EventCaught:
		return PhaseOver, true
	case p == PhaseOver && ev == EventReset:
		return PhaseRunning, true
	}
	return p, false
}
