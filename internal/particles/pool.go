// Package particles implements a bounded pool of short-lived decorative
// particles that drift, fade and shrink until they are pruned.
package particles

// Particle is a single decorative puff.
type Particle struct {
	X, Y   float64 // Center position in world units
	VX, VY float64 // Velocity per tick
	Size   float64 // Radius in world units
	Alpha  float64 // Opacity in [0, 1]
}

// Config controls the pool capacity and decay.
type Config struct {
	Max      int     `yaml:"max"`       // Maximum live particles
	Fade     float64 `yaml:"fade"`      // Alpha multiplier per tick
	Shrink   float64 `yaml:"shrink"`    // Size multiplier per tick
	MinAlpha float64 `yaml:"min_alpha"` // Prune below this opacity
	MinSize  float64 `yaml:"min_size"`  // Prune below this size

	// Vertical bounds; particles leaving [Top, Bottom] are pruned.
	Top    float64 `yaml:"-"`
	Bottom float64 `yaml:"-"`
}

// Pool owns the live particles. The zero value is not usable; use New.
type Pool struct {
	cfg   Config
	items []Particle
}

// New creates an empty pool.
func New(cfg Config) *Pool {
	return &Pool{
		cfg:   cfg,
		items: make([]Particle, 0, cfg.Max),
	}
}

// Emit adds a particle unless the pool is full.
// Returns whether the particle was added.
func (p *Pool) Emit(pt Particle) bool {
	if p.Full() {
		return false
	}
	p.items = append(p.items, pt)
	return true
}

// Full reports whether the pool is at capacity.
func (p *Pool) Full() bool {
	return len(p.items) >= p.cfg.Max
}

// Step advances, fades and shrinks every particle, then prunes the dead ones.
func (p *Pool) Step() {
	live := p.items[:0]
	for _, pt := range p.items {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Alpha *= p.cfg.Fade
		pt.Size *= p.cfg.Shrink
		if p.dead(pt) {
			continue
		}
		live = append(live, pt)
	}
	p.items = live
}

func (p *Pool) dead(pt Particle) bool {
	if pt.Alpha < p.cfg.MinAlpha || pt.Size < p.cfg.MinSize {
		return true
	}
	return pt.Y < p.cfg.Top || pt.Y > p.cfg.Bottom
}

// Len returns the number of live particles.
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns the live particles. The slice is owned by the pool and is
// only valid until the next Step or Emit.
func (p *Pool) Items() []Particle {
	return p.items
}

// Reset removes every particle.
func (p *Pool) Reset() {
	p.items = p.items[:0]
}

// Glyph picks a block character whose density follows the particle's opacity.
func Glyph(alpha float64) rune {
	switch {
	case alpha >= 0.6:
		return '▓'
	case alpha >= 0.3:
		return '▒'
	default:
		return '░'
	}
}
