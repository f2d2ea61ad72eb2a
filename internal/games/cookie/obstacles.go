package cookie

import (
	"math/rand"

	"github.com/vovakirdan/cookie-arcade/internal/config"
	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/particles"
)

// Kind distinguishes hazardous obstacles from plain ones.
// Both kinds collide the same way; only stinky ones emit particles.
type Kind int

const (
	KindPlain Kind = iota
	KindStinky
)

func (k Kind) String() string {
	if k == KindStinky {
		return "stinky"
	}
	return "plain"
}

// Obstacle scrolls from right to left along one lane.
type Obstacle struct {
	X, Y float64 // Top-left corner in world units
	W, H float64
	Kind Kind
	Lane int
}

// Box returns the obstacle bounds.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// ObstacleManager handles spawning, scrolling and removal of obstacles,
// and the stink they give off.
type ObstacleManager struct {
	obstacles  []Obstacle
	timer      int
	rng        *rand.Rand
	cfg        *config.CookieConfig
	difficulty *config.DifficultyManager
	stink      *particles.Pool
}

// NewObstacleManager creates an obstacle manager seeded for reproducible spawns.
func NewObstacleManager(seed int64, cfg *config.CookieConfig, diff *config.DifficultyManager, stink *particles.Pool) *ObstacleManager {
	om := &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 16),
		cfg:        cfg,
		difficulty: diff,
		stink:      stink,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.timer = 0
	om.rng = rand.New(rand.NewSource(seed))
}

// Update advances the spawn timer, scrolls obstacles left, lets stinky
// ones emit and drops the ones that left the field.
func (om *ObstacleManager) Update(score, ticks int) {
	om.timer++
	interval := om.difficulty.Interval(om.cfg.Obstacles.SpawnInterval, om.cfg.Obstacles.MinInterval, score, ticks)
	if om.timer > interval {
		om.timer = 0
		om.spawn()
	}

	speed := om.difficulty.Speed(om.cfg.Obstacles.Speed, score, ticks)

	live := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.X -= speed
		if o.Kind == KindStinky {
			om.emit(o)
		}
		if o.X < -o.W {
			continue
		}
		live = append(live, o)
	}
	om.obstacles = live
}

func (om *ObstacleManager) spawn() {
	lane := om.rng.Intn(len(om.cfg.Lanes))
	kind := KindPlain
	if om.rng.Float64() < om.cfg.Obstacles.StinkyChance {
		kind = KindStinky
	}
	om.Spawn(lane, kind)
}

// Spawn appends an obstacle just off the right edge of the given lane.
func (om *ObstacleManager) Spawn(lane int, kind Kind) {
	w, h := om.cfg.Obstacles.Width, om.cfg.Obstacles.Height
	om.obstacles = append(om.obstacles, Obstacle{
		X:    om.cfg.World.W + om.cfg.Obstacles.SpawnOffset,
		Y:    om.cfg.Lanes[lane] - h/2,
		W:    w,
		H:    h,
		Kind: kind,
		Lane: lane,
	})
}

// Place appends an obstacle at an exact position.
func (om *ObstacleManager) Place(o Obstacle) {
	om.obstacles = append(om.obstacles, o)
}

// emit puffs a stink particle from the obstacle's nose.
func (om *ObstacleManager) emit(o Obstacle) {
	if om.stink.Full() || om.rng.Float64() >= om.cfg.Obstacles.EmitChance {
		return
	}
	om.stink.Emit(particles.Particle{
		X:     o.X + o.W/1.35,
		Y:     o.Y + o.H/2,
		VX:    (om.rng.Float64() - 0.5) * 1.8,
		VY:    (om.rng.Float64() - 0.8) * 2.9,
		Size:  7 + om.rng.Float64()*3.5,
		Alpha: 0.75 + om.rng.Float64()*0.17,
	})
}

// Obstacles returns the live obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}
