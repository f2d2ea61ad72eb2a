package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cookie-arcade/internal/config"
	"github.com/vovakirdan/cookie-arcade/internal/core"
)

// Obstacle is a rock falling from the monster's mouth.
type Obstacle struct {
	X, Y float64 // Top-left corner in world units
	W, H float64
}

// Box returns the obstacle bounds.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// ObstacleManager handles random drops, falling and removal of rocks.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        *config.DodgeConfig
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates an obstacle manager drawing from rng.
func NewObstacleManager(rng *rand.Rand, cfg *config.DodgeConfig, diff *config.DifficultyManager) *ObstacleManager {
	return &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 16),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
}

// DropChance returns the per-tick drop probability at the current difficulty.
func (om *ObstacleManager) DropChance(score, ticks int) float64 {
	chance := om.difficulty.Speed(om.cfg.Obstacles.DropChance, score, ticks)
	if om.cfg.Obstacles.MaxChance > 0 {
		chance = math.Min(chance, om.cfg.Obstacles.MaxChance)
	}
	return chance
}

// Update maybe drops a rock below the monster, lets every rock fall and
// removes the ones that left the bottom of the field.
func (om *ObstacleManager) Update(monster core.Box, score, ticks int) {
	if om.rng.Float64() < om.DropChance(score, ticks) {
		om.Drop(monster)
	}

	speed := om.difficulty.Speed(om.cfg.Obstacles.FallSpeed, score, ticks)

	live := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.Y += speed
		if o.Y > om.cfg.World.H {
			continue
		}
		live = append(live, o)
	}
	om.obstacles = live
}

// Drop spawns a rock centered under the monster's mouth.
func (om *ObstacleManager) Drop(monster core.Box) {
	w, h := om.cfg.Obstacles.Width, om.cfg.Obstacles.Height
	cx, _ := monster.Center()
	om.obstacles = append(om.obstacles, Obstacle{
		X: cx - w/2,
		Y: monster.Bottom() - h/2,
		W: w,
		H: h,
	})
}

// Place appends an obstacle at an exact position.
func (om *ObstacleManager) Place(o Obstacle) {
	om.obstacles = append(om.obstacles, o)
}

// Reset removes every obstacle.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
}

// Obstacles returns the live obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}
