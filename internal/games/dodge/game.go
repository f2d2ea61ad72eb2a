// Package dodge implements Monster Drop: a monster hovering at the top of
// the field follows the player sideways and drops rocks, and the player
// moves freely to stay out of their way.
package dodge

import (
	"math/rand"

	"github.com/vovakirdan/cookie-arcade/internal/config"
	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/particles"
	"github.com/vovakirdan/cookie-arcade/internal/registry"
)

// Game over messages.
const (
	MsgCrushed = "A falling rock got you! The monster wins!"
	MsgCaught  = "You ran into the monster!"
)

// Monster hovers at a fixed height and drools.
type Monster struct {
	Box   core.Box
	Frame int // Render-only animation counter
}

// Game implements the Monster Drop game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.DodgeConfig
	fixedCfg   bool // Skip config loading on Reset
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	player    core.Box
	monster   Monster
	obstacles *ObstacleManager
	drool     *particles.Pool

	score     int
	phase     core.Phase
	message   string
	tickCount int
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a Monster Drop game from the configured file and preset.
// Every Reset reloads them.
func New() *Game {
	g := &Game{}
	g.Reset(core.DefaultConfig())
	return g
}

// NewWithConfig creates a game that always uses cfg, ignoring config files.
func NewWithConfig(cfg config.DodgeConfig) *Game {
	g := &Game{cfg: cfg, fixedCfg: true}
	g.init(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Monster Drop"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadDodge(configPath)
		if err != nil {
			cfg = config.DefaultDodgeConfig()
		}
		cfg.Difficulty.ApplyPreset(difficultyPreset)
		g.cfg = cfg
	}
	g.init(runtime)
}

func (g *Game) init(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	world, p, m := g.cfg.World, g.cfg.Player, g.cfg.Monster
	g.player = core.NewBox((world.W-p.Width)/2, world.H-p.Height-p.BottomMargin, p.Width, p.Height)
	g.monster = Monster{Box: core.NewBox((world.W-m.Width)/2, m.Y, m.Width, m.Height)}

	droolCfg := g.cfg.Drool
	droolCfg.Top, droolCfg.Bottom = 0, world.H
	g.drool = particles.New(droolCfg)
	g.obstacles = NewObstacleManager(g.rng, &g.cfg, g.difficulty)

	g.score = 0
	g.phase = core.PhaseRunning
	g.message = ""
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Player moves instantly, one step per press
	step := g.cfg.Player.Step
	dx := float64(in.Count(core.ActionRight)-in.Count(core.ActionLeft)) * step
	dy := float64(in.Count(core.ActionDown)-in.Count(core.ActionUp)) * step
	g.player.X = core.ClampF(g.player.X+dx, 0, g.cfg.World.W-g.player.W)
	g.player.Y = core.ClampF(g.player.Y+dy, 0, g.cfg.World.H-g.player.H)

	// Monster follows the player's center
	pcx, _ := g.player.Center()
	target := pcx - g.monster.Box.W/2
	g.monster.Box.X = core.Approach(g.monster.Box.X, target, g.cfg.Monster.Chase)

	g.obstacles.Update(g.monster.Box, g.score, g.tickCount)

	g.emitDrool()
	g.drool.Step()

	if msg, hit := g.checkCollision(); hit {
		g.phase, _ = g.phase.Apply(core.EventCaught)
		g.message = msg
	}

	g.score++

	return core.StepResult{State: g.State()}
}

// emitDrool drips a particle from the monster's mouth now and then.
func (g *Game) emitDrool() {
	if g.drool.Full() || g.rng.Float64() >= g.cfg.Monster.EmitChance {
		return
	}
	m := g.monster.Box
	cx, _ := m.Center()
	g.drool.Emit(particles.Particle{
		X:     cx + (g.rng.Float64()-0.5)*m.W*0.5,
		Y:     m.Bottom(),
		VX:    (g.rng.Float64() - 0.5) * 0.6,
		VY:    0.6 + g.rng.Float64()*1.2,
		Size:  2 + g.rng.Float64()*2,
		Alpha: 0.6 + g.rng.Float64()*0.3,
	})
}

// checkCollision tests rocks in spawn order, then the monster.
func (g *Game) checkCollision() (string, bool) {
	for _, o := range g.obstacles.Obstacles() {
		if g.player.Intersects(o.Box()) {
			return MsgCrushed, true
		}
	}
	if g.player.Intersects(g.monster.Box) {
		return MsgCaught, true
	}
	return "", false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Phase:   g.phase,
		Message: g.message,
	}
}

// Register the game with the registry
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}
