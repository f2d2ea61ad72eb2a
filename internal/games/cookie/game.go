// Package cookie implements Cookie Runner: a cookie switches between four
// lanes to dodge obstacles scrolling in from the right while a monster
// closes in from the left.
package cookie

import (
	"math"

	"github.com/vovakirdan/cookie-arcade/internal/config"
	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/particles"
	"github.com/vovakirdan/cookie-arcade/internal/registry"
)

// Game over messages.
const (
	MsgStink  = "COOKIE has touched stink! The monster eats you!"
	MsgCaught = "Monster caught your cookie!"
)

// Player is the cookie. X is fixed; Y eases toward the current lane.
type Player struct {
	X, Y   float64
	Radius float64
	Lane   int
}

// Monster chases the cookie from the left.
type Monster struct {
	X, Y     float64
	Radius   float64
	Catching bool // Set on game over, opens the mouth
	Frame    int  // Render-only animation counter
}

// Game implements the Cookie Runner game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.CookieConfig
	fixedCfg   bool // Skip config loading on Reset
	difficulty *config.DifficultyManager

	player    Player
	monster   Monster
	obstacles *ObstacleManager
	stink     *particles.Pool

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

// New creates a Cookie Runner game from the configured file and preset.
// Every Reset reloads them.
func New() *Game {
	g := &Game{}
	g.Reset(core.DefaultConfig())
	return g
}

// NewWithConfig creates a game that always uses cfg, ignoring config files.
func NewWithConfig(cfg config.CookieConfig) *Game {
	g := &Game{cfg: cfg, fixedCfg: true}
	g.init(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cookie"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cookie Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadCookie(configPath)
		if err != nil {
			cfg = config.DefaultCookieConfig()
		}
		cfg.Difficulty.ApplyPreset(difficultyPreset)
		g.cfg = cfg
	}
	g.init(runtime)
}

// init puts every piece of mutable state back to its starting value.
func (g *Game) init(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	lane := g.cfg.Player.StartLane
	g.player = Player{
		X:      g.cfg.Player.X,
		Y:      g.cfg.Lanes[lane],
		Radius: g.cfg.Player.Radius,
		Lane:   lane,
	}
	g.monster = Monster{
		X:      g.cfg.Monster.StartX,
		Y:      g.cfg.World.H / 2,
		Radius: g.cfg.Monster.Radius,
	}

	stinkCfg := g.cfg.Stink
	stinkCfg.Top, stinkCfg.Bottom = math.Inf(-1), math.Inf(1)
	g.stink = particles.New(stinkCfg)
	g.obstacles = NewObstacleManager(runtime.Seed, &g.cfg, g.difficulty, g.stink)

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

	// Lane switching
	moves := in.Count(core.ActionDown) - in.Count(core.ActionUp)
	g.player.Lane = core.Clamp(g.player.Lane+moves, 0, len(g.cfg.Lanes)-1)
	g.player.Y = core.Approach(g.player.Y, g.cfg.Lanes[g.player.Lane], g.cfg.Player.Smoothing)

	// Monster pursuit
	gap := g.difficulty.FollowGap(g.cfg.Monster.FollowGap, g.cfg.Monster.MinFollowGap, g.score, g.tickCount)
	g.monster.Y = core.Approach(g.monster.Y, g.player.Y, g.cfg.Monster.ChaseY)
	g.monster.X = core.Approach(g.monster.X, g.player.X-gap, g.cfg.Monster.ChaseX)

	g.obstacles.Update(g.score, g.tickCount)
	g.stink.Step()

	if msg, hit := g.checkCollision(); hit {
		g.phase, _ = g.phase.Apply(core.EventCaught)
		g.message = msg
		g.monster.Catching = true
	}

	g.score++

	return core.StepResult{State: g.State()}
}

// checkCollision tests obstacles first, in spawn order, then the monster.
// The first hit wins.
func (g *Game) checkCollision() (string, bool) {
	for _, o := range g.obstacles.Obstacles() {
		if g.hitsObstacle(o) {
			return MsgStink, true
		}
	}
	if g.monsterReached() {
		return MsgCaught, true
	}
	return "", false
}

// hitsObstacle compares centers against the combined half extents, less
// the configured slack.
func (g *Game) hitsObstacle(o Obstacle) bool {
	p, slack := g.player, g.cfg.Collision
	dx := core.AbsF((p.X + p.Radius/2) - (o.X + o.W/2))
	dy := core.AbsF(p.Y - (o.Y + o.H/2))
	return dx < p.Radius+o.W/2-slack.ObstacleSlackX &&
		dy < p.Radius+o.H/2-slack.ObstacleSlackY
}

// monsterReached reports whether the monster is close enough to bite.
func (g *Game) monsterReached() bool {
	p, m, slack := g.player, g.monster, g.cfg.Collision
	return p.X-m.X < m.Radius+p.Radius-slack.MonsterSlackX &&
		core.AbsF(m.Y-p.Y) < m.Radius/2+p.Radius/2+slack.MonsterSlackY
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
	registry.Register("cookie", func() registry.Game {
		return New()
	})
}
