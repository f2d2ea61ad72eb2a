// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/particles"
)

// CookieConfig contains all configuration for the Cookie Runner game.
type CookieConfig struct {
	World      core.World       `yaml:"world"`
	Lanes      []float64        `yaml:"lanes"` // Lane center y positions
	Player     CookiePlayer     `yaml:"player"`
	Monster    CookieMonster    `yaml:"monster"`
	Obstacles  CookieObstacles  `yaml:"obstacles"`
	Stink      particles.Config `yaml:"stink"`
	Collision  CookieCollision  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CookiePlayer defines the cookie.
type CookiePlayer struct {
	X         float64 `yaml:"x"`
	Radius    float64 `yaml:"radius"`
	StartLane int     `yaml:"start_lane"`
	Smoothing float64 `yaml:"smoothing"` // Lane snapping factor per tick
}

// CookieMonster defines the chasing monster.
type CookieMonster struct {
	StartX       float64 `yaml:"start_x"`
	Radius       float64 `yaml:"radius"`
	ChaseX       float64 `yaml:"chase_x"`        // Horizontal pursuit factor
	ChaseY       float64 `yaml:"chase_y"`        // Vertical pursuit factor
	FollowGap    float64 `yaml:"follow_gap"`     // Distance the monster trails the cookie
	MinFollowGap float64 `yaml:"min_follow_gap"` // Floor for the gap at max difficulty
}

// CookieObstacles defines scrolling obstacles.
type CookieObstacles struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`          // Units per tick at difficulty 0
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns at difficulty 0
	MinInterval   int     `yaml:"min_interval"`
	SpawnOffset   float64 `yaml:"spawn_offset"`  // Distance right of the world edge
	StinkyChance  float64 `yaml:"stinky_chance"` // Probability an obstacle is hazardous
	EmitChance    float64 `yaml:"emit_chance"`   // Per-tick stink emission probability
}

// CookieCollision holds the slack subtracted from the overlap extents.
// Obstacle and monster checks use separate tolerances.
type CookieCollision struct {
	ObstacleSlackX float64 `yaml:"obstacle_slack_x"`
	ObstacleSlackY float64 `yaml:"obstacle_slack_y"`
	MonsterSlackX  float64 `yaml:"monster_slack_x"`
	MonsterSlackY  float64 `yaml:"monster_slack_y"`
}

// DodgeConfig contains all configuration for the Monster Drop game.
type DodgeConfig struct {
	World      core.World       `yaml:"world"`
	Player     DodgePlayer      `yaml:"player"`
	Monster    DodgeMonster     `yaml:"monster"`
	Obstacles  DodgeObstacles   `yaml:"obstacles"`
	Drool      particles.Config `yaml:"drool"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DodgePlayer defines the player box.
type DodgePlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // Start distance from the floor
	Step         float64 `yaml:"step"`          // Units moved per key press
}

// DodgeMonster defines the dropping monster.
type DodgeMonster struct {
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Chase      float64 `yaml:"chase"`       // Horizontal pursuit factor
	EmitChance float64 `yaml:"emit_chance"` // Per-tick drool emission probability
}

// DodgeObstacles defines falling obstacles.
type DodgeObstacles struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallSpeed  float64 `yaml:"fall_speed"`  // Units per tick at difficulty 0
	DropChance float64 `yaml:"drop_chance"` // Per-tick spawn probability at difficulty 0
	MaxChance  float64 `yaml:"max_chance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to speed factors at max difficulty
	GapReduction      float64 `yaml:"gap_reduction"`      // Monster follow gap reduction at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "" which
// keeps the config's own difficulty settings.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies a difficulty config in place. An empty preset is a no-op.
func (d *DifficultyConfig) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
