package config

import (
	_ "embed"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/particles"
)

//go:embed defaults/cookie.yaml
var defaultCookieYAML []byte

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultCookieConfig returns the default Cookie Runner configuration.
// It mirrors defaults/cookie.yaml and is used when the embedded file
// cannot be parsed.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		World: core.World{W: 640, H: 480},
		Lanes: []float64{94, 190, 286, 382},
		Player: CookiePlayer{
			X:         96,
			Radius:    28,
			StartLane: 1,
			Smoothing: 0.22,
		},
		Monster: CookieMonster{
			StartX:       5,
			Radius:       32,
			ChaseX:       0.08,
			ChaseY:       0.12,
			FollowGap:    78,
			MinFollowGap: 40,
		},
		Obstacles: CookieObstacles{
			Width:         32,
			Height:        36,
			Speed:         5,
			SpawnInterval: 54,
			MinInterval:   30,
			SpawnOffset:   20,
			StinkyChance:  0.7,
			EmitChance:    0.26,
		},
		Stink: particles.Config{
			Max:      14,
			Fade:     0.965,
			Shrink:   0.98,
			MinAlpha: 0.12,
			MinSize:  0.3,
		},
		Collision: CookieCollision{
			ObstacleSlackX: 6,
			ObstacleSlackY: 11,
			MonsterSlackX:  3,
			MonsterSlackY:  12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				GapReduction:      30,
				IntervalReduction: 20,
			},
		},
	}
}

// DefaultDodgeConfig returns the default Monster Drop configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: core.World{W: 640, H: 480},
		Player: DodgePlayer{
			Width:        30,
			Height:       30,
			BottomMargin: 20,
			Step:         16,
		},
		Monster: DodgeMonster{
			Y:          24,
			Width:      72,
			Height:     44,
			Chase:      0.04,
			EmitChance: 0.35,
		},
		Obstacles: DodgeObstacles{
			Width:      22,
			Height:     22,
			FallSpeed:  3.5,
			DropChance: 0.025,
			MaxChance:  0.12,
		},
		Drool: particles.Config{
			Max:      40,
			Fade:     0.96,
			Shrink:   0.98,
			MinAlpha: 0.15,
			MinSize:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "cookie":
		return defaultCookieYAML
	case "dodge":
		return defaultDodgeYAML
	default:
		return nil
	}
}
