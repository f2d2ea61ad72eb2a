package config

import "testing"

func progression(initial float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling: ScalingConfig{
			SpeedMultiplier:   1.0,
			GapReduction:      30,
			IntervalReduction: 20,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(progression(0))

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{500, 0.5},
		{1000, 1},
		{5000, 1}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	// Interpolates from the initial level
	d = NewDifficultyManager(progression(0.5))
	if got := d.Level(500, 0); got != 0.75 {
		t.Errorf("Level(500) from 0.5 = %v, expected 0.75", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := progression(0)
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)

	if got := d.Level(1000, 250); got != 0.25 {
		t.Errorf("time progression should follow ticks, got %v", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := progression(0.3)
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled progression should stay at the initial level, got %v", got)
	}

	cfg = progression(0)
	cfg.Progression.Type = "none"
	if NewDifficultyManager(cfg).IsEnabled() {
		t.Error("progression type none should disable progression")
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(progression(0))

	if got := d.Speed(5, 0, 0); got != 5 {
		t.Errorf("Speed at level 0 = %v, expected 5", got)
	}
	if got := d.Speed(5, 1000, 0); got != 10 {
		t.Errorf("Speed at level 1 = %v, expected 10", got)
	}

	if got := d.FollowGap(78, 40, 0, 0); got != 78 {
		t.Errorf("FollowGap at level 0 = %v, expected 78", got)
	}
	if got := d.FollowGap(78, 40, 1000, 0); got != 48 {
		t.Errorf("FollowGap at level 1 = %v, expected 48", got)
	}
	if got := d.FollowGap(78, 60, 1000, 0); got != 60 {
		t.Errorf("FollowGap should respect the floor, got %v", got)
	}

	if got := d.Interval(54, 30, 1000, 0); got != 34 {
		t.Errorf("Interval at level 1 = %d, expected 34", got)
	}
	if got := d.Interval(54, 40, 1000, 0); got != 40 {
		t.Errorf("Interval should respect the floor, got %d", got)
	}
}
