package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCookie loads Cookie Runner configuration.
// Search order: customPath -> ~/.arcade/configs/cookie.yaml -> ./configs/cookie.yaml -> embedded default
func LoadCookie(customPath string) (CookieConfig, error) {
	return load(customPath, "cookie", defaultCookieYAML, DefaultCookieConfig, CookieConfig.validate)
}

// LoadDodge loads Monster Drop configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	return load(customPath, "dodge", defaultDodgeYAML, DefaultDodgeConfig, DodgeConfig.validate)
}

// load resolves a game config. Files are decoded on top of the hardcoded
// defaults, so a partial YAML only overrides the keys it names.
func load[T any](customPath, gameID string, embedded []byte, defaults func() T, validate func(T) error) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func (c CookieConfig) validate() error {
	if c.World.W <= 0 || c.World.H <= 0 {
		return errors.New("world size must be positive")
	}
	if len(c.Lanes) == 0 {
		return errors.New("at least one lane is required")
	}
	if c.Player.StartLane < 0 || c.Player.StartLane >= len(c.Lanes) {
		return fmt.Errorf("start_lane %d out of range [0, %d)", c.Player.StartLane, len(c.Lanes))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return errors.New("obstacles.spawn_interval must be positive")
	}
	if c.Stink.Max < 0 {
		return errors.New("stink.max must not be negative")
	}
	return nil
}

func (c DodgeConfig) validate() error {
	if c.World.W <= 0 || c.World.H <= 0 {
		return errors.New("world size must be positive")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.New("player size must be positive")
	}
	if c.Player.Width > c.World.W || c.Player.Height > c.World.H {
		return errors.New("player does not fit in the world")
	}
	if c.Drool.Max < 0 {
		return errors.New("drool.max must not be negative")
	}
	return nil
}
