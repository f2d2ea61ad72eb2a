// arcade is a terminal arcade where you run from a monster.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade sim <game>        - Run a game headless with a scripted player
//	arcade scores <game>     - Show high scores for a game
//	arcade serve             - Start SSH server for remote play
//	arcade api               - Serve the leaderboard over HTTP
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Where interactive commands write their log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cookie-arcade/internal/config"
	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/games/cookie"
	"github.com/vovakirdan/cookie-arcade/internal/games/dodge"
	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Shared by play and menu
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64

	logLevel = log.InfoLevel
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Cookie Arcade - outrun the monster in your terminal",
	Long: `Cookie Arcade is a pair of terminal chase games.

Available games:
  cookie  - Cookie Runner: switch lanes, dodge obstacles, stay ahead of the monster
  dodge   - Monster Drop: move around while the monster drops rocks from above

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  sim      - Headless deterministic run
  scores   - View high scores
  serve    - Start SSH server for remote play
  api      - Serve the leaderboard as JSON

Examples:
  arcade list
  arcade play cookie
  arcade play dodge --backend tcell --sound
  arcade sim cookie --seed 42 --ticks 1200 --render
  arcade serve --ssh :2222
  arcade api --addr :8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logLevel = lvl
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// newLogger returns a stderr logger for commands that own the terminal output.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel,
	})
}

// newGameLogger returns a logger that never writes to the terminal the game draws on.
// The returned closer must be called when the game ends.
func newGameLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closer := func() {}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err == nil {
			if f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				closer = func() { f.Close() }
			}
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           logLevel,
	}), closer
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// configureGames points every game at the --config file and --difficulty preset.
// The config file only applies to the game being launched.
func configureGames(gameID string) {
	cookie.SetConfigPath("")
	dodge.SetConfigPath("")

	switch gameID {
	case "cookie":
		cookie.SetConfigPath(flagConfig)
	case "dodge":
		dodge.SetConfigPath(flagConfig)
	}

	cookie.SetDifficultyPreset(flagDifficulty)
	dodge.SetDifficultyPreset(flagDifficulty)
}

// checkConfig loads path the way gameID will on reset and returns the
// read, parse or validation error. An empty path is always valid.
func checkConfig(gameID, path string) error {
	if path == "" {
		return nil
	}

	var err error
	switch gameID {
	case "cookie":
		_, err = config.LoadCookie(path)
	case "dodge":
		_, err = config.LoadDodge(path)
	default:
		err = fmt.Errorf("game %q has no config file", gameID)
	}
	return err
}

// openStore opens the run history. Failure is non-fatal: play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// validDifficulty reports whether s names a preset. Empty means the config's own level.
func validDifficulty(s string) bool {
	switch s {
	case "", "easy", "normal", "hard", "fixed":
		return true
	}
	return false
}
