package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/engine"
	"github.com/vovakirdan/cookie-arcade/internal/platform/term"
	"github.com/vovakirdan/cookie-arcade/internal/platform/tui"
	"github.com/vovakirdan/cookie-arcade/internal/registry"
	"github.com/vovakirdan/cookie-arcade/internal/sfx"
	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Up/Down, W/S     - Switch lane (cookie) or move (dodge)
  Left/Right, A/D  - Move sideways (dodge)
  P/Esc            - Pause
  R or click       - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play cookie
  arcade play dodge --difficulty hard
  arcade play cookie --backend tcell
  arcade play cookie --sound --volume 0.5
  arcade play dodge --config ./my-dodge.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Terminal backend: tui (Bubble Tea) or tcell")
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags play and menu share.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume between 0 and 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if !validDifficulty(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagBackend != "tui" && flagBackend != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (use tui or tcell)\n", flagBackend)
		os.Exit(1)
	}
	if err := checkConfig(gameID, flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	configureGames(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newGameLogger()
	store := openStore(newLogger("arcade"))
	sound, closeSound := openSound(logger)

	cfg := runtimeConfig()
	var runErr error
	switch flagBackend {
	case "tcell":
		runErr = runTcell(game, cfg, store, sound, logger)
	default:
		runErr = tui.Run(game, cfg, tui.Options{
			Store:   store,
			Sound:   sound,
			Logger:  logger,
			Session: sessionOptions(),
		})
	}

	closeSound()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// sessionOptions replays the --seed on every restart when one was given.
func sessionOptions() engine.Options {
	return engine.Options{FixedSeed: flagSeed != 0}
}

// openSound opens the audio device when --sound is set.
// A missing device downgrades to silence.
func openSound(logger *log.Logger) (sfx.Player, func()) {
	if !flagSound {
		return sfx.Mute{}, func() {}
	}
	spk, err := sfx.NewSpeaker(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return sfx.Mute{}, func() {}
	}
	return spk, spk.Close
}

// runTcell plays game on a raw tcell screen driven by the engine loop.
func runTcell(game registry.Game, cfg core.RuntimeConfig, store *storage.Store, sound sfx.Player, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sess := engine.NewSession(game, cfg, sessionOptions())
	if store != nil {
		engine.RecordRuns(sess, store, logger)
	}
	sfx.Attach(sess, sound)
	sess.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.Run(ctx, screen, sess, term.Options{Sound: sound, Logger: logger})
	if err != nil && ctx.Err() != nil {
		return nil // Interrupted
	}
	return err
}
