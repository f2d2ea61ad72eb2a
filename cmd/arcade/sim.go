package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/engine"
	"github.com/vovakirdan/cookie-arcade/internal/registry"
	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

var (
	flagSimTicks  int
	flagSimJitter float64
	flagSimRender bool
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with a scripted player",
	Long: `Run a game without a terminal UI. A seeded random player presses a
direction on a fraction of the ticks; the same --seed always produces the
same run. Without --seed the run uses seed 1.

Examples:
  arcade sim cookie --seed 7
  arcade sim dodge --seed 7 --ticks 600 --jitter 0.2 --render
  arcade sim cookie --seed 7 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagSimJitter, "jitter", 0.05, "Chance per tick that the scripted player presses a direction")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the finished run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult is the outcome of a headless run.
type simResult struct {
	Result engine.Result
	Over   bool
	Frame  *core.Screen
}

var simActions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// simulate plays game for at most ticks steps with a seeded random player.
func simulate(game registry.Game, cfg core.RuntimeConfig, ticks int, jitter float64) simResult {
	sess := engine.NewSession(game, cfg, engine.Options{FixedSeed: true})

	var res simResult
	sess.OnGameOver(func(r engine.Result) {
		res.Result = r
		res.Over = true
	})
	sess.Start()

	player := rand.New(rand.NewSource(sess.Seed()))
	for i := 0; i < ticks && !sess.Over(); i++ {
		if player.Float64() < jitter {
			sess.Press(simActions[player.Intn(len(simActions))])
		}
		sess.Tick()
	}

	if !res.Over {
		st := sess.State()
		res.Result = engine.Result{
			GameID: game.ID(),
			Score:  st.Score,
			Ticks:  sess.Ticks(),
			Seed:   sess.Seed(),
		}
	}

	res.Frame = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	sess.Render(res.Frame)
	return res
}

func runSim(_ *cobra.Command, args []string) {
	gameID := args[0]
	logger := newLogger("sim")

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}
	if !validDifficulty(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
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

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	res := simulate(game, cfg, flagSimTicks, flagSimJitter)
	r := res.Result

	if flagSimRender {
		fmt.Println(res.Frame.String())
	}

	if res.Over {
		logger.Info("run finished", "game", r.GameID, "score", r.Score, "ticks", r.Ticks, "seed", r.Seed, "message", r.Message)
	} else {
		logger.Info("tick limit reached", "game", r.GameID, "score", r.Score, "ticks", r.Ticks, "seed", r.Seed)
	}

	if flagSimSave && res.Over {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		run, err := store.SaveRun(storage.Run{
			GameID:  r.GameID,
			Score:   r.Score,
			Ticks:   r.Ticks,
			Seed:    r.Seed,
			Message: r.Message,
		})
		if err != nil {
			logger.Error("could not save run", "error", err)
			return
		}
		logger.Info("run saved", "run", run.RunID)
	}
}
