package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

// RunSaver persists finished runs.
type RunSaver interface {
	SaveRun(run storage.Run) (storage.Run, error)
}

// RecordRuns saves every finished run of sess to saver.
// Save failures are logged and never interrupt play.
func RecordRuns(sess *Session, saver RunSaver, logger *log.Logger) {
	sess.OnGameOver(func(r Result) {
		if r.Score <= 0 {
			return
		}
		run, err := saver.SaveRun(storage.Run{
			GameID:  r.GameID,
			Score:   r.Score,
			Ticks:   r.Ticks,
			Seed:    r.Seed,
			Message: r.Message,
		})
		if err != nil {
			if logger != nil {
				logger.Warn("could not save run", "game", r.GameID, "score", r.Score, "error", err)
			}
			return
		}
		if logger != nil {
			logger.Debug("run saved", "run", run.RunID, "game", run.GameID, "score", run.Score)
		}
	})
}
