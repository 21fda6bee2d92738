package replay

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/tilerun/internal/application/system"
)

// Result is the end state of a headless replay
type Result struct {
	Outcome system.Outcome
	// Exhausted is true when the recording ran out before the session ended.
	Exhausted bool
	Kills     int
	Coins     int
	Hits      int // hazard and enemy contacts
}

// Runner re-simulates recorded sessions without a window
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger}
}

// Run steps w with each recorded frame until the session ends or the
// recording runs out.
func (r *Runner) Run(w *system.World, rp *Replayer) Result {
	var res Result

	for {
		fi, ok := rp.Next()
		if !ok {
			res.Exhausted = true
			break
		}

		res.Outcome = w.Step(fi.Intents(), fi.DT)

		step := w.LastResolution()
		res.Kills += step.Kills
		res.Coins += step.CoinsCollected
		res.Hits += step.HazardHits + step.EnemyContacts
		if step.HazardHits+step.EnemyContacts > 0 {
			r.logger.Debug("player hit", "frame", fi.F, "health", w.Player().Health)
		}
		if step.FellOff {
			r.logger.Debug("fell off", "frame", fi.F)
		}

		if res.Outcome.Terminal() {
			break
		}
	}

	r.logger.Info("replay finished",
		"outcome", res.Outcome.Status,
		"points", res.Outcome.Points,
		"frames", res.Outcome.Frames,
		"exhausted", res.Exhausted,
	)
	return res
}
