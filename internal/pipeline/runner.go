package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"shortscutter/internal/config"
)

// Run is the batch entry point: discover sources, build task descriptors,
// execute them through the pool, and reduce the outcomes into a summary.
//
// Preconditions (ffmpeg availability, output directory existence) are the
// caller's responsibility and are checked before Run is called. Run
// returns an error only when discovery itself fails; per-task failures
// are reported through the summary, never as an error.
func Run(ctx context.Context, cfg *config.Config, inv Invoker, log zerolog.Logger) (Summary, error) {
	files, err := Discover(cfg.InputDir)
	if err != nil {
		return Summary{}, err
	}

	tasks := BuildTasks(files, cfg.OutputDir)
	log.Info().
		Int("files", len(tasks)).
		Int("threads", cfg.Workers).
		Msg("starting batch")

	if len(tasks) == 0 {
		return Summary{}, nil
	}

	start := time.Now()
	outcomes := NewPool(cfg.Workers).Run(ctx, tasks, inv)
	summary := Summarize(outcomes, time.Since(start))

	log.Info().
		Int("total", summary.Total).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Dur("elapsed", summary.Elapsed).
		Msg("batch finished")

	return summary, nil
}
