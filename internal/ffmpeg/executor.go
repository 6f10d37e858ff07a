package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"shortscutter/internal/config"
	"shortscutter/internal/logging"
	"shortscutter/internal/pipeline"
)

// Runner is the production pipeline.Invoker: one Invoke call spawns one
// ffmpeg process and maps its fate onto a task outcome.
type Runner struct {
	binary  string
	timeout time.Duration
	dryRun  bool
	verbose bool
	log     zerolog.Logger
}

// NewRunner builds a Runner from the batch configuration.
func NewRunner(cfg *config.Config, log zerolog.Logger) *Runner {
	return &Runner{
		binary:  Binary,
		timeout: cfg.TaskTimeout,
		dryRun:  cfg.DryRun,
		verbose: cfg.Verbose,
		log:     log,
	}
}

// Invoke runs one task to completion. The source must exist at dispatch
// time; the destination's parent directory is assumed to exist (ensured
// by the caller at startup). On failure a partial destination file may
// remain on disk and is intentionally not cleaned up, so failed-run
// artifacts stay inspectable.
func (r *Runner) Invoke(ctx context.Context, t pipeline.Task) pipeline.Outcome {
	start := time.Now()
	log := r.log.With().Str("file", t.Name()).Logger()
	log.Info().Msg("task started")

	fi, err := os.Stat(t.Source)
	if err != nil {
		log.Error().Err(err).Msg("source missing")
		return pipeline.Failure(t, pipeline.KindSourceMissing,
			fmt.Sprintf("source not found: %s", t.Source), time.Since(start))
	}
	if fi.IsDir() {
		log.Error().Msg("source is a directory")
		return pipeline.Failure(t, pipeline.KindSourceMissing,
			fmt.Sprintf("source is a directory: %s", t.Source), time.Since(start))
	}

	args := BuildArgs(t.Source, t.Dest)
	log.Info().Str("cmd", CommandString(args)).Msg("command issued")

	if r.dryRun {
		log.Info().Msg("dry-run, command not executed")
		return pipeline.Success(t, time.Since(start))
	}

	tctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, r.binary, args[1:]...)
	stderr := &capBuffer{max: maxStderrBytes}
	if r.verbose {
		lw := logging.NewLineWriter(log, zerolog.DebugLevel)
		defer lw.Close()
		cmd.Stderr = io.MultiWriter(stderr, lw)
	} else {
		cmd.Stderr = stderr
	}

	runErr := cmd.Run()
	elapsed := time.Since(start)

	outcome := r.classify(t, runErr, tctx, ctx, stderr.String(), elapsed)
	logResult(log, outcome)
	return outcome
}

// classify maps the process result onto the outcome taxonomy. Order
// matters: a killed process also reports a generic exit error, so the
// timeout and cancellation causes are checked before the exit status.
func (r *Runner) classify(t pipeline.Task, runErr error, tctx, ctx context.Context, stderr string, elapsed time.Duration) pipeline.Outcome {
	switch {
	case runErr == nil:
		return pipeline.Success(t, elapsed)

	case errors.Is(tctx.Err(), context.DeadlineExceeded):
		return pipeline.Failure(t, pipeline.KindTimeout,
			fmt.Sprintf("ffmpeg killed after %s timeout", r.timeout), elapsed)

	case ctx.Err() != nil:
		return pipeline.Failure(t, pipeline.KindCanceled, "batch interrupted", elapsed)

	case errors.Is(runErr, exec.ErrNotFound):
		return pipeline.Failure(t, pipeline.KindToolNotFound,
			fmt.Sprintf("%s not found in PATH", r.binary), elapsed)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		msg := ExtractError(stderr)
		if msg == "" {
			msg = runErr.Error()
		}
		return pipeline.Failure(t, pipeline.KindToolFailed,
			fmt.Sprintf("ffmpeg exit %d: %s", exitErr.ExitCode(), msg), elapsed)
	}

	return pipeline.Failure(t, pipeline.KindIO, runErr.Error(), elapsed)
}

func logResult(log zerolog.Logger, o pipeline.Outcome) {
	if o.OK() {
		log.Info().Dur("elapsed", o.Elapsed).Str("dest", o.Dest).Msg("task succeeded")
		return
	}
	log.Error().
		Dur("elapsed", o.Elapsed).
		Str("kind", o.Kind.String()).
		Str("reason", o.Message).
		Msg("task failed")
}
