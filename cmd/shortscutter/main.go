// Command shortscutter is the CLI entrypoint for the vertical-shorts
// batch converter.
//
// It parses flags, validates configuration and paths, and either runs
// system diagnostics (--check) or the conversion batch.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"shortscutter/internal/check"
	"shortscutter/internal/config"
	"shortscutter/internal/display"
	"shortscutter/internal/ffmpeg"
	"shortscutter/internal/logging"
	"shortscutter/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once logging.Setup succeeds, all
	// output goes through the logger.
	_ = godotenv.Load()

	cfg := config.DefaultConfig()
	config.ApplyEnv(&cfg)
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "shortscutter: %v\n", err)
		return pipeline.ExitCritical
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "shortscutter: %v\n", err)
		return pipeline.ExitCritical
	}
	applyColorMode(cfg.ColorMode)

	if cfg.CheckOnly {
		log, _ := logging.Setup(logging.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			RunID:  logging.NewRunID(),
		})
		display.PrintBanner()
		if !check.RunCheck(log) {
			return pipeline.ExitCritical
		}
		return pipeline.ExitSuccess
	}

	// Resolve and validate paths: input must exist, output is created if
	// needed, and output must not be inside input (prevents the batch
	// from discovering its own results).
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shortscutter: input not found: %s\n", cfg.InputDir)
		return pipeline.ExitCritical
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "shortscutter: cannot create output directory: %s\n", cfg.OutputDir)
		return pipeline.ExitCritical
	}
	outputAbs, err := absPath(cfg.OutputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shortscutter: cannot resolve output path: %s\n", cfg.OutputDir)
		return pipeline.ExitCritical
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		fmt.Fprintf(os.Stderr, "shortscutter: %v\n", err)
		return pipeline.ExitCritical
	}

	// Phase 2: Logger available. One run id and one log file per batch.
	runID := logging.NewRunID()
	log, logPath := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Dir:    cfg.OutputDir,
		NoFile: cfg.NoLogFile,
		RunID:  runID,
	})

	display.PrintBanner()
	log.Info().
		Str("version", version+" ("+commit+")").
		Str("input", inputAbs).
		Str("output", outputAbs).
		Int("threads", cfg.Workers).
		Dur("timeout", cfg.TaskTimeout).
		Msg("shortscutter starting")
	if logPath != "" {
		log.Info().Str("path", logPath).Msg("log file")
	}
	if cfg.DryRun {
		log.Warn().Msg("dry run, no files will be written")
	}

	// Fail fast if ffmpeg is unavailable: every task would fail
	// identically, so the batch aborts before any dispatch.
	ffVersion, err := check.CheckDeps()
	if err != nil {
		log.Error().Err(err).Msg("preflight failed")
		return pipeline.ExitCritical
	}
	log.Info().Msg("using " + ffVersion)

	// Phase 3: Signal handling. Cancel the batch context on
	// SIGINT/SIGTERM. In-flight ffmpeg processes are killed, dispatching
	// stops, and completed outcomes still reach the summary.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn().Msg("interrupt received, stopping batch")
		cancel()
	}()

	// Phase 4: Run the batch.
	cfg.InputDir, cfg.OutputDir = inputAbs, outputAbs
	summary, err := pipeline.Run(ctx, &cfg, ffmpeg.NewRunner(&cfg, log), log)
	if err != nil {
		log.Error().Err(err).Msg("batch failed")
		return pipeline.ExitCritical
	}
	if summary.Total == 0 {
		log.Warn().Msg("no .mp4 files found in the input directory")
		return pipeline.ExitCritical
	}

	display.PrintReport(summary)
	return summary.ExitCode()
}

// applyColorMode maps the config color mode onto the global fatih/color
// switch. ColorAuto keeps the library's own TTY detection.
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
