// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// FilterChain is the fixed ffmpeg filter graph that turns a horizontal
// source into a 720x1280 vertical short: the source is bound twice, once
// scaled+blurred as the background and once scaled as the foreground,
// then overlaid and cropped. The string must be reproduced exactly;
// ffmpeg's filter grammar is whitespace- and label-sensitive.
const FilterChain = "[0:v]scale=2276:1280,boxblur=4[bg];[1:v]scale=720:-1[fg];[bg][fg]overlay=(W-w)/2:(H-h)/2[tmp];[tmp]crop=720:1280:(2276-720)/2:0[out]"

// OutputSuffix is appended to the source file stem when deriving the
// destination name ("video.mp4" -> "video-short.mp4").
const OutputSuffix = "-short"

// MaxWorkers caps --threads; more concurrent ffmpeg processes than this
// only thrash the host.
const MaxWorkers = 32

// DefaultTaskTimeout is how long a single ffmpeg invocation may run
// before it is killed and the task marked failed.
const DefaultTaskTimeout = 10 * time.Minute

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overridden from the environment by [ApplyEnv], and finally
// mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args).
	InputDir  string
	OutputDir string

	// Concurrency.
	Workers     int           // Default: runtime.NumCPU(), capped at MaxWorkers.
	TaskTimeout time.Duration // Default: DefaultTaskTimeout.

	// Behavior flags.
	DryRun    bool
	Verbose   bool
	CheckOnly bool // Run --check diagnostics and exit.

	// Display and logging.
	ColorMode ColorMode // Default: "auto".
	LogLevel  string    // debug|info|warn|error. Default: "info".
	LogFormat string    // console|json. Default: "console".
	NoLogFile bool      // Suppress the per-run log file in the output dir.
}

// DefaultConfig returns a Config with all defaults. Used as the base
// before [ApplyEnv] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	workers := runtime.NumCPU()
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	if workers < 1 {
		workers = 1
	}
	return Config{
		Workers:     workers,
		TaskTimeout: DefaultTaskTimeout,
		DryRun:      false,
		Verbose:     false,
		CheckOnly:   false,
		ColorMode:   ColorAuto,
		LogLevel:    "info",
		LogFormat:   "console",
		NoLogFile:   false,
	}
}

// ApplyEnv overrides defaults from SHORTS_* / LOG_* environment variables.
// The caller is expected to have loaded .env (godotenv) beforehand.
// Invalid values are ignored so a stray variable cannot break startup;
// CLI flags still take precedence because they are parsed afterwards.
func ApplyEnv(cfg *Config) {
	if n, ok := getenvInt("SHORTS_THREADS"); ok {
		cfg.Workers = n
	}
	if d, ok := getenvDuration("SHORTS_TIMEOUT"); ok {
		cfg.TaskTimeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
}

func getenvInt(k string) (int, bool) {
	v := os.Getenv(k)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func getenvDuration(k string) (time.Duration, bool) {
	v := os.Getenv(k)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return d, true
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks worker count, timeout, and enum fields. When not in
// CheckOnly mode it also requires both directory paths.
func (c *Config) Validate() error {
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("invalid thread count %d (must be 1..%d)", c.Workers, MaxWorkers)
	}
	if c.TaskTimeout <= 0 {
		return errors.New("task timeout must be positive")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	switch c.LogFormat {
	case "console", "json":
		// valid
	default:
		return errors.New("invalid log format (use 'console' or 'json')")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return errors.New("invalid log level (use 'debug', 'info', 'warn' or 'error')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need exactly input_dir and output_dir")
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or
// equal to) the resolved input directory. This prevents discovery from
// picking up the batch's own output files. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
