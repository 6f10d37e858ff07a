package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into processing, display, and utility.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing
// positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("shortscutter", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var (
		showHelp    bool
		showVersion bool
		forceColor  bool
		noColor     bool
	)

	// Processing.
	fs.IntVar(&cfg.Workers, "threads", cfg.Workers, "Number of parallel ffmpeg processes")
	fs.IntVar(&cfg.Workers, "t", cfg.Workers, "Same as --threads")
	fs.DurationVar(&cfg.TaskTimeout, "timeout", cfg.TaskTimeout, "Per-file ffmpeg timeout")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Log commands without running ffmpeg")
	fs.BoolVar(&cfg.DryRun, "n", false, "Same as --dry-run")

	// Display and logging.
	fs.BoolVar(&forceColor, "color", false, "Force colored output")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Stream ffmpeg stderr into the debug log")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Console log format: console|json")
	fs.BoolVar(&cfg.NoLogFile, "no-log-file", false, "Do not write the per-run log file")

	// Utility.
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "shortscutter v"+version)
		os.Exit(0)
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return parsePositionalArgs(fs, cfg)
}

// parsePositionalArgs sets InputDir and OutputDir from the two positional
// args when not in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly input_dir and output_dir")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	cfg.OutputDir = NormalizeDirArg(args[1])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "shortscutter v" + version + " - batch vertical-shorts converter"},
		{"", ""},
		{"  shortscutter [OPTIONS] <input_dir> <output_dir>", ""},
		{"", ""},
		{"Processing", ""},
		{"  -t, --threads <count>", fmt.Sprintf("Parallel ffmpeg processes (default: CPU cores, max %d)", MaxWorkers)},
		{"  --timeout <duration>", fmt.Sprintf("Per-file ffmpeg timeout (default: %s)", DefaultTaskTimeout)},
		{"  -n, --dry-run", "Log commands without running ffmpeg"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored output"},
		{"  --no-color", "Disable colored output"},
		{"  -v, --verbose", "Stream ffmpeg stderr into the debug log"},
		{"  --log-level <level>", "debug | info | warn | error (default: info)"},
		{"  --log-format <fmt>", "console | json (default: console)"},
		{"  --no-log-file", "Do not write the per-run log file"},
		{"", ""},
		{"Utility", ""},
		{"  -c, --check", "System diagnostics (ffmpeg, filter chain)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
