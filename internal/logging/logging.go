// Package logging configures the batch logger: a zerolog console stream
// plus an optional per-run JSON log file in the output directory. Every
// event carries the batch run id so interleaved worker output stays
// attributable.
package logging

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction. Zero values fall back to sane
// defaults (info level, console format, file sink enabled).
type Config struct {
	Level     string // debug|info|warn|error
	Format    string // console|json
	Dir       string // directory for the per-run log file ("" = no file)
	NoFile    bool   // suppress the file sink even when Dir is set
	RunID     string // stamped on every event
	FileMaxMB int    // rotate cap for a single run file (default 50)
}

// NewRunID returns a fresh ULID identifying one batch invocation.
func NewRunID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// FileName returns the per-run log file name, timestamped so consecutive
// batches never overwrite each other's logs.
func FileName(t time.Time) string {
	return "shortscutter-" + t.Format("20060102-150405") + ".log"
}

// Setup builds the batch logger. The returned path is the log file
// location, or "" when no file sink is active. The file sink is always
// JSON regardless of console format; lumberjack's rotation is only a
// safety cap, a normal run stays within one file.
func Setup(c Config) (zerolog.Logger, string) {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if c.Format == "json" {
		writers = append(writers, os.Stdout)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}

	logPath := ""
	if c.Dir != "" && !c.NoFile {
		maxMB := c.FileMaxMB
		if maxMB <= 0 {
			maxMB = 50
		}
		logPath = filepath.Join(c.Dir, FileName(time.Now()))
		writers = append(writers, &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxMB,
			MaxBackups: 1,
		})
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(lvl).With().
		Timestamp().
		Str("run_id", c.RunID).
		Logger()
	return logger, logPath
}
