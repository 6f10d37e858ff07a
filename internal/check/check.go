// Package check provides the ffmpeg preflight (CheckDeps) and the
// interactive --check diagnostics (RunCheck).
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"shortscutter/internal/config"
	"shortscutter/internal/ffmpeg"
)

// ErrFfmpegNotFound is returned by CheckDeps when the binary is missing
// or unusable. Detected once before dispatch, it fails the whole batch
// fast: every task would fail identically.
var ErrFfmpegNotFound = errors.New("ffmpeg not found in PATH")

// CheckDeps verifies that ffmpeg is on PATH and responds to -version,
// and returns its version line for logging.
func CheckDeps() (string, error) {
	if _, err := exec.LookPath(ffmpeg.Binary); err != nil {
		return "", ErrFfmpegNotFound
	}
	out, err := exec.Command(ffmpeg.Binary, "-version").Output()
	if err != nil {
		return "", ErrFfmpegNotFound
	}
	return FirstLine(string(out)), nil
}

// FirstLine returns the first non-empty line of s, trimmed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// RunCheck runs the interactive --check flow: ffmpeg availability,
// version, and a smoke test of the fixed filter chain against synthetic
// input. Informational only; it reports problems but checks everything.
// Returns false when any check failed.
func RunCheck(log zerolog.Logger) bool {
	ok := true
	log.Info().Msg("=== System Check ===")

	version, err := CheckDeps()
	if err != nil {
		log.Error().Err(err).Msg("ffmpeg")
		return false
	}
	log.Info().Str("version", version).Msg("ffmpeg found")

	if testFilterChain() {
		log.Info().Msg("filter chain renders")
	} else {
		log.Error().Msg("filter chain test render failed")
		ok = false
	}
	return ok
}

// testFilterChain runs the production filter graph over two synthetic
// lavfi inputs into the null muxer, verifying the installed ffmpeg
// understands every stage (scale, boxblur, overlay, crop).
func testFilterChain() bool {
	cmd := exec.Command(ffmpeg.Binary,
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=1920x1080:d=0.1",
		"-f", "lavfi", "-i", "color=black:s=1920x1080:d=0.1",
		"-filter_complex", config.FilterChain,
		"-map", "[out]",
		"-f", "null", "-",
	)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
