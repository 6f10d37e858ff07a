package ffmpeg

import "strings"

// maxStderrBytes bounds how much ffmpeg stderr is kept per task, so a
// pathological run cannot grow memory without limit.
const maxStderrBytes = 64 * 1024

// capBuffer is an io.Writer that keeps at most max bytes and silently
// discards the rest. ffmpeg's useful diagnostics appear early (option and
// stream errors) and again in the final lines, which fit well within the
// cap for any realistic failure.
type capBuffer struct {
	max int
	buf []byte
}

func (b *capBuffer) Write(p []byte) (int, error) {
	if remaining := b.max - len(b.buf); remaining > 0 {
		if len(p) > remaining {
			b.buf = append(b.buf, p[:remaining]...)
		} else {
			b.buf = append(b.buf, p...)
		}
	}
	return len(p), nil
}

func (b *capBuffer) String() string { return string(b.buf) }

// ExtractError pulls the most useful diagnostic lines out of ffmpeg
// stderr: the last lines that look like errors, joined with " | ". When
// no line matches, the final three lines are returned instead, so the
// failure message is never empty for non-empty stderr.
func ExtractError(stderr string) string {
	lines := nonEmptyLines(stderr)
	if len(lines) == 0 {
		return ""
	}

	var errorLines []string
	start := len(lines) - 10
	if start < 0 {
		start = 0
	}
	for _, line := range lines[start:] {
		if looksLikeError(line) {
			errorLines = append(errorLines, line)
		}
	}
	if len(errorLines) > 0 {
		return strings.Join(errorLines, " | ")
	}

	start = len(lines) - 3
	if start < 0 {
		start = 0
	}
	return strings.Join(lines[start:], " | ")
}

func looksLikeError(line string) bool {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "error"),
		strings.Contains(lower, "failed"),
		strings.Contains(lower, "invalid"),
		strings.Contains(lower, "cannot"),
		strings.Contains(lower, "no such file") && strings.Contains(lower, "directory"):
		return true
	}
	return false
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
