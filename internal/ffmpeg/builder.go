package ffmpeg

import (
	"strings"

	"shortscutter/internal/config"
)

// Binary is the external tool name resolved via PATH.
const Binary = "ffmpeg"

// BuildArgs constructs the complete argument slice for one task, with the
// binary name at index 0. The same source is bound twice: input 0 feeds
// the blurred background branch of the filter chain, input 1 the
// foreground. "-y" overwrites an existing destination without prompting
// (last writer wins on destination collisions).
func BuildArgs(source, dest string) []string {
	return []string{
		Binary,
		"-i", source,
		"-i", source,
		"-filter_complex", config.FilterChain,
		"-map", "[out]",
		"-map", "0:a",
		"-y",
		dest,
	}
}

// CommandString renders the argument slice as a single line for logging.
func CommandString(args []string) string {
	return strings.Join(args, " ")
}
