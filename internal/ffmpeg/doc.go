// Package ffmpeg builds and executes the fixed-filter-chain ffmpeg
// command that converts one horizontal video into a vertical short.
//
// The argument vector binds the source file twice (blurred background and
// scaled foreground), applies [config.FilterChain], and maps the filtered
// video plus the original audio into the destination. [Runner] implements
// pipeline.Invoker: it validates the source, spawns ffmpeg with captured
// stderr, races completion against the per-task timeout, and maps every
// outcome to a pipeline.Outcome. Partial destination files left behind by
// a failed run are kept for inspection, not deleted.
package ffmpeg
