// Package pipeline orchestrates file discovery, bounded-concurrency task
// execution, and batch summary reporting.
//
// The unit of work is a [Task]: one source video to be converted into one
// vertical short. Tasks are executed by a [Pool] through an [Invoker],
// each yielding exactly one [Outcome]; outcomes are reduced into a
// [Summary] once every task has finished. A task failure never aborts the
// batch; only preconditions (ffmpeg missing, unreadable input dir) do.
package pipeline
