package pipeline

import "time"

// ErrorKind classifies why a task failed. KindNone marks success.
type ErrorKind int

const (
	KindNone          ErrorKind = iota
	KindToolNotFound            // ffmpeg binary could not be located or launched.
	KindSourceMissing           // source path did not exist at dispatch time.
	KindTimeout                 // ffmpeg exceeded the per-task timeout and was killed.
	KindToolFailed              // ffmpeg exited non-zero.
	KindIO                      // filesystem error outside the above.
	KindCanceled                // batch was interrupted before or during the task.
)

// String returns the snake_case label used in log fields and reports.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindToolNotFound:
		return "tool_not_found"
	case KindSourceMissing:
		return "source_missing"
	case KindTimeout:
		return "timeout"
	case KindToolFailed:
		return "tool_failed"
	case KindIO:
		return "io_error"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Outcome is the result of exactly one task. It is created once by the
// invoker and never mutated afterwards.
type Outcome struct {
	Source  string
	Dest    string
	Kind    ErrorKind
	Message string // Human-readable failure reason; empty on success.
	Elapsed time.Duration
}

// OK reports whether the task succeeded.
func (o Outcome) OK() bool { return o.Kind == KindNone }

// Success builds a successful outcome for a task.
func Success(t Task, elapsed time.Duration) Outcome {
	return Outcome{Source: t.Source, Dest: t.Dest, Kind: KindNone, Elapsed: elapsed}
}

// Failure builds a failed outcome for a task with the given kind and reason.
func Failure(t Task, kind ErrorKind, message string, elapsed time.Duration) Outcome {
	return Outcome{Source: t.Source, Dest: t.Dest, Kind: kind, Message: message, Elapsed: elapsed}
}
