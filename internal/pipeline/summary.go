package pipeline

import "time"

// Exit codes returned by the CLI after a batch.
const (
	ExitSuccess  = 0 // Every task succeeded.
	ExitCritical = 1 // Precondition failure, no input files, or every task failed.
	ExitPartial  = 2 // Some tasks succeeded, some failed.
)

// Summary is the aggregate result of one batch. Succeeded+Failed always
// equals Total; Failures holds every failed outcome in completion order,
// which is non-deterministic across runs when Workers > 1.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
	Failures  []Outcome
}

// Summarize reduces the per-task outcomes into a batch summary. Every
// failure is preserved with its source path and reason; nothing is
// silently dropped.
func Summarize(outcomes []Outcome, elapsed time.Duration) Summary {
	s := Summary{
		Total:   len(outcomes),
		Elapsed: elapsed,
	}
	for _, o := range outcomes {
		if o.OK() {
			s.Succeeded++
		} else {
			s.Failed++
			s.Failures = append(s.Failures, o)
		}
	}
	return s
}

// ExitCode maps the summary onto the process exit code: 0 when everything
// succeeded, 1 when nothing did (or nothing ran), 2 for partial success.
func (s Summary) ExitCode() int {
	switch {
	case s.Total == 0:
		return ExitCritical
	case s.Failed == 0:
		return ExitSuccess
	case s.Succeeded == 0:
		return ExitCritical
	default:
		return ExitPartial
	}
}
