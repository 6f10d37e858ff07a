package pipeline

import (
	"path/filepath"
	"strings"

	"shortscutter/internal/config"
)

// Task describes one unit of work: a source video and its derived
// destination. Tasks are immutable once created and owned exclusively by
// the worker that processes them.
type Task struct {
	Source string
	Dest   string
}

// Name returns the source basename for display and log fields.
func (t Task) Name() string {
	return filepath.Base(t.Source)
}

// OutputPath derives the destination path for a source file:
// "<stem>-short.<ext>" inside outputDir. Two sources with the same
// basename map to the same destination; that is a caller error and the
// last writer wins; this layer does not deduplicate.
func OutputPath(source, outputDir string) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(outputDir, stem+config.OutputSuffix+ext)
}

// BuildTasks turns discovered source paths into task descriptors, one per
// file, preserving the discovery order.
func BuildTasks(sources []string, outputDir string) []Task {
	tasks := make([]Task, 0, len(sources))
	for _, src := range sources {
		tasks = append(tasks, Task{
			Source: src,
			Dest:   OutputPath(src, outputDir),
		})
	}
	return tasks
}
