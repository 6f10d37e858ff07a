package pipeline

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Supported input extensions (lowercase, with leading dot). The upstream
// tool only ever handled .mp4 sources.
var videoExtensions = map[string]bool{
	".mp4": true,
}

// Discover walks inputDir recursively, collects files with a supported
// video extension (case-insensitive), and returns the paths sorted
// lexicographically for deterministic task submission order.
func Discover(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if videoExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", inputDir, err)
	}
	sort.Strings(files)
	return files, nil
}
