package display

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"shortscutter/internal/pipeline"
)

// PrintReport writes the final batch summary to stdout: totals, elapsed
// time, and one line per failure with its reason. Failures appear in
// completion order, exactly as collected.
func PrintReport(s pipeline.Summary) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "=== PROCESSING SUMMARY ===")
	fmt.Fprintf(os.Stdout, "Total files processed: %d\n", s.Total)
	green.Fprintf(os.Stdout, "Successful: %d\n", s.Succeeded)
	red.Fprintf(os.Stdout, "Failed: %d\n", s.Failed)
	fmt.Fprintf(os.Stdout, "Total time: %s\n", FormatDuration(s.Elapsed))

	if len(s.Failures) == 0 {
		return
	}
	fmt.Fprintln(os.Stdout, "\nFiles with errors:")
	for _, f := range s.Failures {
		red.Fprintf(os.Stdout, "  %s [%s]: %s\n",
			filepath.Base(f.Source), f.Kind, f.Message)
	}
}
