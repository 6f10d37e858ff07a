// Package display renders the banner, human-readable formatting, and the
// final batch report on stdout. Log output goes through zerolog; this
// package covers the user-facing summary.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintBanner prints the ASCII art banner.
func PrintBanner() {
	banner := color.New(color.FgMagenta, color.Bold)
	banner.Fprint(os.Stdout, `     _                _                  _   _
 ___| |__   ___  _ __| |_ ___  ___ _   _| |_| |_ ___ _ __
/ __| '_ \ / _ \| '__| __/ __|/ __| | | | __| __/ _ \ '__|
\__ \ | | | (_) | |  | |_\__ \ (__| |_| | |_| ||  __/ |
|___/_| |_|\___/|_|   \__|___/\___|\__,_|\__|\__\___|_|
`)
	fmt.Fprintln(os.Stdout)
}
