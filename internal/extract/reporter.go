package extract

import (
	"fmt"

	"github.com/fatih/color"
)

// Reporter receives per-commit progress events from the traversal engine.
// It is an injected collaborator so the engine can run without any
// display dependency.
type Reporter interface {
	Saved(hash string, saved, target int)
	Skipped(hash string, reason Reason)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Saved(string, int, int) {}
func (NopReporter) Skipped(string, Reason) {}

// ConsoleReporter prints progress and skip diagnostics to stdout.
type ConsoleReporter struct {
	// Progress enables per-save progress lines.
	Progress bool
	// Verbose enables per-skip reason lines.
	Verbose bool
}

func (r *ConsoleReporter) Saved(hash string, saved, target int) {
	if !r.Progress {
		return
	}
	color.Green("[%d/%d] saved commit %s", saved, target, shortHash(hash))
}

func (r *ConsoleReporter) Skipped(hash string, reason Reason) {
	if !r.Verbose {
		return
	}
	fmt.Printf("skip commit %s (%s)\n", shortHash(hash), reason)
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// Compile-time interface conformance checks.
var (
	_ Reporter = NopReporter{}
	_ Reporter = (*ConsoleReporter)(nil)
)
