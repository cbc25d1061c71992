// Package ui provides stderr-based status output for relics commands and
// the stdout record table.
package ui

import (
	"fmt"
	"os"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, yellow+"⚠ %s"+reset+"\n", msg)
}

// ImportSummary reports a completed import.
func (p *Printer) ImportSummary(imported, skipped, total int) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ imported"+reset+" %d relics, skipped %d rows, %d after merge\n",
		imported, skipped, total)
}

// Saved reports a successful project or export write.
func (p *Printer) Saved(what, path string) {
	fmt.Fprintf(os.Stderr, green+"✓ %s saved"+reset+dim+" → %s"+reset+"\n", what, path)
}

// Loaded reports a successful project load.
func (p *Printer) Loaded(path string, records int) {
	fmt.Fprintf(os.Stderr, green+"✓ project loaded"+reset+dim+" ← %s"+reset+" (%d records)\n",
		path, records)
}

// Updated reports a field edit.
func (p *Printer) Updated(field, value string, rows int) {
	if rows == 1 {
		fmt.Fprintf(os.Stderr, cyan+"◆ set"+reset+" %s to %q\n", field, value)
		return
	}
	fmt.Fprintf(os.Stderr, cyan+"◆ set"+reset+" %s to %q for %d rows\n", field, value, rows)
}

// Watching reports that the watch loop is running.
func (p *Printer) Watching(path string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ watching"+reset+" %s (re-importing on change, ctrl-c to stop)\n", path)
}
