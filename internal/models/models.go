// Package models defines the data objects shared across diff-folders packages.
package models

import "time"

// Entry is a single filesystem entry captured while walking one root.
type Entry struct {
	Path    string // Canonical path (absolute, symlink-resolved)
	Key     string // Path relative to the walked root, slash separated
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// ClassifiedEntry pairs an entry with its change status between the two roots.
type ClassifiedEntry struct {
	Entry
	Status Status
}

// SamePath reports whether both entries point at the same canonical path.
func (c *ClassifiedEntry) SamePath(other *ClassifiedEntry) bool {
	if c == nil || other == nil {
		return false
	}
	return c.Path == other.Path
}

// DiffOp is one aligned element of a line-level diff.
type DiffOp struct {
	Tag  OpTag
	Text string
}

// DiffLine is a rendered line of the detail pane.
type DiffLine struct {
	Sign  rune // '-', '+' or ' '
	Text  string
	Color Color
}

// String returns the line as shown in the detail pane, sign first.
func (l DiffLine) String() string {
	return string(l.Sign) + l.Text
}
