package models

// Status classifies an entry by how it changed from the old root to the new root.
type Status int

// Status values. Normal entries are identical on both sides and never listed.
const (
	StatusNormal Status = iota
	StatusNew
	StatusModified
	StatusDeleted
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Marker returns the one-letter tag shown next to the entry in the list.
func (s Status) Marker() string {
	switch s {
	case StatusNew:
		return "A"
	case StatusModified:
		return "M"
	case StatusDeleted:
		return "D"
	case StatusNormal:
		return " "
	default:
		return "?"
	}
}

// Whole reports whether the entry exists on one side only.
func (s Status) Whole() bool {
	switch s {
	case StatusNew, StatusDeleted:
		return true
	case StatusNormal, StatusModified:
		return false
	default:
		return false
	}
}

// OpTag tags a line-level diff operation.
type OpTag int

// Diff operation tags.
const (
	OpEqual OpTag = iota
	OpDelete
	OpInsert
)

// String returns a human-readable name for the tag.
func (t OpTag) String() string {
	switch t {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Sign returns the diff sign for the tag.
func (t OpTag) Sign() rune {
	switch t {
	case OpDelete:
		return '-'
	case OpInsert:
		return '+'
	case OpEqual:
		return ' '
	default:
		return ' '
	}
}

// Color is the semantic colour of a rendered line. Themes map it to a terminal colour.
type Color int

// Semantic colours.
const (
	ColorEqual Color = iota
	ColorDelete
	ColorInsert
	ColorInfo
	ColorError
)

// String returns a human-readable name for the colour.
func (c Color) String() string {
	switch c {
	case ColorEqual:
		return "equal"
	case ColorDelete:
		return "delete"
	case ColorInsert:
		return "insert"
	case ColorInfo:
		return "info"
	case ColorError:
		return "error"
	default:
		return "unknown"
	}
}

// ColorFor returns the line colour used for a diff operation tag.
func ColorFor(t OpTag) Color {
	switch t {
	case OpDelete:
		return ColorDelete
	case OpInsert:
		return ColorInsert
	case OpEqual:
		return ColorEqual
	default:
		return ColorEqual
	}
}

// Pane identifies one of the two panes of the UI.
type Pane int

// Panes, left to right.
const (
	PaneList Pane = iota
	PaneDetail
)

// String returns a human-readable name for the pane.
func (p Pane) String() string {
	switch p {
	case PaneList:
		return "list"
	case PaneDetail:
		return "detail"
	default:
		return "unknown"
	}
}
