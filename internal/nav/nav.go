// Package nav holds the two-pane navigation state: which pane has focus,
// which entry is selected and displayed, and how far the detail pane is
// scrolled. It performs no I/O.
package nav

import "github.com/chmouel/diff-folders/internal/models"

// Direction of a selection or scroll move.
type Direction int

// Directions.
const (
	Forward Direction = iota
	Backward
)

// State is the navigation state owned by the event loop.
type State struct {
	entries       []models.ClassifiedEntry
	focus         models.Pane
	selected      int // -1 when nothing is selected
	scroll        int
	contentLength int
	pageSize      int
	home          bool
	displayed     *models.ClassifiedEntry
}

// New returns a state with the list pane focused and nothing selected.
func New(entries []models.ClassifiedEntry) *State {
	return &State{
		entries:  entries,
		focus:    models.PaneList,
		selected: -1,
	}
}

// Len returns the number of selectable entries.
func (s *State) Len() int { return len(s.entries) }

// Entries returns the selectable entries.
func (s *State) Entries() []models.ClassifiedEntry { return s.entries }

// Focus returns the focused pane.
func (s *State) Focus() models.Pane { return s.focus }

// Scroll returns the detail pane scroll offset.
func (s *State) Scroll() int { return s.scroll }

// ContentLength returns the number of lines last rendered in the detail pane.
func (s *State) ContentLength() int { return s.contentLength }

// PageSize returns the paged move step.
func (s *State) PageSize() int { return s.pageSize }

// Home reports whether the detail pane shows the informational page.
func (s *State) Home() bool { return s.home }

// Displayed returns the entry loaded in the detail pane, or nil.
func (s *State) Displayed() *models.ClassifiedEntry { return s.displayed }

// SelectedIndex returns the selected index, or false when nothing is selected.
func (s *State) SelectedIndex() (int, bool) {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return 0, false
	}
	return s.selected, true
}

// Selected returns the selected entry.
func (s *State) Selected() (*models.ClassifiedEntry, bool) {
	idx, ok := s.SelectedIndex()
	if !ok {
		return nil, false
	}
	return &s.entries[idx], true
}

// FocusLeft moves focus to the list pane.
func (s *State) FocusLeft() {
	switch s.focus {
	case models.PaneDetail:
		s.focus = models.PaneList
	case models.PaneList:
	}
}

// FocusRight moves focus to the detail pane.
func (s *State) FocusRight() {
	switch s.focus {
	case models.PaneList:
		s.focus = models.PaneDetail
	case models.PaneDetail:
	}
}

// SelectMove moves the selection by step, wrapping around both ends, then
// confirms it. It only acts while the list pane is focused and reports
// whether a different entry was loaded into the detail pane.
func (s *State) SelectMove(step int, dir Direction) bool {
	if s.focus != models.PaneList || len(s.entries) == 0 {
		return false
	}

	n := len(s.entries)
	if s.selected < 0 || s.selected >= n {
		s.selected = 0
	} else {
		delta := step % n
		if dir == Backward {
			delta = -delta
		}
		s.selected = ((s.selected+delta)%n + n) % n
	}
	return s.Confirm()
}

// ScrollMove scrolls the detail pane by step. It only acts while the detail
// pane is focused. The offset stays within the rendered content so the last
// line remains visible.
func (s *State) ScrollMove(step int, dir Direction) {
	if s.focus != models.PaneDetail {
		return
	}
	if step > s.contentLength {
		step = s.contentLength
	}
	switch dir {
	case Forward:
		s.scroll += step
	case Backward:
		s.scroll -= step
	}
	s.clampScroll()
}

// Move handles a line-wise up/down: selection in the list pane, scrolling
// in the detail pane.
func (s *State) Move(dir Direction) bool {
	switch s.focus {
	case models.PaneList:
		return s.SelectMove(1, dir)
	case models.PaneDetail:
		s.ScrollMove(1, dir)
	}
	return false
}

// Page handles a paged move using the current page size.
func (s *State) Page(dir Direction) bool {
	switch s.focus {
	case models.PaneList:
		return s.SelectMove(s.pageSize, dir)
	case models.PaneDetail:
		s.ScrollMove(s.pageSize, dir)
	}
	return false
}

// ShowHome switches the detail pane to the informational page. Selection
// and focus are left untouched.
func (s *State) ShowHome() {
	s.home = true
	s.scroll = 0
}

// Confirm leaves the informational page and loads the selected entry into
// the detail pane unless it is already displayed. It reports whether a
// different entry was loaded.
func (s *State) Confirm() bool {
	s.home = false
	selected, ok := s.Selected()
	if !ok {
		return false
	}
	if s.displayed.SamePath(selected) {
		return false
	}
	entry := *selected
	s.displayed = &entry
	s.scroll = 0
	return true
}

// SetViewport recomputes the page size from the list pane's rendered rows.
func (s *State) SetViewport(listRows int) {
	if listRows < 0 {
		listRows = 0
	}
	s.pageSize = listRows / 2
}

// SetContentLength records how many lines the detail pane rendered and
// re-clamps the scroll offset.
func (s *State) SetContentLength(n int) {
	if n < 0 {
		n = 0
	}
	s.contentLength = n
	s.clampScroll()
}

func (s *State) clampScroll() {
	maxScroll := max(s.contentLength-1, 0)
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
}
