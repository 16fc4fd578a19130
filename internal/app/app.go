// Package app implements the two-pane terminal interface of diff-folders.
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/chmouel/diff-folders/internal/app/screen"
	"github.com/chmouel/diff-folders/internal/config"
	"github.com/chmouel/diff-folders/internal/linediff"
	"github.com/chmouel/diff-folders/internal/log"
	"github.com/chmouel/diff-folders/internal/models"
	"github.com/chmouel/diff-folders/internal/nav"
	"github.com/chmouel/diff-folders/internal/render"
	"github.com/chmouel/diff-folders/internal/snapshot"
	"github.com/chmouel/diff-folders/internal/theme"
)

const (
	minLeftPaneWidth  = 20
	minRightPaneWidth = 20

	// Enough room for every progress milestone plus the final result, so the
	// scan never blocks on a program that has already quit.
	scanBufferSize = 8
)

// scanProgressMsg carries a progress milestone of the startup scan.
type scanProgressMsg struct {
	percent int
}

// scanCompleteMsg hands the classified list to the model.
type scanCompleteMsg struct {
	result *snapshot.Result
	err    error
}

// Model is the bubbletea model of the application.
type Model struct {
	config *config.AppConfig
	theme  *theme.Theme
	keys   KeyMap

	oldDir string
	newDir string

	scanCh        chan tea.Msg
	scanning      bool
	loadingScreen *screen.LoadingScreen

	result   *snapshot.Result
	counts   snapshot.Counts
	nav      *nav.State
	renderer *render.Renderer

	detail     render.Result
	homeLines  []string
	listOffset int

	windowWidth  int
	windowHeight int

	err      error
	quitting bool
}

// NewModel creates a model that scans oldDir and newDir once started.
func NewModel(cfg *config.AppConfig, oldDir, newDir string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	thm := theme.GetTheme(cfg.Theme)
	return &Model{
		config:        cfg,
		theme:         thm,
		keys:          DefaultKeyMap(),
		oldDir:        oldDir,
		newDir:        newDir,
		scanCh:        make(chan tea.Msg, scanBufferSize),
		scanning:      true,
		loadingScreen: screen.NewLoadingScreen("Loading files", thm),
		nav:           nav.New(nil),
	}
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init starts the scan.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startScan(), m.waitForScan())
}

func (m *Model) startScan() tea.Cmd {
	ch := m.scanCh
	oldDir, newDir := m.oldDir, m.newDir
	ignore := append([]string(nil), m.config.Ignore...)
	return func() tea.Msg {
		res, err := snapshot.Diff(oldDir, newDir, snapshot.Options{
			Ignore: ignore,
			Progress: func(percent int) {
				ch <- scanProgressMsg{percent: percent}
			},
		})
		ch <- scanCompleteMsg{result: res, err: err}
		close(ch)
		return nil
	}
}

func (m *Model) waitForScan() tea.Cmd {
	ch := m.scanCh
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.refresh()
		return m, nil

	case scanProgressMsg:
		m.loadingScreen.SetPercent(msg.percent)
		return m, m.waitForScan()

	case scanCompleteMsg:
		return m.handleScanComplete(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleScanComplete(msg scanCompleteMsg) (tea.Model, tea.Cmd) {
	m.scanning = false
	m.loadingScreen = nil
	if msg.err != nil {
		log.Errorf("scan failed: %v", msg.err)
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	m.result = msg.result
	m.counts = msg.result.Entries.Counts()
	m.nav = nav.New(msg.result.Entries)
	m.renderer = render.New(msg.result.OldRoot, msg.result.NewRoot)
	log.WithField("entries", m.nav.Len()).Infof("scan complete: %d new, %d modified, %d deleted",
		m.counts.New, m.counts.Modified, m.counts.Deleted)
	m.refresh()
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scanning {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.nav.FocusLeft()
	case key.Matches(msg, m.keys.Right):
		m.nav.FocusRight()
	case key.Matches(msg, m.keys.Up):
		m.nav.Move(nav.Backward)
	case key.Matches(msg, m.keys.Down):
		m.nav.Move(nav.Forward)
	case key.Matches(msg, m.keys.PageUp):
		m.nav.Page(nav.Backward)
	case key.Matches(msg, m.keys.PageDown):
		m.nav.Page(nav.Forward)
	case key.Matches(msg, m.keys.Enter):
		m.nav.Confirm()
	case key.Matches(msg, m.keys.Home):
		m.nav.ShowHome()
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// refresh re-renders the detail pane content and feeds its length and the
// list viewport back into the navigation state.
func (m *Model) refresh() {
	if m.scanning || m.renderer == nil {
		return
	}
	layout := m.computeLayout()
	m.nav.SetViewport(layout.listRows)

	m.detail = m.renderer.Render(m.nav.Displayed(), m.nav.Home())
	if m.nav.Home() {
		m.homeLines = m.renderHome(layout.rightInnerWidth)
		m.nav.SetContentLength(len(m.homeLines))
	} else {
		m.homeLines = nil
		m.nav.SetContentLength(len(m.detail.Lines))
	}
	m.syncListOffset(layout.listRows)
}

// renderHome renders the informational page as markdown, falling back to the
// raw text when glamour fails.
func (m *Model) renderHome(width int) []string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.theme.MarkdownStyle()),
		glamour.WithWordWrap(max(width, 10)),
	)
	if err == nil {
		var out string
		if out, err = r.Render(render.HomeMarkdown); err == nil {
			return linediff.SplitLines(strings.Trim(out, "\n"))
		}
	}
	log.Warnf("markdown rendering failed: %v", err)
	lines := make([]string, 0, len(m.detail.Lines))
	for _, l := range m.detail.Lines {
		lines = append(lines, l.Text)
	}
	return lines
}

// syncListOffset scrolls the list window so the selection stays visible.
func (m *Model) syncListOffset(rows int) {
	idx, ok := m.nav.SelectedIndex()
	if !ok || rows <= 0 {
		m.listOffset = 0
		return
	}
	if idx < m.listOffset {
		m.listOffset = idx
	}
	if idx >= m.listOffset+rows {
		m.listOffset = idx - rows + 1
	}
	m.listOffset = min(m.listOffset, max(m.nav.Len()-rows, 0))
}

func (m *Model) selectedEntry() (models.ClassifiedEntry, bool) {
	entry, ok := m.nav.Selected()
	if !ok {
		return models.ClassifiedEntry{}, false
	}
	return *entry, true
}
