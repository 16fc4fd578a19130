package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/diff-folders/internal/config"
	"github.com/chmouel/diff-folders/internal/models"
	"github.com/chmouel/diff-folders/internal/render"
	"github.com/chmouel/diff-folders/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTrees creates old and new trees that differ by one modified file, one
// added file, one added directory and one deleted directory.
func setupTrees(t *testing.T) (oldDir, newDir string) {
	t.Helper()
	base := t.TempDir()
	oldDir = filepath.Join(base, "old")
	newDir = filepath.Join(base, "new")
	files := map[string]string{
		filepath.Join(oldDir, "a.txt"):               "1\n2\n3",
		filepath.Join(oldDir, "gone", "x.txt"):       "x\n",
		filepath.Join(oldDir, "same.txt"):            "same\n",
		filepath.Join(newDir, "a.txt"):               "1\nX\n3",
		filepath.Join(newDir, "b.txt"):               "hello\n",
		filepath.Join(newDir, "newdir", "inner.txt"): "inner\n",
		filepath.Join(newDir, "same.txt"):            "same\n",
	}
	for path, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return oldDir, newDir
}

func newScannedModel(t *testing.T) *Model {
	t.Helper()
	oldDir, newDir := setupTrees(t)
	m := NewModel(config.DefaultConfig(), oldDir, newDir)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	res, err := snapshot.Diff(oldDir, newDir, snapshot.Options{})
	require.NoError(t, err)
	m.Update(scanCompleteMsg{result: res})
	require.False(t, m.scanning)
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func detailTexts(m *Model) []string {
	out := make([]string, len(m.detail.Lines))
	for i, l := range m.detail.Lines {
		out[i] = l.String()
	}
	return out
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(nil, "old", "new")

	assert.True(t, m.scanning)
	assert.NotNil(t, m.loadingScreen)
	assert.Equal(t, config.DefaultConfig().Theme, m.config.Theme)
	assert.Equal(t, models.PaneList, m.nav.Focus())
	assert.NoError(t, m.Err())
}

func TestScanProgressUpdatesLoadingScreen(t *testing.T) {
	m := NewModel(config.DefaultConfig(), "old", "new")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := m.Update(scanProgressMsg{percent: snapshot.ProgressDeleted})
	assert.NotNil(t, cmd, "progress re-arms the scan listener")
	assert.Equal(t, snapshot.ProgressDeleted, m.loadingScreen.Percent)
	assert.Contains(t, ansi.Strip(m.View()), "Loading files")
}

func TestKeysIgnoredWhileScanning(t *testing.T) {
	m := NewModel(config.DefaultConfig(), "old", "new")

	_, cmd := m.Update(runeKey("j"))
	assert.Nil(t, cmd)
	_, ok := m.nav.SelectedIndex()
	assert.False(t, ok)

	_, cmd = m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestScanErrorQuits(t *testing.T) {
	m := NewModel(config.DefaultConfig(), "old", "new")
	scanErr := errors.New("resolve old: no such file or directory")

	_, cmd := m.Update(scanCompleteMsg{err: scanErr})
	require.NotNil(t, cmd)
	assert.ErrorIs(t, m.Err(), scanErr)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestScanCommandDeliversProgressAndResult(t *testing.T) {
	oldDir, newDir := setupTrees(t)
	m := NewModel(config.DefaultConfig(), oldDir, newDir)

	assert.Nil(t, m.startScan()())

	var percents []int
	wait := m.waitForScan()
	for {
		msg := wait()
		if msg == nil {
			break
		}
		switch msg := msg.(type) {
		case scanProgressMsg:
			percents = append(percents, msg.percent)
		case scanCompleteMsg:
			require.NoError(t, msg.err)
			assert.Len(t, msg.result.Entries, 4)
		}
	}
	assert.Equal(t, []int{10, 20, 30, 40, 80, 100}, percents)
}

func TestInitialDetailPromptsForSelection(t *testing.T) {
	m := newScannedModel(t)

	assert.Equal(t, 4, m.nav.Len())
	assert.Equal(t, render.TitleError, m.detail.Kind)
	assert.Equal(t, []string{" please press 'enter' to select a file"}, detailTexts(m))
	assert.Equal(t, snapshot.Counts{New: 2, Modified: 1, Deleted: 1}, m.counts)
}

func TestSelectingModifiedFileRendersDiff(t *testing.T) {
	m := newScannedModel(t)

	m.Update(runeKey("j"))
	entry, ok := m.selectedEntry()
	require.True(t, ok)
	assert.Equal(t, "a.txt", entry.Key)
	assert.Equal(t, models.StatusModified, entry.Status)

	assert.Equal(t, []string{" 1", "-2", "+X", " 3"}, detailTexts(m))
	assert.Equal(t, 4, m.nav.ContentLength())
	assert.Equal(t, render.TitleNormal, m.detail.Kind)
}

func TestDirectoryCannotScroll(t *testing.T) {
	m := newScannedModel(t)

	m.Update(runeKey("j"))
	m.Update(runeKey("j"))
	m.Update(runeKey("j"))
	entry, _ := m.selectedEntry()
	require.Equal(t, "newdir", entry.Key)
	require.True(t, entry.IsDir)
	assert.Equal(t, []string{" this is a directory"}, detailTexts(m))

	m.Update(runeKey("l"))
	m.Update(runeKey("j"))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, 0, m.nav.Scroll())
	assert.Equal(t, 1, m.nav.ContentLength())
}

func TestListWrapsAround(t *testing.T) {
	m := newScannedModel(t)

	m.Update(runeKey("k"))
	idx, _ := m.nav.SelectedIndex()
	assert.Equal(t, 0, idx, "first move selects the first entry")

	m.Update(runeKey("k"))
	idx, _ = m.nav.SelectedIndex()
	assert.Equal(t, 3, idx)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	idx, _ = m.nav.SelectedIndex()
	assert.Equal(t, 0, idx)
}

func TestHomeAndEnter(t *testing.T) {
	m := newScannedModel(t)
	m.Update(runeKey("j"))

	m.Update(runeKey("?"))
	assert.True(t, m.nav.Home())
	assert.Equal(t, render.HomeTitle, m.detail.Title)
	assert.NotEmpty(t, m.homeLines)
	assert.Equal(t, len(m.homeLines), m.nav.ContentLength())
	idx, _ := m.nav.SelectedIndex()
	assert.Equal(t, 0, idx, "home keeps the selection")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.nav.Home())
	assert.Nil(t, m.homeLines)
	assert.Equal(t, []string{" 1", "-2", "+X", " 3"}, detailTexts(m))
}

func TestFocusKeys(t *testing.T) {
	m := newScannedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.PaneDetail, m.nav.Focus())
	m.Update(runeKey("l"))
	assert.Equal(t, models.PaneDetail, m.nav.Focus())
	m.Update(runeKey("h"))
	assert.Equal(t, models.PaneList, m.nav.Focus())
}

func TestPageSizeFollowsWindow(t *testing.T) {
	m := newScannedModel(t)
	layout := m.computeLayout()
	assert.Equal(t, layout.listRows/2, m.nav.PageSize())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.Equal(t, m.computeLayout().listRows/2, m.nav.PageSize())
}

func TestViewShowsPanes(t *testing.T) {
	m := newScannedModel(t)
	m.Update(runeKey("j"))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "folder "+m.result.NewRoot)
	assert.Contains(t, view, "M f ./a.txt")
	assert.Contains(t, view, "A d ./newdir")
	assert.Contains(t, view, "-2")
	assert.Contains(t, view, "+X")
	assert.NotContains(t, view, "same.txt")
}

func TestViewIdenticalTrees(t *testing.T) {
	base := t.TempDir()
	oldDir, newDir := filepath.Join(base, "o"), filepath.Join(base, "n")
	for _, dir := range []string{oldDir, newDir} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "same.txt"), []byte("same\n"), 0o600))
	}
	m := NewModel(config.DefaultConfig(), oldDir, newDir)
	m.Update(tea.WindowSizeMsg{Width: 300, Height: 20})
	res, err := snapshot.Diff(oldDir, newDir, snapshot.Options{})
	require.NoError(t, err)
	m.Update(scanCompleteMsg{result: res})

	assert.Equal(t, 0, m.counts.Total())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "•  no differences")
	assert.Contains(t, view, "No differences found.")
	assert.NotContains(t, view, "A 0")
}

func TestViewWaitsForWindowSize(t *testing.T) {
	m := NewModel(config.DefaultConfig(), "old", "new")
	assert.Equal(t, "Loading...", m.View())
}

func TestSyncListOffsetKeepsSelectionVisible(t *testing.T) {
	m := newScannedModel(t)

	for range 3 {
		m.Update(runeKey("j"))
	}
	m.syncListOffset(2)
	assert.Equal(t, 1, m.listOffset)

	m.Update(runeKey("j"))
	m.Update(runeKey("j")) // wraps to 0
	m.listOffset = 3
	m.syncListOffset(2)
	assert.Equal(t, 0, m.listOffset)
}

func TestSelectedInfo(t *testing.T) {
	m := newScannedModel(t)
	assert.Empty(t, m.selectedInfo())

	m.Update(runeKey("j"))
	info := m.selectedInfo()
	assert.Contains(t, info, "modified")
	assert.Contains(t, info, "5 B")
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "a    b", expandTabs("a\tb", 4))
	assert.Equal(t, "plain", expandTabs("plain", 4))
	assert.Equal(t, "a b", expandTabs("a\tb", 0))
}

func TestTruncateToHeight(t *testing.T) {
	assert.Equal(t, "a\nb", truncateToHeight("a\nb\nc", 2))
	assert.Equal(t, "a", truncateToHeight("a", 5))
	assert.Empty(t, truncateToHeight("a\nb", 0))
}
