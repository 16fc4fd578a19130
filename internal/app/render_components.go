package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/diff-folders/internal/models"
	"github.com/chmouel/diff-folders/internal/render"
	"github.com/dustin/go-humanize"
)

// renderHeader renders the title bar with the compared roots and the counts.
func (m *Model) renderHeader(layout layoutDims) string {
	headerStyle := lipgloss.NewStyle().
		Background(m.theme.AccentDim).
		Foreground(m.theme.TextFg).
		Bold(true).
		Width(layout.width).
		Padding(0, 2).Align(lipgloss.Center)

	content := "diff-folders"
	if m.result != nil {
		summary := "no differences"
		if m.counts.Total() > 0 {
			summary = m.renderCounts()
		}
		content = fmt.Sprintf("%s  •  %s → %s  •  %s", content, m.result.OldRoot, m.result.NewRoot, summary)
	}
	return headerStyle.Render(ansi.Truncate(content, max(layout.width-4, 0), "…"))
}

func (m *Model) renderCounts() string {
	counter := func(status models.Status, n int) string {
		return lipgloss.NewStyle().
			Foreground(m.theme.StatusColor(status)).
			Background(m.theme.AccentDim).
			Render(fmt.Sprintf("%s %d", status.Marker(), n))
	}
	return strings.Join([]string{
		counter(models.StatusNew, m.counts.New),
		counter(models.StatusModified, m.counts.Modified),
		counter(models.StatusDeleted, m.counts.Deleted),
	}, " ")
}

// renderFooter renders the key hints for the focused pane and details of the
// selected entry.
func (m *Model) renderFooter(layout layoutDims) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Background(m.theme.BorderDim).
		Padding(0, 1)

	var hints []string
	switch m.nav.Focus() {
	case models.PaneDetail:
		hints = []string{
			m.renderKeyHint("j/k", "Scroll"),
			m.renderKeyHint("ctrl+d/u", "Page"),
			m.renderKeyHint("h", "List"),
		}
	case models.PaneList:
		hints = []string{
			m.renderKeyHint("j/k", "Navigate"),
			m.renderKeyHint("ctrl+d/u", "Page"),
			m.renderKeyHint("Enter", "Show"),
			m.renderKeyHint("l", "Diff"),
		}
	}
	hints = append(hints,
		m.renderKeyHint("?", "About"),
		m.renderKeyHint("q", "Quit"),
	)

	footerContent := strings.Join(hints, "  ")
	info := m.selectedInfo()
	if info == "" {
		return footerStyle.Width(layout.width).Render(footerContent)
	}
	infoView := lipgloss.NewStyle().
		Foreground(m.theme.MutedFg).
		Background(m.theme.BorderDim).
		Padding(0, 1).
		Render(info)
	available := max(layout.width-lipgloss.Width(infoView), 0)
	footer := footerStyle.Width(available).Render(ansi.Truncate(footerContent, max(available-2, 0), ""))
	return lipgloss.JoinHorizontal(lipgloss.Top, footer, infoView)
}

// selectedInfo describes the selected entry: its size and modification time.
func (m *Model) selectedInfo() string {
	entry, ok := m.selectedEntry()
	if !ok {
		return ""
	}
	if entry.IsDir {
		return fmt.Sprintf("%s  dir  %s", entry.Status, humanize.Time(entry.ModTime))
	}
	return fmt.Sprintf("%s  %s  %s", entry.Status, humanize.Bytes(uint64(max(entry.Size, 0))), humanize.Time(entry.ModTime))
}

// renderKeyHint renders a single key hint.
func (m *Model) renderKeyHint(key, label string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	return fmt.Sprintf("%s %s", keyStyle.Render(key), labelStyle.Render(label))
}

// renderPaneTitle renders a pane title with focus indication.
func (m *Model) renderPaneTitle(title string, focused bool, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	if focused {
		titleStyle = titleStyle.Foreground(m.theme.TextFg).Bold(true)
	}
	return lipgloss.NewStyle().Width(width).Render(titleStyle.Render(ansi.Truncate(title, width, "…")))
}

// renderDetailTitle styles the detail pane title by its kind.
func (m *Model) renderDetailTitle(focused bool, width int) string {
	title := m.detail.Title
	switch m.detail.Kind {
	case render.TitleInfo:
		style := lipgloss.NewStyle().
			Foreground(m.theme.AccentFg).
			Background(m.theme.Accent).
			Bold(true).
			Padding(0, 1)
		return lipgloss.NewStyle().Width(width).Render(style.Render(title))
	case render.TitleError:
		style := lipgloss.NewStyle().Foreground(m.theme.ErrorFg).Italic(true)
		return lipgloss.NewStyle().Width(width).Render(style.Render(ansi.Truncate(title, width, "…")))
	case render.TitleNormal:
		return m.renderPaneTitle(title, focused, width)
	default:
		return m.renderPaneTitle(title, focused, width)
	}
}

// basePaneStyle returns the base pane style.
func (m *Model) basePaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderDim).
		Padding(0, 1)
}

// paneStyle returns a pane style with focus indication.
func (m *Model) paneStyle(focused bool) lipgloss.Style {
	borderColor := m.theme.BorderDim
	borderStyle := lipgloss.NormalBorder()
	if focused {
		borderColor = m.theme.Accent
		borderStyle = lipgloss.RoundedBorder()
	}
	return lipgloss.NewStyle().
		Border(borderStyle).
		BorderForeground(borderColor).
		Padding(0, 1)
}
