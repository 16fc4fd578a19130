package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/diff-folders/internal/models"
	"github.com/muesli/reflow/wrap"
)

// renderBody renders the list and detail panes side by side.
func (m *Model) renderBody(layout layoutDims) string {
	left := m.renderListPane(layout)
	right := m.renderDetailPane(layout)
	gap := lipgloss.NewStyle().
		Width(layout.gapX).
		Render(strings.Repeat(" ", layout.gapX))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

// renderListPane renders the classified entries.
func (m *Model) renderListPane(layout layoutDims) string {
	focused := m.nav.Focus() == models.PaneList
	newRoot := m.newDir
	if m.result != nil {
		newRoot = m.result.NewRoot
	}
	title := m.renderPaneTitle("folder "+newRoot, focused, layout.leftInnerWidth)

	rows := m.listRows(layout.leftInnerWidth, layout.listRows)
	content := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
	return m.sizedPane(focused, layout.leftWidth, layout.bodyHeight).Render(content)
}

func (m *Model) listRows(width, rows int) []string {
	entries := m.nav.Entries()
	if len(entries) == 0 || m.counts.Total() == 0 {
		empty := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Italic(true)
		return []string{empty.Render("No differences found.")}
	}

	selected, hasSelection := m.nav.SelectedIndex()
	end := min(m.listOffset+rows, len(entries))
	out := make([]string, 0, max(end-m.listOffset, 0))
	for i := m.listOffset; i < end; i++ {
		out = append(out, m.listRow(entries[i], width, hasSelection && i == selected))
	}
	return out
}

// listRow renders one entry as "<marker> <kind> ./<key>".
func (m *Model) listRow(entry models.ClassifiedEntry, width int, selected bool) string {
	text := fmt.Sprintf("%s %s ./%s", entry.Status.Marker(), entryKind(entry, m.config.ShowIcons), entry.Key)
	text = ansi.Truncate(text, width, "…")

	style := lipgloss.NewStyle().Foreground(m.theme.StatusColor(entry.Status))
	if selected {
		style = style.Background(m.theme.AccentDim).Bold(true)
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return style.Render(text)
}

// renderDetailPane renders the scrolled content of the detail pane.
func (m *Model) renderDetailPane(layout layoutDims) string {
	focused := m.nav.Focus() == models.PaneDetail
	title := m.renderDetailTitle(focused, layout.rightInnerWidth)
	lines := m.detailLines(layout.rightInnerWidth, layout.detailRows)
	content := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...)
	return m.sizedPane(focused, layout.rightWidth, layout.bodyHeight).Render(content)
}

// detailLines returns at most rows screen lines starting at the scroll offset.
// Long lines are wrapped to width.
func (m *Model) detailLines(width, rows int) []string {
	if rows <= 0 {
		return nil
	}
	scroll := m.nav.Scroll()

	if m.nav.Home() {
		if scroll >= len(m.homeLines) {
			return nil
		}
		lines := m.homeLines[scroll:]
		return lines[:min(rows, len(lines))]
	}

	out := make([]string, 0, rows)
	for i := scroll; i < len(m.detail.Lines) && len(out) < rows; i++ {
		line := m.detail.Lines[i]
		style := lipgloss.NewStyle().Foreground(m.theme.LineColor(line.Color))
		text := expandTabs(line.String(), m.config.TabWidth)
		for _, part := range strings.Split(wrap.String(text, max(width, 1)), "\n") {
			if len(out) == rows {
				break
			}
			out = append(out, style.Render(part))
		}
	}
	return out
}

// sizedPane returns a pane style whose rendered size, border included, is
// width by height.
func (m *Model) sizedPane(focused bool, width, height int) lipgloss.Style {
	style := m.paneStyle(focused)
	innerHeight := max(height-style.GetVerticalBorderSize(), 1)
	return style.
		Width(max(width-style.GetHorizontalBorderSize(), 1)).
		Height(innerHeight).
		MaxHeight(height)
}

func expandTabs(s string, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", max(tabWidth, 1)))
}
