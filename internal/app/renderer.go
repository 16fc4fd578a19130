package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the loading box while scanning, then the two-pane layout.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Wait for window size before rendering full UI
	if m.windowWidth == 0 || m.windowHeight == 0 {
		return "Loading..."
	}

	if m.scanning && m.loadingScreen != nil {
		return lipgloss.Place(m.windowWidth, m.windowHeight, lipgloss.Center, lipgloss.Center, m.loadingScreen.View())
	}

	layout := m.computeLayout()
	header := m.renderHeader(layout)
	footer := m.renderFooter(layout)
	body := truncateToHeight(m.renderBody(layout), m.windowHeight-layout.headerHeight-layout.footerHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func truncateToHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > max(maxLines, 0) {
		lines = lines[:max(maxLines, 0)]
	}
	return strings.Join(lines, "\n")
}
