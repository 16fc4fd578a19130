// Package screen provides the full-screen views shown outside the two-pane layout.
package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/diff-folders/internal/theme"
)

const loadingBoxWidth = 60

// LoadingScreen displays a bordered box with the scan progress.
type LoadingScreen struct {
	Message string
	Percent int
	Thm     *theme.Theme
	bar     progress.Model
}

// NewLoadingScreen creates a loading box with the given message.
func NewLoadingScreen(message string, thm *theme.Theme) *LoadingScreen {
	bar := progress.New(
		progress.WithSolidFill(string(thm.Accent)),
		progress.WithWidth(loadingBoxWidth-10),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(thm.BorderDim)
	return &LoadingScreen{
		Message: message,
		Thm:     thm,
		bar:     bar,
	}
}

// SetPercent records the scan progress, clamped to 0..100.
func (s *LoadingScreen) SetPercent(percent int) {
	s.Percent = min(max(percent, 0), 100)
}

// View renders the loading box.
func (s *LoadingScreen) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(1, 2).
		Width(loadingBoxWidth)

	messageStyle := lipgloss.NewStyle().
		Foreground(s.Thm.TextFg).
		Bold(true)
	separator := lipgloss.NewStyle().
		Foreground(s.Thm.BorderDim).
		Render(strings.Repeat("-", loadingBoxWidth-6))
	percentStyle := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Italic(true)

	content := lipgloss.JoinVertical(lipgloss.Center,
		messageStyle.Render(s.Message),
		separator,
		s.bar.ViewAs(float64(s.Percent)/100),
		percentStyle.Render(fmt.Sprintf("%d%%", s.Percent)),
	)

	return boxStyle.Render(content)
}
