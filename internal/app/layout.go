package app

import "github.com/chmouel/diff-folders/internal/models"

// layoutDims holds computed layout dimensions for the UI.
type layoutDims struct {
	width           int
	height          int
	headerHeight    int
	footerHeight    int
	bodyHeight      int
	gapX            int
	leftWidth       int
	rightWidth      int
	leftInnerWidth  int
	rightInnerWidth int
	innerHeight     int
	listRows        int
	detailRows      int
}

// computeLayout calculates the layout dimensions based on window size and focus.
func (m *Model) computeLayout() layoutDims {
	width := m.windowWidth
	height := m.windowHeight
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 40
	}

	headerHeight := 1
	footerHeight := 1
	gapX := 1

	bodyHeight := max(height-headerHeight-footerHeight, 4)

	leftPercent := m.config.FocusRatio
	switch m.nav.Focus() {
	case models.PaneList:
		leftPercent = m.config.FocusRatio
	case models.PaneDetail:
		leftPercent = 100 - m.config.FocusRatio
	}

	leftWidth := (width - gapX) * leftPercent / 100
	rightWidth := width - leftWidth - gapX
	if leftWidth < minLeftPaneWidth {
		leftWidth = minLeftPaneWidth
		rightWidth = width - leftWidth - gapX
	}
	if rightWidth < minRightPaneWidth {
		rightWidth = minRightPaneWidth
		leftWidth = width - rightWidth - gapX
	}
	if leftWidth < minLeftPaneWidth {
		leftWidth = minLeftPaneWidth
	}
	if leftWidth+rightWidth+gapX > width {
		rightWidth = max(width-leftWidth-gapX, 0)
	}

	paneFrameX := m.basePaneStyle().GetHorizontalFrameSize()
	paneFrameY := m.basePaneStyle().GetVerticalFrameSize()

	innerHeight := max(1, bodyHeight-paneFrameY)
	// One row of each pane is taken by its title.
	contentRows := max(innerHeight-1, 0)

	return layoutDims{
		width:           width,
		height:          height,
		headerHeight:    headerHeight,
		footerHeight:    footerHeight,
		bodyHeight:      bodyHeight,
		gapX:            gapX,
		leftWidth:       leftWidth,
		rightWidth:      rightWidth,
		leftInnerWidth:  max(1, leftWidth-paneFrameX),
		rightInnerWidth: max(1, rightWidth-paneFrameX),
		innerHeight:     innerHeight,
		listRows:        contentRows,
		detailRows:      contentRows,
	}
}
