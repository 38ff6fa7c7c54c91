package tui

import (
	"github.com/glabrego/newsdeck/internal/tui/grid"
	"github.com/glabrego/newsdeck/internal/tui/state"
	tuiview "github.com/glabrego/newsdeck/internal/tui/view"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	sidebarWidth  = 30
	footerHeight  = 2
)

// layout is the screen geometry for one frame. View draws with it and mouse
// handling hit-tests against it, so both always agree.
type layout struct {
	width    int
	height   int
	narrow   bool
	columns  int
	search   tuiview.Rect
	grid     tuiview.Rect
	trending tuiview.Rect
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m Model) layout() layout {
	w, h := m.size()
	l := layout{
		width:  w,
		height: h,
		narrow: tuiview.SearchPlacement(w) == tuiview.PlacementSticky,
	}
	trendingH := tuiview.TrendingHeight(m.trending)
	if l.narrow {
		l.search = tuiview.Rect{X: 0, Y: 1, W: w, H: tuiview.SearchHeight}
		gridY := 1 + tuiview.SearchHeight
		gridH := max(tuiview.CardHeight, h-gridY-footerHeight-trendingH)
		l.grid = tuiview.Rect{X: 0, Y: gridY, W: w, H: gridH}
		l.trending = tuiview.Rect{X: 0, Y: gridY + gridH, W: w, H: trendingH}
	} else {
		gridW := w - sidebarWidth - 1
		sideX := gridW + 1
		l.grid = tuiview.Rect{X: 0, Y: 1, W: gridW, H: max(1, h-1-footerHeight)}
		l.search = tuiview.Rect{X: sideX, Y: 1, W: sidebarWidth, H: tuiview.SearchHeight}
		l.trending = tuiview.Rect{X: sideX, Y: 1 + tuiview.SearchHeight + 1, W: sidebarWidth, H: trendingH}
	}
	l.columns = grid.Columns(l.grid.W)
	return l
}

func (m Model) gridRows(l layout) []grid.Row {
	return grid.Build(m.visible, l.columns)
}

// gridWindow is the range of card rows that fit on screen, centred on the
// cursor.
func (m Model) gridWindow(l layout, rows []grid.Row) (int, int) {
	cursorRow, _ := grid.Locate(rows, m.cursor)
	visible := max(1, l.grid.H/tuiview.CardHeight)
	return state.CenteredWindow(len(rows), max(0, cursorRow), visible)
}
