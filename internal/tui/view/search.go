package view

import (
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

// NarrowBreakpoint is the terminal width below which the sidebar is dropped
// and search sits in a sticky bar under the navigation.
const NarrowBreakpoint = 96

const SearchPlaceholder = "Search articles..."

// SearchHeight is the rendered height of the search box.
const SearchHeight = 3

type Placement int

const (
	PlacementSidebar Placement = iota
	PlacementSticky
)

func SearchPlacement(width int) Placement {
	if width < NarrowBreakpoint {
		return PlacementSticky
	}
	return PlacementSidebar
}

// SearchBar frames the rendered text input. width is the outer width.
func SearchBar(input string, width int, focused bool, th tuitheme.Theme) string {
	inner := max(1, width-2)
	return th.SearchStyle(focused).Width(inner).MaxWidth(width).Render(input)
}
