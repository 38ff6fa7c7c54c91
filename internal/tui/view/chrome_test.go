package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

func TestToolbar(t *testing.T) {
	if got := Toolbar(false); !strings.Contains(got, "1-5: category") {
		t.Fatalf("unexpected grid toolbar: %q", got)
	}
	if got := Toolbar(true); !strings.Contains(got, "esc/x: close") {
		t.Fatalf("unexpected modal toolbar: %q", got)
	}
}

func TestNavTabsAndHitTest(t *testing.T) {
	counts := map[string]int{"All": 1234, "World": 7}
	tabs := NavTabs([]string{"All", "World"}, counts)
	if len(tabs) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(tabs))
	}
	if tabs[0].Label != "All 1,234" || tabs[1].Label != "World 7" {
		t.Fatalf("unexpected labels: %q %q", tabs[0].Label, tabs[1].Label)
	}
	if tabs[0].Start != len(Brand)+1 {
		t.Fatalf("expected first tab after brand, got %d", tabs[0].Start)
	}
	if tabs[1].Start != tabs[0].End+1 {
		t.Fatalf("expected one column between tabs, got %d and %d", tabs[0].End, tabs[1].Start)
	}

	if name, ok := TabAt(tabs, tabs[1].Start); !ok || name != "World" {
		t.Fatalf("expected World at %d, got %q %v", tabs[1].Start, name, ok)
	}
	if _, ok := TabAt(tabs, 0); ok {
		t.Fatal("brand area should not hit a tab")
	}
}

func TestNavBar_MatchesTabLayout(t *testing.T) {
	th := tuitheme.Default()
	tabs := NavTabs([]string{"All", "World", "Sports"}, map[string]int{})
	got := ansi.Strip(NavBar(tabs, "World", true, 80, th))

	if ansi.StringWidth(got) != 80 {
		t.Fatalf("expected nav bar to fill width, got %d", ansi.StringWidth(got))
	}
	for _, tab := range tabs {
		if idx := strings.Index(got, tab.Label); idx != tab.Start+1 {
			t.Fatalf("expected %q drawn inside its padding at %d, found at %d in %q", tab.Label, tab.Start+1, idx, got)
		}
	}
}

func TestStatusLine(t *testing.T) {
	th := tuitheme.Default()
	got := ansi.Strip(StatusLine(StatusInput{Results: 1, Category: "All"}, th))
	for _, want := range []string{"ready", "1 result", "category All"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in status, got %q", want, got)
		}
	}

	got = ansi.Strip(StatusLine(StatusInput{Results: 2500, Category: "Technology", Search: "ai", Err: errors.New("store closed")}, th))
	for _, want := range []string{"warning", "2,500 results", "category Technology", `search "ai"`, "store closed"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in status, got %q", want, got)
		}
	}

	if got := ansi.Strip(StatusLine(StatusInput{Loading: true}, th)); !strings.HasPrefix(got, "loading") {
		t.Fatalf("expected loading label, got %q", got)
	}
}

func TestSearchPlacement(t *testing.T) {
	if SearchPlacement(NarrowBreakpoint-1) != PlacementSticky {
		t.Fatal("expected sticky search below the breakpoint")
	}
	if SearchPlacement(NarrowBreakpoint) != PlacementSidebar {
		t.Fatal("expected sidebar search at the breakpoint")
	}
}

func TestSearchBar_Height(t *testing.T) {
	th := tuitheme.Default()
	got := SearchBar(SearchPlaceholder, 40, false, th)
	if lines := strings.Split(got, "\n"); len(lines) != SearchHeight {
		t.Fatalf("expected %d lines, got %d", SearchHeight, len(lines))
	}
	if !strings.Contains(ansi.Strip(got), SearchPlaceholder) {
		t.Fatalf("expected placeholder in search bar, got %q", got)
	}
}
