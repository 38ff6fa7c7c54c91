package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

const Brand = " NewsDeck "

func Toolbar(inModal bool) string {
	if inModal {
		return "tab/shift+tab: controls | enter: activate | j/k: scroll | o: open image | y: copy link | esc/x: close | q: quit"
	}
	return "tab: zones | 1-5: category | /: search | ctrl+l: clear | arrows: move | enter: open | q: quit"
}

// Tab is one category tab in the navigation bar, with its column span.
type Tab struct {
	Name  string
	Label string
	Start int
	End   int
}

// NavTabs lays out category tabs after the brand. Counts are the number of
// articles each tab would show for the current search.
func NavTabs(categories []string, counts map[string]int) []Tab {
	tabs := make([]Tab, 0, len(categories))
	x := ansi.StringWidth(Brand) + 1
	for _, name := range categories {
		label := fmt.Sprintf("%s %s", name, humanize.Comma(int64(counts[name])))
		width := ansi.StringWidth(label) + 2
		tabs = append(tabs, Tab{Name: name, Label: label, Start: x, End: x + width})
		x += width + 1
	}
	return tabs
}

// TabAt reports the tab under column x.
func TabAt(tabs []Tab, x int) (string, bool) {
	for _, tab := range tabs {
		if x >= tab.Start && x < tab.End {
			return tab.Name, true
		}
	}
	return "", false
}

func NavBar(tabs []Tab, active string, focused bool, width int, th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(th.Brand.Render(Brand))
	for _, tab := range tabs {
		b.WriteString(" ")
		switch {
		case tab.Name == active && focused:
			b.WriteString(th.NavFocus.Render(tab.Label))
		case tab.Name == active:
			b.WriteString(th.NavActive.Render(tab.Label))
		default:
			b.WriteString(th.NavTab.Render(tab.Label))
		}
	}
	line := ansi.Truncate(b.String(), max(0, width), "")
	return th.NavBar.Width(max(0, width)).MaxWidth(max(0, width)).Render(line)
}

type StatusInput struct {
	Loading  bool
	Status   string
	Err      error
	Results  int
	Category string
	Search   string
}

func StatusLine(in StatusInput, th tuitheme.Theme) string {
	label := th.StateIdle.Render("ready")
	message := ""
	switch {
	case in.Loading:
		label = th.StateLoad.Render("loading")
	case in.Err != nil:
		label = th.StateWarn.Render("warning")
		message = in.Err.Error()
	}
	if in.Status != "" {
		message = in.Status
	}

	results := "results"
	if in.Results == 1 {
		results = "result"
	}
	parts := []string{
		label,
		th.MetaValue.Render(fmt.Sprintf("%s %s", humanize.Comma(int64(in.Results)), results)),
		th.MetaLabel.Render("category") + " " + th.MetaValue.Render(in.Category),
	}
	if in.Search != "" {
		parts = append(parts, th.MetaLabel.Render("search")+" "+th.MetaValue.Render(fmt.Sprintf("%q", in.Search)))
	}
	if message != "" {
		parts = append(parts, message)
	}
	return strings.Join(parts, " • ")
}
