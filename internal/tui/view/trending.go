package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/glabrego/newsdeck/internal/news"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

const TrendingTitle = "Trending Topics"

// TrendingHeight is the number of lines the panel occupies; item i is drawn
// on line i+1.
func TrendingHeight(topics []news.TrendingTopic) int {
	return len(topics) + 1
}

func TrendingPanel(topics []news.TrendingTopic, cursor int, focused bool, width int, th tuitheme.Theme) string {
	title := th.Section.Render(TrendingTitle)
	if focused {
		title = th.ZoneActive.Render(TrendingTitle)
	}
	lines := []string{title}
	for i, topic := range topics {
		rank := th.Rank.Render(fmt.Sprintf("#%d", i+1))
		count := th.TopicCount.Render(humanize.Comma(int64(topic.Count)))
		left := rank + " " + topic.Name
		room := width - ansi.StringWidth(count) - 1
		left = ansi.Truncate(left, max(1, room), "…")
		gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(count))
		lines = append(lines, th.RenderActiveLine(focused && i == cursor, left+strings.Repeat(" ", gap)+count))
	}
	return strings.Join(lines, "\n")
}
