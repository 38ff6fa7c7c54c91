package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	article "github.com/glabrego/newsdeck/internal/render/article"
	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/tui/grid"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

const (
	// CardHeight is the outer height of every card, border included.
	CardHeight    = 9
	titleLines    = 2
	excerptLines  = 3
	EmptyMessage  = "No articles found. Try adjusting your search or switching categories."
	featuredLabel = "★ Featured"
)

// DateLabel renders a timestamp relative to now.
func DateLabel(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 48*time.Hour:
		return "Yesterday"
	default:
		return t.In(now.Location()).Format("Jan 2")
	}
}

type CardInput struct {
	Article news.Article
	Now     time.Time
	Width   int
	Active  bool
}

func Card(in CardInput, th tuitheme.Theme) string {
	inner := max(1, in.Width-4)
	a := in.Article

	badge := th.Badge.Render(a.Topic)
	if a.Featured {
		badge += " " + th.Featured.Render(featuredLabel)
	}
	lines := []string{ansi.Truncate(badge, inner, "…")}
	for _, line := range article.Clamp(article.Wrap(a.Title, inner), titleLines, inner) {
		lines = append(lines, th.CardTitle.Render(line))
	}
	for _, line := range article.Clamp(article.Wrap(a.Excerpt, inner), excerptLines, inner) {
		lines = append(lines, th.CardBody.Render(line))
	}
	for len(lines) < CardHeight-3 {
		lines = append(lines, "")
	}
	meta := th.MetaValue.Render(a.Category) + th.MetaLabel.Render(" · "+DateLabel(in.Now, a.Timestamp))
	lines = append(lines, ansi.Truncate(meta, inner, "…"))

	return th.CardStyle(in.Active).
		Width(max(1, in.Width-2)).
		Height(CardHeight - 2).
		MaxHeight(CardHeight).
		Render(strings.Join(lines, "\n"))
}

type GridInput struct {
	Articles []news.Article
	Rows     []grid.Row
	Start    int
	End      int
	Columns  int
	Width    int
	Cursor   int
	Focused  bool
	Now      time.Time
}

// Grid renders rows[Start:End] of the card layout.
func Grid(in GridInput, th tuitheme.Theme) string {
	if len(in.Articles) == 0 {
		return EmptyState(in.Width, th)
	}
	gap := strings.Repeat(" ", grid.Gap)
	rendered := make([]string, 0, in.End-in.Start)
	for _, row := range in.Rows[in.Start:in.End] {
		cards := make([]string, 0, len(row.Cells)*2)
		for i, cell := range row.Cells {
			if i > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, Card(CardInput{
				Article: in.Articles[cell.Index],
				Now:     in.Now,
				Width:   grid.CellWidth(in.Width, in.Columns, cell.Span),
				Active:  in.Focused && cell.Index == in.Cursor,
			}, th))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func EmptyState(width int, th tuitheme.Theme) string {
	return th.Empty.Width(max(1, width)).Render(EmptyMessage)
}
