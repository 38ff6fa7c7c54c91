// Package state holds the reader's view state and the cursor arithmetic the
// model uses to scroll the grid.
package state

import "github.com/glabrego/newsdeck/internal/news"

// ViewState is the complete user-facing state. Transitions return a new
// value; the receiver is never modified.
type ViewState struct {
	Category string
	Search   string
	Selected *news.Article
}

func Initial() ViewState {
	return ViewState{Category: news.AllCategories}
}

// SelectCategory ignores names outside "All" and the fixed category set.
func (s ViewState) SelectCategory(category string) ViewState {
	if category != news.AllCategories && !news.IsCategory(category) {
		return s
	}
	s.Category = category
	return s
}

func (s ViewState) SetSearch(query string) ViewState {
	s.Search = query
	return s
}

func (s ViewState) OpenArticle(article news.Article) ViewState {
	selected := article
	s.Selected = &selected
	return s
}

func (s ViewState) CloseArticle() ViewState {
	s.Selected = nil
	return s
}

func (s ViewState) IsOpen() bool {
	return s.Selected != nil
}

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// CenteredWindow returns the [start, end) range of rows to draw so the cursor
// stays near the middle of a viewport of the given height.
func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

func ArticleIndexByID(articles []news.Article, id string) int {
	for i, article := range articles {
		if article.ID == id {
			return i
		}
	}
	return -1
}
