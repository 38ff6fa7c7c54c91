// Package digest turns the article corpus into the ordered list shown in the grid.
package digest

import (
	"sort"
	"strings"

	"github.com/glabrego/newsdeck/internal/news"
)

// Filter returns the articles matching category and query, featured article first,
// the rest newest first. The input slice is left untouched.
func Filter(articles []news.Article, category, query string) []news.Article {
	needle := strings.ToLower(query)

	var featured *news.Article
	rest := make([]news.Article, 0, len(articles))
	for i := range articles {
		if !matches(articles[i], category, needle) {
			continue
		}
		if articles[i].Featured {
			// There is a single lead slot; later featured articles are not shown.
			if featured == nil {
				featured = &articles[i]
			}
			continue
		}
		rest = append(rest, articles[i])
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Timestamp.After(rest[j].Timestamp)
	})

	if featured == nil {
		return rest
	}
	out := make([]news.Article, 0, len(rest)+1)
	out = append(out, *featured)
	return append(out, rest...)
}

// Matches reports whether a single article passes the category and search filters.
func Matches(article news.Article, category, query string) bool {
	return matches(article, category, strings.ToLower(query))
}

func matches(article news.Article, category, needle string) bool {
	if category != news.AllCategories && article.Category != category {
		return false
	}
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(article.Title), needle) ||
		strings.Contains(strings.ToLower(article.Excerpt), needle) ||
		strings.Contains(strings.ToLower(article.Topic), needle)
}

// CountByCategory returns how many articles match query in each navigation category,
// keyed by category name including "All".
func CountByCategory(articles []news.Article, query string) map[string]int {
	needle := strings.ToLower(query)
	counts := make(map[string]int, len(news.Categories)+1)
	for _, c := range news.NavCategories() {
		counts[c] = 0
	}
	for _, a := range articles {
		if !matches(a, news.AllCategories, needle) {
			continue
		}
		counts[news.AllCategories]++
		counts[a.Category]++
	}
	return counts
}
