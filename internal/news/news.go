package news

import "time"

// AllCategories is the pseudo-category that disables category filtering.
const AllCategories = "All"

// Categories is the fixed set of article categories, in navigation order.
var Categories = []string{"World", "Technology", "Business", "Sports"}

// Article is a single news item. Articles are never mutated after the corpus is built.
type Article struct {
	ID        string
	Title     string
	Excerpt   string
	Content   string
	Category  string
	Topic     string
	ImageURL  string
	Timestamp time.Time
	Featured  bool
}

// TrendingTopic is a label/count pair shown in the sidebar and used as a search shortcut.
type TrendingTopic struct {
	Name  string
	Count int
}

// IsCategory reports whether name is one of the fixed categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// NavCategories returns "All" followed by the fixed categories.
func NavCategories() []string {
	out := make([]string, 0, len(Categories)+1)
	out = append(out, AllCategories)
	return append(out, Categories...)
}
