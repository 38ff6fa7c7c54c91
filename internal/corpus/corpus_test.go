package corpus

import (
	"strings"
	"testing"
	"time"

	"github.com/glabrego/newsdeck/internal/news"
)

func TestDefaultCatalog_Parses(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog returned error: %v", err)
	}
	if len(c.Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(c.Categories))
	}
	if c.MaxAge != 7*24*time.Hour {
		t.Fatalf("unexpected max age: %s", c.MaxAge)
	}
	topics := c.TrendingTopics()
	if len(topics) != 8 || topics[1].Name != "AI Revolution" || topics[1].Count != 98 {
		t.Fatalf("unexpected trending topics: %+v", topics)
	}
}

func TestGenerate_Shape(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog returned error: %v", err)
	}
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	articles := c.Generate(now, NewRand(42, now))
	if len(articles) != 16 {
		t.Fatalf("expected 16 articles, got %d", len(articles))
	}

	seen := make(map[string]bool, len(articles))
	featured := 0
	for _, a := range articles {
		if seen[a.ID] {
			t.Fatalf("duplicate id %s", a.ID)
		}
		seen[a.ID] = true
		if a.Featured {
			featured++
		}
		if !news.IsCategory(a.Category) {
			t.Fatalf("unexpected category %q", a.Category)
		}
		if a.Timestamp.After(now) || now.Sub(a.Timestamp) > c.MaxAge {
			t.Fatalf("timestamp %s outside window", a.Timestamp)
		}
	}
	if featured != 1 || !articles[0].Featured {
		t.Fatalf("expected only the first article to be featured, got %d featured", featured)
	}

	first := articles[0]
	if first.ID != "1" || first.ImageURL != "https://picsum.photos/400/300?random=2" {
		t.Fatalf("unexpected first article: %+v", first)
	}
	if !strings.Contains(first.Excerpt, "about global climate summit reaches historic agreement.") {
		t.Fatalf("unexpected excerpt: %q", first.Excerpt)
	}
	if !strings.HasPrefix(first.Content, "<p>Full content for: Global Climate Summit") {
		t.Fatalf("unexpected content: %q", first.Content)
	}

	ai := articles[4]
	if ai.Title != "AI Breakthrough Promises Revolutionary Healthcare Applications" || ai.Category != "Technology" || ai.Topic != "AI" {
		t.Fatalf("unexpected technology article: %+v", ai)
	}
	if articles[7].Topic != "Innovation" {
		t.Fatalf("expected topics to cycle per title index, got %q", articles[7].Topic)
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog returned error: %v", err)
	}
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	a := c.Generate(now, NewRand(7, now))
	b := c.Generate(now, NewRand(7, now))
	for i := range a {
		if !a[i].Timestamp.Equal(b[i].Timestamp) {
			t.Fatalf("expected same timestamps for same seed at %d", i)
		}
	}
}

func TestParseCatalog_RejectsUnknownCategory(t *testing.T) {
	raw := `
categories:
  - name: Weather
    topics: [Rain]
    titles: [Storm]
excerpt: "about %s"
image: "https://example.com/%d"
`
	if _, err := ParseCatalog([]byte(raw)); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestParseCatalog_RejectsMissingPlaceholders(t *testing.T) {
	raw := `
categories:
  - name: World
    topics: [Politics]
    titles: [Summit]
excerpt: "no placeholder"
image: "https://example.com/%d"
`
	if _, err := ParseCatalog([]byte(raw)); err == nil {
		t.Fatal("expected error for excerpt without placeholder")
	}
}

func TestParseCatalog_InvalidYAML(t *testing.T) {
	if _, err := ParseCatalog([]byte("categories: [")); err == nil {
		t.Fatal("expected yaml error")
	}
}
