// Package corpus builds the article corpus the reader starts with: a generated
// mock set described by an embedded catalog, optionally extended by local feed files.
package corpus

import (
	_ "embed"
	"errors"
	"fmt"
	"html"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glabrego/newsdeck/internal/news"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type CategorySpec struct {
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
	Titles []string `yaml:"titles"`
}

type TrendingSpec struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Catalog describes the generated corpus.
type Catalog struct {
	Categories []CategorySpec `yaml:"categories"`
	Trending   []TrendingSpec `yaml:"trending"`
	Excerpt    string         `yaml:"excerpt"`
	Image      string         `yaml:"image"`
	MaxAge     time.Duration  `yaml:"max_age"`
	Paragraphs []string       `yaml:"paragraphs"`
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return errors.New("catalog has no categories")
	}
	for _, cat := range c.Categories {
		if !news.IsCategory(cat.Name) {
			return fmt.Errorf("catalog category %q is not a known category", cat.Name)
		}
		if len(cat.Topics) == 0 {
			return fmt.Errorf("catalog category %q has no topics", cat.Name)
		}
	}
	for _, t := range c.Trending {
		if t.Count < 0 {
			return fmt.Errorf("trending topic %q has negative count", t.Name)
		}
	}
	if !strings.Contains(c.Excerpt, "%s") {
		return errors.New("catalog excerpt must contain %s")
	}
	if !strings.Contains(c.Image, "%d") {
		return errors.New("catalog image must contain %d")
	}
	if c.MaxAge < 0 {
		return errors.New("catalog max_age must not be negative")
	}
	return nil
}

// Generate builds one article per catalog title. Timestamps are spread
// uniformly over the MaxAge window before now; the first article is featured.
func (c Catalog) Generate(now time.Time, rng *rand.Rand) []news.Article {
	total := 0
	for _, cat := range c.Categories {
		total += len(cat.Titles)
	}
	articles := make([]news.Article, 0, total)

	id := 1
	for _, cat := range c.Categories {
		for i, title := range cat.Titles {
			age := time.Duration(rng.Float64() * float64(c.MaxAge))
			articles = append(articles, news.Article{
				ID:        strconv.Itoa(id),
				Title:     title,
				Excerpt:   fmt.Sprintf(c.Excerpt, strings.ToLower(title)),
				Content:   c.content(title),
				Category:  cat.Name,
				Topic:     cat.Topics[i%len(cat.Topics)],
				ImageURL:  fmt.Sprintf(c.Image, id+1),
				Timestamp: now.Add(-age),
				Featured:  id == 1,
			})
			id++
		}
	}
	return articles
}

func (c Catalog) TrendingTopics() []news.TrendingTopic {
	out := make([]news.TrendingTopic, 0, len(c.Trending))
	for _, t := range c.Trending {
		out = append(out, news.TrendingTopic{Name: t.Name, Count: t.Count})
	}
	return out
}

func (c Catalog) content(title string) string {
	var b strings.Builder
	b.WriteString("<p>Full content for: ")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</p>")
	for _, p := range c.Paragraphs {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(strings.TrimSpace(p)))
		b.WriteString("</p>")
	}
	return b.String()
}

// NewRand returns the generator used for timestamps. A zero seed derives one from the clock.
func NewRand(seed int64, now time.Time) *rand.Rand {
	if seed == 0 {
		seed = now.UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}
