package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	nethtml "golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/glabrego/newsdeck/internal/news"
)

// FeedFailure records a feed file that could not be imported.
type FeedFailure struct {
	Path string
	Err  error
}

func (f FeedFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// FeedImport is the result of reading a set of local RSS/Atom files.
type FeedImport struct {
	Articles []news.Article
	Failures []FeedFailure
}

const maxExcerptRunes = 240

// LoadFeedFiles parses local feed files concurrently. Unreadable files are
// reported in Failures; the returned error is only set when ctx ends first.
// Articles keep the order of paths, then of items within each file.
func LoadFeedFiles(ctx context.Context, paths []string, now time.Time) (FeedImport, error) {
	perFile := make([][]news.Article, len(paths))
	var (
		mu       sync.Mutex
		failures []FeedFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			articles, err := loadFeedFile(path, i, now)
			if err != nil {
				mu.Lock()
				failures = append(failures, FeedFailure{Path: path, Err: err})
				mu.Unlock()
				return nil
			}
			perFile[i] = articles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FeedImport{}, fmt.Errorf("load feed files: %w", err)
	}

	out := FeedImport{Failures: failures}
	for _, articles := range perFile {
		out.Articles = append(out.Articles, articles...)
	}
	return out, nil
}

func loadFeedFile(path string, fileIndex int, now time.Time) ([]news.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed file: %w", err)
	}
	defer f.Close()

	feed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse feed file: %w", err)
	}
	return articlesFromFeed(feed, fileIndex, feedLabel(feed, path), now), nil
}

func articlesFromFeed(feed *gofeed.Feed, fileIndex int, label string, now time.Time) []news.Article {
	out := make([]news.Article, 0, len(feed.Items))
	for i, item := range feed.Items {
		if item == nil || strings.TrimSpace(item.Title) == "" {
			continue
		}
		category, topic := classifyItem(item.Categories, label)
		content := strings.TrimSpace(item.Content)
		if content == "" {
			content = strings.TrimSpace(item.Description)
		}
		out = append(out, news.Article{
			ID:        fmt.Sprintf("feed-%d-%d", fileIndex+1, i+1),
			Title:     strings.TrimSpace(item.Title),
			Excerpt:   truncateRunes(plainText(item.Description), maxExcerptRunes),
			Content:   content,
			Category:  category,
			Topic:     topic,
			ImageURL:  itemImage(item),
			Timestamp: itemTime(item, now),
		})
	}
	return out
}

func classifyItem(categories []string, fallbackTopic string) (category, topic string) {
	category = news.Categories[0]
	topic = fallbackTopic
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		for _, known := range news.Categories {
			if strings.EqualFold(known, c) {
				return known, topic
			}
		}
		if topic == fallbackTopic {
			topic = c
		}
	}
	return category, topic
}

func feedLabel(feed *gofeed.Feed, path string) string {
	if title := strings.TrimSpace(feed.Title); title != "" {
		return title
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func itemTime(item *gofeed.Item, now time.Time) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return now
}

func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func plainText(raw string) string {
	var b strings.Builder
	z := nethtml.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case nethtml.TextToken:
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
}

func truncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
