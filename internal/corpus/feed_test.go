package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Local Wire</title>
  <link>https://example.com</link>
  <description>Sample</description>
  <item>
    <title>Markets Rally on Rate News</title>
    <link>https://example.com/markets</link>
    <description>&lt;p&gt;Shares &lt;b&gt;rose&lt;/b&gt; sharply.&lt;/p&gt;</description>
    <category>Economy</category>
    <category>business</category>
    <pubDate>Tue, 10 Feb 2026 09:00:00 GMT</pubDate>
    <enclosure url="https://example.com/chart.png" length="10" type="image/png"/>
  </item>
  <item>
    <title>Untagged Story</title>
    <link>https://example.com/untagged</link>
    <description>Plain text.</description>
  </item>
  <item>
    <title></title>
    <description>Dropped because it has no title.</description>
  </item>
</channel>
</rss>`

func TestLoadFeedFiles_ImportsItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wire.xml")
	if err := os.WriteFile(path, []byte(sampleRSS), 0o644); err != nil {
		t.Fatalf("write feed: %v", err)
	}
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)

	got, err := LoadFeedFiles(context.Background(), []string{path}, now)
	if err != nil {
		t.Fatalf("LoadFeedFiles returned error: %v", err)
	}
	if len(got.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", got.Failures)
	}
	if len(got.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %+v", got.Articles)
	}

	markets := got.Articles[0]
	if markets.ID != "feed-1-1" || markets.Category != "Business" || markets.Topic != "Economy" {
		t.Fatalf("unexpected classification: %+v", markets)
	}
	if markets.Excerpt != "Shares rose sharply." {
		t.Fatalf("unexpected excerpt: %q", markets.Excerpt)
	}
	if markets.ImageURL != "https://example.com/chart.png" {
		t.Fatalf("unexpected image: %q", markets.ImageURL)
	}
	if !markets.Timestamp.Equal(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp: %s", markets.Timestamp)
	}
	if markets.Featured {
		t.Fatal("feed articles must not be featured")
	}

	untagged := got.Articles[1]
	if untagged.Category != "World" || untagged.Topic != "Local Wire" || !untagged.Timestamp.Equal(now) {
		t.Fatalf("unexpected fallback classification: %+v", untagged)
	}
}

func TestLoadFeedFiles_ReportsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.xml")
	if err := os.WriteFile(bad, []byte("not a feed"), 0o644); err != nil {
		t.Fatalf("write feed: %v", err)
	}
	missing := filepath.Join(dir, "missing.xml")

	got, err := LoadFeedFiles(context.Background(), []string{bad, missing}, time.Now())
	if err != nil {
		t.Fatalf("LoadFeedFiles returned error: %v", err)
	}
	if len(got.Failures) != 2 || len(got.Articles) != 0 {
		t.Fatalf("expected two failures and no articles, got %+v", got)
	}
}

func TestLoadFeedFiles_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadFeedFiles(ctx, []string{"ignored.xml"}, time.Now()); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestClassifyItem(t *testing.T) {
	category, topic := classifyItem([]string{"", "SPORTS"}, "Feed")
	if category != "Sports" || topic != "Feed" {
		t.Fatalf("unexpected classification: %s/%s", category, topic)
	}
}
