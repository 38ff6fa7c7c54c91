package article

import (
	"testing"

	"github.com/glabrego/newsdeck/internal/news"
)

func FuzzContentLinesWithOptions(f *testing.F) {
	seeds := []string{
		"",
		"<p>Hello world</p>",
		"<article><h1>Title</h1><p>Paragraph</p></article>",
		"<div><img src='https://example.com/image.jpg' alt='Image'></div>",
		"<table><tr><th>a</th><th>b</th></tr><tr><td>1</td><td>2</td></tr></table>",
		"<blockquote><p>Quote</p><cite>Author</cite></blockquote>",
		"<<<<<<<<",
		"\x00\x01\x02<script>alert(1)</script>",
	}
	for _, s := range seeds {
		f.Add(s, "fallback excerpt")
	}

	f.Fuzz(func(t *testing.T, raw, excerpt string) {
		if len(raw) > 10_000 {
			raw = raw[:10_000]
		}
		a := news.Article{Content: raw, Excerpt: excerpt}
		for _, width := range []int{1, 20, 72} {
			_ = ContentLinesWithOptions(a, width, DefaultOptions)
			_ = ContentLinesWithOptions(a, width, Options{ImageMode: ImageModeNone})
			_ = PlainText(a, width)
			_ = ImageURLs(a)
		}
	})
}
