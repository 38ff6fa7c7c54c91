package article

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/glabrego/newsdeck/internal/news"
)

func plain(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestContentLines_FallsBackToExcerpt(t *testing.T) {
	a := news.Article{Excerpt: "Only the excerpt"}
	got := ContentLines(a, 80)
	if diff := cmp.Diff([]string{"Only the excerpt"}, got); diff != "" {
		t.Fatalf("excerpt fallback mismatch (-want +got):\n%s", diff)
	}
	if lines := ContentLines(news.Article{}, 80); lines != nil {
		t.Fatalf("expected no lines for empty article, got %q", lines)
	}
}

func TestContentLines_GeneratedBody(t *testing.T) {
	a := news.Article{
		Title:   "Global Summit",
		Content: "<p>Full content for: Global Summit</p><p>Lorem ipsum dolor sit amet.</p><p>Ut enim ad minim veniam.</p>",
	}
	got := plain(ContentLines(a, 80))
	want := "Full content for: Global Summit\n\nLorem ipsum dolor sit amet.\n\nUt enim ad minim veniam."
	if got != want {
		t.Fatalf("unexpected body:\n%q\nwant\n%q", got, want)
	}
}

func TestContentLines_RendersCommonArticleElements(t *testing.T) {
	a := news.Article{
		Content: `<article>
			<h1>Main Title</h1>
			<h2>Subtitle</h2>
			<p>Intro with a <a href="https://example.com/link">reference</a>.</p>
			<ul><li>First point</li><li>Second point</li></ul>
			<ol><li>Step one</li><li>Step two</li></ol>
			<blockquote><p>Quoted claim</p></blockquote>
			<table>
				<tr><th>Metric</th><th>Value</th></tr>
				<tr><td>Speed</td><td>Fast</td></tr>
			</table>
			<pre>go test ./...</pre>
		</article>`,
	}

	got := plain(ContentLines(a, 80))
	for _, want := range []string{
		"▌ Main Title",
		"▌ Subtitle",
		"reference (https://example.com/link).",
		"• First point",
		"1. Step one",
		"2. Step two",
		"│ Quoted claim",
		"Metric",
		"Speed",
		"    go test ./...",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in rendered output, got %q", want, got)
		}
	}
}

func TestContentLines_ImageLabelsKeepOrder(t *testing.T) {
	a := news.Article{
		Content: `<p>First paragraph.</p><p><img src="https://example.com/one.jpg" alt="Figure one"></p><p>Second paragraph.</p>`,
	}
	got := plain(ContentLines(a, 80))

	first := strings.Index(got, "First paragraph.")
	image := strings.Index(got, "Image Figure one")
	second := strings.Index(got, "Second paragraph.")
	if first == -1 || image == -1 || second == -1 || !(first < image && image < second) {
		t.Fatalf("expected image label between paragraphs, got %q", got)
	}

	hidden := plain(ContentLinesWithOptions(a, 80, Options{ImageMode: ImageModeNone}))
	if strings.Contains(hidden, "Image") {
		t.Fatalf("expected image labels hidden, got %q", hidden)
	}
}

func TestContentLines_StripsFeedBoilerplate(t *testing.T) {
	a := news.Article{
		Content: `<p>Main article body.</p>
			<p>Continue reading on the site</p>
			<p>Second paragraph.</p>
			<p>The post Main Article appeared first on Example News.</p>
			<p>Related links.</p>`,
	}
	got := plain(ContentLines(a, 80))
	if !strings.Contains(got, "Main article body.") || !strings.Contains(got, "Second paragraph.") {
		t.Fatalf("expected body preserved, got %q", got)
	}
	for _, gone := range []string{"Continue reading", "appeared first on", "Related links."} {
		if strings.Contains(got, gone) {
			t.Fatalf("expected %q removed, got %q", gone, got)
		}
	}

	kept := plain(ContentLinesWithOptions(a, 80, Options{}))
	if !strings.Contains(kept, "Related links.") {
		t.Fatalf("expected boilerplate kept when stripping is off, got %q", kept)
	}
}

func TestContentLines_WrapsToWidth(t *testing.T) {
	a := news.Article{Content: "<p>" + strings.Repeat("word ", 40) + "</p>"}
	for _, line := range ContentLines(a, 20) {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("line exceeds width 20 (%d): %q", w, line)
		}
	}
}

func TestPlainText_HasNoEscapes(t *testing.T) {
	a := news.Article{Content: `<h2>Head</h2><p>See <a href="https://example.com">https://example.com</a> and <strong>this</strong>.</p>`}
	got := PlainText(a, 80)
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no ANSI escapes, got %q", got)
	}
	if !strings.Contains(got, "See https://example.com and this.") {
		t.Fatalf("unexpected plain text: %q", got)
	}
}

func TestImageURLs(t *testing.T) {
	a := news.Article{
		ImageURL: "https://picsum.photos/400/300?random=2",
		Content:  `<p><img src="https://example.com/a.jpg"><img src="https://example.com/a.jpg"><img src='http://example.com/b.png'><img src="data:image/png;base64,abc"><img src="https://picsum.photos/400/300?random=2"></p>`,
	}
	want := []string{
		"https://picsum.photos/400/300?random=2",
		"https://example.com/a.jpg",
		"http://example.com/b.png",
	}
	if diff := cmp.Diff(want, ImageURLs(a)); diff != "" {
		t.Fatalf("image URLs mismatch (-want +got):\n%s", diff)
	}
	if got := ImageURLs(news.Article{}); len(got) != 0 {
		t.Fatalf("expected no URLs, got %v", got)
	}
}

func TestWrapAndClamp(t *testing.T) {
	lines := Wrap("one two three four five six", 9)
	if diff := cmp.Diff([]string{"one two", "three", "four five", "six"}, lines); diff != "" {
		t.Fatalf("wrap mismatch (-want +got):\n%s", diff)
	}

	clamped := Clamp(lines, 3, 9)
	if len(clamped) != 3 || !strings.HasSuffix(clamped[2], "…") {
		t.Fatalf("expected 3 lines ending in ellipsis, got %q", clamped)
	}
	if ansi.StringWidth(clamped[2]) > 9 {
		t.Fatalf("clamped line too wide: %q", clamped[2])
	}
	if got := Clamp(lines[:2], 3, 9); len(got) != 2 {
		t.Fatalf("short input should be returned as is, got %q", got)
	}
}
