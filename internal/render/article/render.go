// Package article turns an article's HTML body into wrapped, styled terminal
// lines.
package article

import (
	"html"
	"net/url"
	"strings"

	"github.com/charmbracelet/x/ansi"
	nethtml "golang.org/x/net/html"

	"github.com/glabrego/newsdeck/internal/news"
)

type ImageMode int

const (
	ImageModeLabel ImageMode = iota
	ImageModeNone
)

type Options struct {
	Styled           bool
	StripBoilerplate bool
	ImageMode        ImageMode
}

var DefaultOptions = Options{
	Styled:           true,
	StripBoilerplate: true,
	ImageMode:        ImageModeLabel,
}

// PlainOptions renders without colour or link styling, for piping.
var PlainOptions = Options{
	StripBoilerplate: true,
	ImageMode:        ImageModeLabel,
}

type renderer struct {
	width int
	opts  Options
}

func ContentLines(a news.Article, width int) []string {
	return ContentLinesWithOptions(a, width, DefaultOptions)
}

// ContentLinesWithOptions renders the article body. Articles without a body,
// or whose body renders to nothing, fall back to the wrapped excerpt.
func ContentLinesWithOptions(a news.Article, width int, opts Options) []string {
	if lines := renderFragment(a.Content, width, opts); len(lines) > 0 {
		return lines
	}
	excerpt := strings.TrimSpace(a.Excerpt)
	if excerpt == "" {
		return nil
	}
	return Wrap(excerpt, width)
}

// PlainText is the article body as unstyled text.
func PlainText(a news.Article, width int) string {
	return ansi.Strip(strings.Join(ContentLinesWithOptions(a, width, PlainOptions), "\n"))
}

// ImageURLs lists the article's lead image followed by any http(s) images in
// its body, without duplicates.
func ImageURLs(a news.Article) []string {
	out := make([]string, 0, 2)
	seen := make(map[string]struct{}, 2)
	add := func(raw string) {
		raw = strings.TrimSpace(html.UnescapeString(raw))
		if raw == "" {
			return
		}
		parsed, err := url.Parse(raw)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return
		}
		if _, ok := seen[raw]; ok {
			return
		}
		seen[raw] = struct{}{}
		out = append(out, raw)
	}

	add(a.ImageURL)
	if strings.TrimSpace(a.Content) != "" {
		if body := parseFragment(a.Content); body != nil {
			walk(body, func(n *nethtml.Node) {
				if n.Type == nethtml.ElementNode && strings.EqualFold(n.Data, "img") {
					add(nodeAttr(n, "src"))
				}
			})
		}
	}
	return out
}

// Wrap word-wraps text to width, breaking words that do not fit on a line of
// their own. Embedded newlines are kept.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	out := make([]string, 0, 4)
	for _, p := range strings.Split(text, "\n") {
		p = strings.Join(strings.Fields(p), " ")
		if p == "" {
			out = append(out, "")
			continue
		}
		for _, line := range strings.Split(ansi.Wrap(p, width, ""), "\n") {
			out = append(out, strings.TrimRight(line, " "))
		}
	}
	return out
}

// Clamp keeps at most n lines, marking the cut with an ellipsis.
func Clamp(lines []string, n, width int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	last := out[n-1]
	if ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, max(0, width-1), "")
	}
	out[n-1] = last + "…"
	return out
}

func renderFragment(raw string, width int, opts Options) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	body := parseFragment(raw)
	if body == nil {
		return Wrap(html.UnescapeString(raw), width)
	}
	r := renderer{width: max(1, width), opts: opts}
	lines := trimBlankLines(r.renderNodes(significantChildren(body), 0))
	if opts.StripBoilerplate {
		lines = stripBoilerplate(lines)
	}
	if opts.Styled {
		lines = styleLinks(lines)
	}
	return lines
}

func parseFragment(raw string) *nethtml.Node {
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return nil
	}
	var body *nethtml.Node
	walk(doc, func(n *nethtml.Node) {
		if body == nil && n.Type == nethtml.ElementNode && strings.EqualFold(n.Data, "body") {
			body = n
		}
	})
	return body
}

func walk(node *nethtml.Node, visit func(*nethtml.Node)) {
	if node == nil {
		return
	}
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

// trimBlankLines drops leading and trailing blank lines and collapses runs of
// blank lines into one.
func trimBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		blank := strings.TrimSpace(ansi.Strip(line)) == ""
		if blank && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		if blank {
			line = ""
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func significantChildren(node *nethtml.Node) []*nethtml.Node {
	children := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func nodeAttr(node *nethtml.Node, name string) string {
	for _, attr := range node.Attr {
		if strings.EqualFold(attr.Key, name) {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

func rawText(node *nethtml.Node) string {
	var b strings.Builder
	walk(node, func(n *nethtml.Node) {
		if n.Type == nethtml.TextNode {
			b.WriteString(n.Data)
		}
	})
	return b.String()
}
