package article

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	nethtml "golang.org/x/net/html"
)

// renderNodes lays out sibling nodes. Runs of inline content become one
// wrapped paragraph; block elements are separated by a blank line.
func (r renderer) renderNodes(nodes []*nethtml.Node, depth int) []string {
	var lines []string
	var inline []string
	appendBlock := func(block []string) {
		if len(block) == 0 {
			return
		}
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	flush := func() {
		text := collapseSpace(strings.Join(inline, " "))
		inline = inline[:0]
		if text != "" {
			appendBlock(Wrap(text, r.width))
		}
	}

	for _, node := range nodes {
		switch {
		case node.Type == nethtml.TextNode:
			inline = append(inline, node.Data)
		case node.Type == nethtml.ElementNode && isBlock(node.Data):
			flush()
			appendBlock(r.renderBlock(node, depth))
		case node.Type == nethtml.ElementNode:
			inline = append(inline, r.inline(node))
		}
	}
	flush()
	return trimBlankLines(lines)
}

func (r renderer) renderBlock(node *nethtml.Node, depth int) []string {
	tag := strings.ToLower(node.Data)
	switch tag {
	case "script", "style", "noscript", "iframe":
		return nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		prefix := headingPrefix(level)
		text := collapseSpace(r.inlineChildren(node))
		return styleLines(prefixWrap(text, r.width, prefix, strings.Repeat(" ", ansi.StringWidth(prefix))), headingStyle)
	case "blockquote":
		inner := r.renderNodes(significantChildren(node), depth)
		out := make([]string, 0, len(inner))
		for _, line := range inner {
			if line == "" {
				out = append(out, "")
				continue
			}
			out = append(out, quoteBar+quoteStyle.Render(line))
		}
		return out
	case "ul", "ol":
		return r.renderList(node, tag == "ol", depth+1)
	case "li":
		return r.renderListItem(node, depth, "- ")
	case "table":
		return r.renderTable(node)
	case "figcaption", "caption", "cite":
		text := collapseSpace(r.inlineChildren(node))
		return styleLines(prefixWrap(text, r.width, "— ", "  "), captionStyle)
	case "img":
		if r.opts.ImageMode == ImageModeNone {
			return nil
		}
		return imageLabel(node, r.width)
	case "pre":
		var out []string
		for _, line := range strings.Split(strings.ReplaceAll(rawText(node), "\r\n", "\n"), "\n") {
			line = strings.TrimRight(line, " \t")
			if line == "" {
				out = append(out, "")
				continue
			}
			out = append(out, codeStyle.Render("    "+line))
		}
		return trimBlankLines(out)
	case "hr":
		return []string{ruleStyle.Render(strings.Repeat("─", min(max(r.width, 3), 24)))}
	}

	// Containers and paragraphs: recurse when they hold blocks, otherwise wrap
	// their inline text.
	if hasBlockChild(node) {
		return r.renderNodes(significantChildren(node), depth)
	}
	if text := collapseSpace(r.inlineChildren(node)); text != "" {
		return Wrap(text, r.width)
	}
	return nil
}

func (r renderer) renderList(node *nethtml.Node, ordered bool, depth int) []string {
	var lines []string
	n := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode || !strings.EqualFold(child.Data, "li") {
			continue
		}
		n++
		marker := bullet(depth)
		if ordered {
			marker = fmt.Sprintf("%d. ", n)
		}
		lines = append(lines, r.renderListItem(child, depth, marker)...)
	}
	return lines
}

func (r renderer) renderListItem(node *nethtml.Node, depth int, marker string) []string {
	indent := strings.Repeat("  ", max(0, depth-1))
	var parts []string
	var nested []string
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode {
			switch strings.ToLower(child.Data) {
			case "ul":
				nested = append(nested, r.renderList(child, false, depth+1)...)
				continue
			case "ol":
				nested = append(nested, r.renderList(child, true, depth+1)...)
				continue
			}
		}
		parts = append(parts, r.inline(child))
	}
	lines := prefixWrap(collapseSpace(strings.Join(parts, " ")), r.width, indent+marker, indent+strings.Repeat(" ", ansi.StringWidth(marker)))
	return append(lines, nested...)
}

func prefixWrap(text string, width int, first, rest string) []string {
	if text == "" {
		return nil
	}
	avail := max(1, width-max(ansi.StringWidth(first), ansi.StringWidth(rest)))
	wrapped := Wrap(text, avail)
	out := make([]string, 0, len(wrapped))
	for i, line := range wrapped {
		if i == 0 {
			out = append(out, first+line)
			continue
		}
		out = append(out, rest+line)
	}
	return out
}

func headingPrefix(level int) string {
	level = min(max(level, 1), len(headingBars))
	return headingBars[level-1].Render("▌") + strings.Repeat(" ", max(1, level-1))
}

func bullet(depth int) string {
	switch depth {
	case 1:
		return "• "
	case 2:
		return "◦ "
	default:
		return "▪ "
	}
}

func styleLines(lines []string, style lipgloss.Style) []string {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = style.Render(line)
		}
	}
	return lines
}

func isBlock(tag string) bool {
	switch strings.ToLower(tag) {
	case "h1", "h2", "h3", "h4", "h5", "h6",
		"p", "div", "section", "article", "main", "header", "footer", "aside", "nav",
		"blockquote", "ul", "ol", "li", "table", "img", "pre", "figure", "figcaption",
		"caption", "cite", "hr", "dl", "dt", "dd", "script", "style", "noscript", "iframe":
		return true
	default:
		return false
	}
}

func hasBlockChild(node *nethtml.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && isBlock(child.Data) {
			return true
		}
	}
	return false
}
