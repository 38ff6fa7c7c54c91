package article

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

var punctuationSpacing = strings.NewReplacer(
	" .", ".",
	" ,", ",",
	" ;", ";",
	" :", ":",
	" !", "!",
	" ?", "?",
	" )", ")",
	"( ", "(",
)

func (r renderer) inlineChildren(node *nethtml.Node) string {
	parts := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		parts = append(parts, r.inline(child))
	}
	return strings.Join(parts, " ")
}

func (r renderer) inline(node *nethtml.Node) string {
	switch node.Type {
	case nethtml.TextNode:
		return node.Data
	case nethtml.ElementNode:
	default:
		return ""
	}

	switch strings.ToLower(node.Data) {
	case "script", "style", "noscript", "img":
		return ""
	case "br":
		return "\n"
	case "a":
		text := collapseSpace(r.inlineChildren(node))
		href := nodeAttr(node, "href")
		switch {
		case href == "":
			return text
		case text == "" || strings.EqualFold(text, href):
			return href
		default:
			return text + " (" + href + ")"
		}
	case "q":
		if text := collapseSpace(r.inlineChildren(node)); text != "" {
			return `"` + text + `"`
		}
		return ""
	case "code", "kbd", "samp":
		if text := collapseSpace(r.inlineChildren(node)); text != "" {
			return r.style(codeStyle.Render, "`"+text+"`")
		}
		return ""
	case "strong", "b":
		return r.style(strongStyle.Render, collapseSpace(r.inlineChildren(node)))
	case "em", "i":
		return r.style(emphasisStyle.Render, collapseSpace(r.inlineChildren(node)))
	default:
		return r.inlineChildren(node)
	}
}

func (r renderer) style(render func(...string) string, text string) string {
	if text == "" || !r.opts.Styled {
		return text
	}
	return render(text)
}

// collapseSpace unescapes entities and squeezes whitespace, keeping explicit
// line breaks.
func collapseSpace(s string) string {
	s = html.UnescapeString(s)
	parts := strings.Split(s, "\n")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.Join(strings.Fields(part), " "); part != "" {
			out = append(out, part)
		}
	}
	return punctuationSpacing.Replace(strings.Join(out, "\n"))
}
