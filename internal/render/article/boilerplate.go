package article

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var reHTTPURL = regexp.MustCompile(`https?://[^\s)]+`)

// Syndicated feed bodies often end with a publisher footer or carry
// read-more teasers. Matching is on lowercased paragraph text.
var (
	footerMarkers = []string{
		"appeared first on",
		"originally published at",
		"this story originally appeared on",
	}
	teaserMarkers = []string{
		"continue reading",
		"read more:",
		"read the full story",
		"sign up for our newsletter",
	}
)

// stripBoilerplate drops teaser paragraphs and everything from a publisher
// footer onwards.
func stripBoilerplate(lines []string) []string {
	var kept [][]string
	for _, para := range paragraphs(lines) {
		text := strings.ToLower(strings.Join(strings.Fields(ansi.Strip(strings.Join(para, " "))), " "))
		if containsAny(text, footerMarkers) {
			break
		}
		if containsAny(text, teaserMarkers) {
			continue
		}
		kept = append(kept, para)
	}

	var out []string
	for i, para := range kept {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, para...)
	}
	return out
}

func paragraphs(lines []string) [][]string {
	var out [][]string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(ansi.Strip(line)) == "" {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func styleLinks(lines []string) []string {
	for i, line := range lines {
		lines[i] = reHTTPURL.ReplaceAllStringFunc(line, func(m string) string {
			return linkStyle.Render(m)
		})
	}
	return lines
}
