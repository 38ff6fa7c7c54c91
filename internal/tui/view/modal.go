package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	article "github.com/glabrego/newsdeck/internal/render/article"
	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/tui/focus"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

// Modal controls in tab order.
const (
	ControlClose = "close"
	ControlOpen  = "open"
	ControlCopy  = "copy"
)

var controlLabels = map[string]string{
	ControlClose: "Close",
	ControlOpen:  "Open image",
	ControlCopy:  "Copy image link",
}

const (
	modalMaxWidth = 84
	// title, meta, image, blank above the body; blank and buttons below.
	modalChrome = 6
)

// Modal is the article detail dialog. It is a focus.Scope over its buttons.
type Modal struct {
	Article  news.Article
	ImageURL string
}

var _ focus.Scope = Modal{}

func NewModal(a news.Article) Modal {
	m := Modal{Article: a}
	if urls := article.ImageURLs(a); len(urls) > 0 {
		m.ImageURL = urls[0]
	}
	return m
}

func (m Modal) Focusable() []string {
	if m.ImageURL == "" {
		return []string{ControlClose}
	}
	return []string{ControlClose, ControlOpen, ControlCopy}
}

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ModalBounds is the screen rectangle of the dialog, centred the same way
// lipgloss.Place centres it.
func ModalBounds(width, height int) Rect {
	w := min(width-4, modalMaxWidth)
	if w < 24 {
		w = width
	}
	h := height - 2
	if h < modalChrome+4 {
		h = height
	}
	return Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

// ModalBodySize is the viewport size for the article body inside bounds.
func ModalBodySize(bounds Rect) (int, int) {
	return max(1, bounds.W-4), max(1, bounds.H-2-modalChrome)
}

// ButtonAt maps a screen position to the modal control drawn there.
func ButtonAt(bounds Rect, m Modal, x, y int) (string, bool) {
	if y != bounds.Y+bounds.H-2 {
		return "", false
	}
	start := bounds.X + 2
	for _, control := range m.Focusable() {
		width := ansi.StringWidth(controlLabels[control]) + 2
		if x >= start && x < start+width {
			return control, true
		}
		start += width + 1
	}
	return "", false
}

type ModalInput struct {
	Modal  Modal
	Trap   focus.Trap
	Body   string
	Bounds Rect
	Now    time.Time
}

func ModalView(in ModalInput, th tuitheme.Theme) string {
	inner, _ := ModalBodySize(in.Bounds)
	a := in.Modal.Article

	image := "Image: none"
	if in.Modal.ImageURL != "" {
		image = "Image: " + in.Modal.ImageURL
	}
	meta := th.MetaValue.Render(a.Category) + th.MetaLabel.Render(" · "+a.Topic+" · "+DateLabel(in.Now, a.Timestamp))
	if a.Featured {
		meta += " " + th.Featured.Render(featuredLabel)
	}

	buttons := make([]string, 0, 3)
	for _, control := range in.Modal.Focusable() {
		buttons = append(buttons, th.RenderButton(in.Trap.Is(control), controlLabels[control]))
	}

	lines := []string{
		th.CardTitle.Render(ansi.Truncate(a.Title, inner, "…")),
		ansi.Truncate(meta, inner, "…"),
		th.MetaLabel.Render(ansi.Truncate(image, inner, "…")),
		"",
		in.Body,
		"",
		strings.Join(buttons, " "),
	}
	return th.Modal.
		Width(in.Bounds.W - 2).
		Height(in.Bounds.H - 2).
		MaxHeight(in.Bounds.H).
		Render(strings.Join(lines, "\n"))
}
