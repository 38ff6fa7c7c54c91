package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Brand      lipgloss.Style
	NavBar     lipgloss.Style
	NavTab     lipgloss.Style
	NavActive  lipgloss.Style
	NavFocus   lipgloss.Style
	NavCount   lipgloss.Style
	Section    lipgloss.Style
	Badge      lipgloss.Style
	CardTitle  lipgloss.Style
	CardBody   lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Featured   lipgloss.Style
	Rank       lipgloss.Style
	TopicCount lipgloss.Style
	ActiveLine lipgloss.Style
	Modal      lipgloss.Style
	Button     lipgloss.Style
	ButtonOn   lipgloss.Style
	Empty      lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style
	Zone       lipgloss.Style
	ZoneActive lipgloss.Style
	Search     lipgloss.Style
	SearchOn   lipgloss.Style
}

func Default() Theme {
	navy := lipgloss.Color("#2c3e50")
	turquoise := lipgloss.Color("#40E0D0")
	teal := lipgloss.Color("#4ecdc4")
	orange := lipgloss.Color("#fb923c")
	slate := lipgloss.Color("#cbd5e1")
	paper := lipgloss.Color("#f5f7fa")
	ink := lipgloss.Color("#1f2937")
	gray500 := lipgloss.Color("#6b7280")
	gray700 := lipgloss.Color("#374151")
	red := lipgloss.Color("#f38ba8")
	green := lipgloss.Color("#a6e3a1")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(slate).
		Padding(0, 1)

	return Theme{
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(turquoise),
		NavBar:     lipgloss.NewStyle().Background(navy).Foreground(paper),
		NavTab:     lipgloss.NewStyle().Foreground(slate).Padding(0, 1),
		NavActive:  lipgloss.NewStyle().Bold(true).Foreground(turquoise).Underline(true).Padding(0, 1),
		NavFocus:   lipgloss.NewStyle().Bold(true).Foreground(ink).Background(turquoise).Padding(0, 1),
		NavCount:   lipgloss.NewStyle().Foreground(gray500),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(navy),
		Badge:      lipgloss.NewStyle().Bold(true).Foreground(ink).Background(turquoise).Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true).Foreground(ink),
		CardBody:   lipgloss.NewStyle().Foreground(gray700),
		MetaLabel:  lipgloss.NewStyle().Foreground(gray500),
		MetaValue:  lipgloss.NewStyle().Foreground(teal),
		Card:       card,
		CardActive: card.BorderForeground(turquoise).BorderStyle(lipgloss.ThickBorder()),
		Featured:   lipgloss.NewStyle().Bold(true).Foreground(orange),
		Rank:       lipgloss.NewStyle().Bold(true).Foreground(turquoise),
		TopicCount: lipgloss.NewStyle().Foreground(gray500),
		ActiveLine: lipgloss.NewStyle().Background(navy).Foreground(paper),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(turquoise).
			Padding(0, 1),
		Button:     lipgloss.NewStyle().Foreground(gray700).Background(paper).Padding(0, 1),
		ButtonOn:   lipgloss.NewStyle().Bold(true).Foreground(ink).Background(turquoise).Padding(0, 1),
		Empty:      lipgloss.NewStyle().Italic(true).Foreground(gray500).Padding(1, 2),
		StateIdle:  lipgloss.NewStyle().Foreground(green),
		StateWarn:  lipgloss.NewStyle().Foreground(red),
		StateLoad:  lipgloss.NewStyle().Foreground(orange),
		Zone:       lipgloss.NewStyle().Foreground(gray500),
		ZoneActive: lipgloss.NewStyle().Bold(true).Foreground(turquoise),
		Search:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(slate),
		SearchOn:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(turquoise),
	}
}

// CardStyle picks the border for a card by cursor state.
func (t Theme) CardStyle(active bool) lipgloss.Style {
	if active {
		return t.CardActive
	}
	return t.Card
}

func (t Theme) SearchStyle(focused bool) lipgloss.Style {
	if focused {
		return t.SearchOn
	}
	return t.Search
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}

func (t Theme) RenderButton(focused bool, label string) string {
	if focused {
		return t.ButtonOn.Render(label)
	}
	return t.Button.Render(label)
}
