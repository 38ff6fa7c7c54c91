package article

import "github.com/charmbracelet/lipgloss"

var (
	navy      = lipgloss.Color("#2c3e50")
	turquoise = lipgloss.Color("#40E0D0")
	teal      = lipgloss.Color("#4ecdc4")
	orange    = lipgloss.Color("#fb923c")
	slate     = lipgloss.Color("#cbd5e1")
	gray500   = lipgloss.Color("#6b7280")
	gray700   = lipgloss.Color("#374151")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(navy)
	headingBars  = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(turquoise),
		lipgloss.NewStyle().Bold(true).Foreground(teal),
		lipgloss.NewStyle().Bold(true).Foreground(orange),
		lipgloss.NewStyle().Bold(true).Foreground(gray700),
	}
	linkStyle        = lipgloss.NewStyle().Foreground(teal).Underline(true)
	quoteBar         = lipgloss.NewStyle().Foreground(turquoise).Render("│ ")
	quoteStyle       = lipgloss.NewStyle().Italic(true).Foreground(gray700)
	captionStyle     = lipgloss.NewStyle().Italic(true).Foreground(gray500)
	codeStyle        = lipgloss.NewStyle().Foreground(orange)
	strongStyle      = lipgloss.NewStyle().Bold(true)
	emphasisStyle    = lipgloss.NewStyle().Italic(true)
	ruleStyle        = lipgloss.NewStyle().Foreground(slate)
	tableBorderStyle = lipgloss.NewStyle().Foreground(slate)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(navy)
	imageLabelStyle  = lipgloss.NewStyle().Foreground(turquoise).Italic(true)
	imageTextStyle   = lipgloss.NewStyle().Foreground(gray500).Italic(true)
)
