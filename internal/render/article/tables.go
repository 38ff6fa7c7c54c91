package article

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	nethtml "golang.org/x/net/html"
)

const minTableWidth = 12

func (r renderer) renderTable(node *nethtml.Node) []string {
	var header []string
	var rows [][]string
	walk(node, func(n *nethtml.Node) {
		if n.Type != nethtml.ElementNode || !strings.EqualFold(n.Data, "tr") {
			return
		}
		cells, isHeader := r.tableRow(n)
		if len(cells) == 0 {
			return
		}
		if isHeader && header == nil && len(rows) == 0 {
			header = cells
			return
		}
		rows = append(rows, cells)
	})
	if header == nil && len(rows) == 0 {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	if r.width >= minTableWidth {
		t = t.Width(r.width)
	}
	if header != nil {
		t = t.Headers(header...)
	}
	t = t.Rows(rows...)
	return strings.Split(t.Render(), "\n")
}

func (r renderer) tableRow(tr *nethtml.Node) ([]string, bool) {
	var cells []string
	header := true
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != nethtml.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "th":
		case "td":
			header = false
		default:
			continue
		}
		cells = append(cells, collapseSpace(r.inlineChildren(c)))
	}
	return cells, header
}

func imageLabel(img *nethtml.Node, width int) []string {
	text := collapseSpace(nodeAttr(img, "alt"))
	if text == "" {
		text = collapseSpace(nodeAttr(img, "title"))
	}
	line := imageLabelStyle.Render("◌ Image")
	if text != "" {
		line += " " + imageTextStyle.Render(text)
	}
	return Wrap(line, max(1, width))
}
