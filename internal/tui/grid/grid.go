// Package grid lays filtered articles out as card rows for a terminal width.
package grid

import "github.com/glabrego/newsdeck/internal/news"

// Width breakpoints for the responsive column count.
const (
	TwoColumnWidth   = 64
	ThreeColumnWidth = 112
	Gap              = 2
)

type Cell struct {
	Index int // position in the filtered article list
	Col   int // first column occupied
	Span  int
}

type Row struct {
	Cells []Cell
}

// Columns returns how many card columns fit in width.
func Columns(width int) int {
	switch {
	case width >= ThreeColumnWidth:
		return 3
	case width >= TwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// Build places articles in row-major order. A featured article spans two
// columns when the grid has room for it.
func Build(articles []news.Article, columns int) []Row {
	if columns < 1 {
		columns = 1
	}
	rows := make([]Row, 0, len(articles)/columns+1)
	current := Row{}
	col := 0
	for i, article := range articles {
		span := 1
		if article.Featured && columns >= 2 {
			span = 2
		}
		if col+span > columns {
			rows = append(rows, current)
			current = Row{}
			col = 0
		}
		current.Cells = append(current.Cells, Cell{Index: i, Col: col, Span: span})
		col += span
		if col == columns {
			rows = append(rows, current)
			current = Row{}
			col = 0
		}
	}
	if len(current.Cells) > 0 {
		rows = append(rows, current)
	}
	return rows
}

// CellWidth is the outer width of a card spanning span columns.
func CellWidth(total, columns, span int) int {
	if columns < 1 {
		columns = 1
	}
	unit := (total - Gap*(columns-1)) / columns
	if unit < 1 {
		unit = 1
	}
	return unit*span + Gap*(span-1)
}

// Locate returns the row and cell holding the article index, or -1, -1.
func Locate(rows []Row, index int) (int, int) {
	for r, row := range rows {
		for c, cell := range row.Cells {
			if cell.Index == index {
				return r, c
			}
		}
	}
	return -1, -1
}

// Move returns the article index reached from index by stepping dRow rows and
// dCol cells. Vertical moves keep the column where possible.
func Move(rows []Row, index, dRow, dCol int) int {
	r, c := Locate(rows, index)
	if r < 0 {
		return index
	}
	if dCol != 0 {
		total := 0
		for _, row := range rows {
			total += len(row.Cells)
		}
		next := index + dCol
		if next < 0 {
			next = 0
		}
		if next >= total {
			next = total - 1
		}
		return next
	}
	target := r + dRow
	if target < 0 || target >= len(rows) {
		return index
	}
	col := rows[r].Cells[c].Col
	best := rows[target].Cells[0]
	for _, cell := range rows[target].Cells {
		if cell.Col <= col {
			best = cell
		}
	}
	return best.Index
}

// CellAt returns the article index drawn at horizontal offset x within row,
// for a grid of the given total width.
func CellAt(rows []Row, row, x, total, columns int) (int, bool) {
	if row < 0 || row >= len(rows) || x < 0 {
		return 0, false
	}
	unit := CellWidth(total, columns, 1)
	for _, cell := range rows[row].Cells {
		start := cell.Col * (unit + Gap)
		if x >= start && x < start+CellWidth(total, columns, cell.Span) {
			return cell.Index, true
		}
	}
	return 0, false
}
