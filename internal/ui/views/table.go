package views

import (
	"strings"

	"github.com/scadasystems/pluto-grid/internal/ui/viewmodels"
)

// Table renders the current page of the grid as fixed-width columns
type Table struct {
	styles *Styles
}

// NewTable creates a table renderer
func NewTable(styles *Styles) *Table {
	return &Table{styles: styles}
}

// Render draws the header and the page's rows, fitting columns into width
func (t *Table) Render(data viewmodels.TableData, width int) string {
	if len(data.Columns) == 0 {
		return t.styles.Dim.Render("no data loaded")
	}

	widths := t.columnWidths(data, width)

	var b strings.Builder

	// Header with sort indicator
	headerCells := make([]string, len(data.Columns))
	for i, col := range data.Columns {
		title := col.Title
		if i == data.SortColumn {
			if data.SortAsc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		headerCells[i] = pad(title, widths[i])
	}
	b.WriteString(t.styles.Header.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")

	for _, row := range data.Rows {
		cells := make([]string, len(data.Columns))
		for i := range data.Columns {
			cell := ""
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(t.styles.Cell.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

// columnWidths sizes each column to its widest visible cell, then shrinks
// the widest columns until the row fits the terminal
func (t *Table) columnWidths(data viewmodels.TableData, width int) []int {
	widths := make([]int, len(data.Columns))
	for i, col := range data.Columns {
		widths[i] = len([]rune(col.Title)) + 2 // room for sort indicator
		if col.Width > 0 {
			widths[i] = col.Width
		}
	}
	for _, row := range data.Rows {
		for i := range widths {
			if i < len(row.Cells) {
				if n := len([]rune(row.Cells[i])); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	if width <= 0 {
		return widths
	}

	total := func() int {
		sum := 2 * (len(widths) - 1)
		for _, w := range widths {
			sum += w
		}
		return sum
	}
	for total() > width {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			break
		}
		widths[widest]--
	}
	return widths
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
