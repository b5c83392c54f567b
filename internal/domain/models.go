package domain

// Column describes one column of the grid
type Column struct {
	Title string
	Width int // render width in cells, 0 means auto-fit
}

// Row is one record of the dataset, one cell per column
type Row struct {
	Cells []string
}

// Dataset is the ordered collection of rows the grid pages over
type Dataset struct {
	Name    string
	Columns []Column
	Rows    []Row
}

// RowCount returns the number of data rows
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// Cell returns the cell at (row, col), or "" when the row is ragged
func (d *Dataset) Cell(row, col int) string {
	if row < 0 || row >= len(d.Rows) {
		return ""
	}
	cells := d.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}
