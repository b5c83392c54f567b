package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scadasystems/pluto-grid/internal/domain"
)

// LoadCSV reads a CSV file into a dataset. The first record is the header
// row; ragged records are padded so every row has one cell per column.
func LoadCSV(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // accept ragged rows, padded below
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file, expected a header row", path)
	}

	header := records[0]
	columns := make([]domain.Column, len(header))
	for i, title := range header {
		columns[i] = domain.Column{Title: strings.TrimSpace(title)}
	}

	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		cells := make([]string, len(columns))
		copy(cells, record)
		rows = append(rows, domain.Row{Cells: cells})
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &domain.Dataset{Name: name, Columns: columns, Rows: rows}, nil
}
