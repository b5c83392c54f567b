package grid

import (
	"sort"
	"strconv"
	"strings"

	"github.com/scadasystems/pluto-grid/internal/domain"
	"github.com/scadasystems/pluto-grid/internal/eventbus"
)

// State is the grid's own view of the data: the loaded dataset, the rows
// surviving the current filter and sort, and which page of them is showing.
// It is the single source of truth for the current page and the page count;
// the pagination service reads both from here and pushes navigation results
// back through SetPage.
type State struct {
	bus eventbus.EventBus

	dataset      *domain.Dataset
	visible      []int // indices into dataset.Rows, filtered and sorted
	pageSize     int
	currentPage  int
	footerHeight float64

	sortColumn int // -1 when unsorted
	sortAsc    bool
	filter     string
}

// NewState creates a grid state with no dataset. pageSize is the number of
// rows shown per page.
func NewState(bus eventbus.EventBus, pageSize int, footerHeight float64) *State {
	if pageSize < 1 {
		pageSize = 1
	}
	return &State{
		bus:          bus,
		pageSize:     pageSize,
		currentPage:  1,
		footerHeight: footerHeight,
		sortColumn:   -1,
	}
}

// SetDataset replaces the loaded dataset, resets filter, sort and page, and
// announces the load
func (s *State) SetDataset(ds *domain.Dataset) {
	s.dataset = ds
	s.filter = ""
	s.sortColumn = -1
	s.currentPage = 1
	s.rebuildVisible()

	if s.bus != nil {
		s.bus.Publish(eventbus.DatasetLoadedEvent{
			Name:     ds.Name,
			RowCount: ds.RowCount(),
			ColCount: len(ds.Columns),
		})
		s.bus.Publish(eventbus.DataChangedEvent{TotalPages: s.TotalPages()})
	}
}

// CurrentPage returns the current 1-based page
func (s *State) CurrentPage() int {
	return s.currentPage
}

// TotalPages returns the page count for the rows surviving the filter. A grid
// with no rows still has one (empty) page.
func (s *State) TotalPages() int {
	if len(s.visible) == 0 {
		return 1
	}
	return (len(s.visible) + s.pageSize - 1) / s.pageSize
}

// SetPage stores a new current page, clamped into range. When notify is set
// the change is re-broadcast on the bus; the pagination service passes false
// during its initialization sync to avoid a duplicate announcement.
func (s *State) SetPage(page int, notify bool) {
	if page < 1 {
		page = 1
	}
	if max := s.TotalPages(); page > max {
		page = max
	}
	s.currentPage = page

	if notify && s.bus != nil {
		s.bus.Publish(eventbus.PageSetEvent{Page: page})
	}
}

// FooterHeight returns the configured footer height hint, passed through to
// the rendering layer unchanged
func (s *State) FooterHeight() float64 {
	return s.footerHeight
}

// PageSize returns the number of rows per page
func (s *State) PageSize() int {
	return s.pageSize
}

// Columns returns the dataset's columns, nil when nothing is loaded
func (s *State) Columns() []domain.Column {
	if s.dataset == nil {
		return nil
	}
	return s.dataset.Columns
}

// VisibleRowCount returns the number of rows surviving the current filter
func (s *State) VisibleRowCount() int {
	return len(s.visible)
}

// PageRows returns the rows of the current page in display order
func (s *State) PageRows() []domain.Row {
	if s.dataset == nil {
		return nil
	}

	start := (s.currentPage - 1) * s.pageSize
	if start >= len(s.visible) {
		return nil
	}
	end := start + s.pageSize
	if end > len(s.visible) {
		end = len(s.visible)
	}

	rows := make([]domain.Row, 0, end-start)
	for _, idx := range s.visible[start:end] {
		rows = append(rows, s.dataset.Rows[idx])
	}
	return rows
}

// SortBy sorts the visible rows by the given column. Sorting the same column
// again flips the direction. The page count is unchanged but the current page
// content shifts, so a data-changed event is published either way.
func (s *State) SortBy(col int) {
	if s.dataset == nil || col < 0 || col >= len(s.dataset.Columns) {
		return
	}

	if s.sortColumn == col {
		s.sortAsc = !s.sortAsc
	} else {
		s.sortColumn = col
		s.sortAsc = true
	}
	s.sortVisible()
	s.clampPage()

	if s.bus != nil {
		s.bus.Publish(eventbus.DataChangedEvent{TotalPages: s.TotalPages()})
	}
}

// SortColumn returns the active sort column and direction, -1 when unsorted
func (s *State) SortColumn() (int, bool) {
	return s.sortColumn, s.sortAsc
}

// SetFilter keeps only rows with a cell containing query (case-insensitive)
// and republishes the possibly changed page count
func (s *State) SetFilter(query string) {
	s.filter = query
	s.rebuildVisible()
	s.clampPage()

	if s.bus != nil {
		s.bus.Publish(eventbus.DataChangedEvent{TotalPages: s.TotalPages()})
	}
}

// Filter returns the active filter query
func (s *State) Filter() string {
	return s.filter
}

func (s *State) clampPage() {
	if max := s.TotalPages(); s.currentPage > max {
		s.currentPage = max
	}
	if s.currentPage < 1 {
		s.currentPage = 1
	}
}

func (s *State) rebuildVisible() {
	if s.dataset == nil {
		s.visible = nil
		return
	}

	if s.filter == "" {
		s.visible = make([]int, len(s.dataset.Rows))
		for i := range s.visible {
			s.visible[i] = i
		}
	} else {
		query := strings.ToLower(s.filter)
		s.visible = s.visible[:0]
		for i, row := range s.dataset.Rows {
			for _, cell := range row.Cells {
				if strings.Contains(strings.ToLower(cell), query) {
					s.visible = append(s.visible, i)
					break
				}
			}
		}
	}

	if s.sortColumn >= 0 {
		s.sortVisible()
	}
}

func (s *State) sortVisible() {
	col := s.sortColumn
	sort.SliceStable(s.visible, func(i, j int) bool {
		a := s.dataset.Cell(s.visible[i], col)
		b := s.dataset.Cell(s.visible[j], col)
		if !s.sortAsc {
			a, b = b, a
		}
		return cellLess(a, b)
	})
}

// cellLess orders numerically when both cells parse as numbers, otherwise
// case-insensitively
func cellLess(a, b string) bool {
	na, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	nb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return strings.ToLower(a) < strings.ToLower(b)
}
