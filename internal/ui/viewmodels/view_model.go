package viewmodels

import (
	"github.com/scadasystems/pluto-grid/internal/domain"
	"github.com/scadasystems/pluto-grid/internal/grid"
	"github.com/scadasystems/pluto-grid/internal/ui/services/pagination"
)

// FooterData is everything the footer view needs to render the pagination
// row. The rendering layer reads it and draws; no windowing decisions are
// made past this point.
type FooterData struct {
	Pages       []int // visible page buttons, in order
	CurrentPage int
	TotalPages  int
	IsFirstPage bool // disables first/previous affordances
	IsLastPage  bool // disables next/last affordances
	Height      float64
}

// TableData is the current page of the grid in view-ready form
type TableData struct {
	Columns    []domain.Column
	Rows       []domain.Row
	SortColumn int
	SortAsc    bool
	Filter     string
	RowCount   int // rows surviving the filter, across all pages
}

// ViewModel transforms grid and pagination state into view-ready data
type ViewModel struct {
	grid   *grid.State
	pager  *pagination.Service
	width  int
	height int
}

// NewViewModel creates a new view model
func NewViewModel(gridState *grid.State, pager *pagination.Service) *ViewModel {
	return &ViewModel{
		grid:  gridState,
		pager: pager,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// Width returns the current terminal width
func (vm *ViewModel) Width() int {
	return vm.width
}

// Footer builds the footer view data from the pagination service
func (vm *ViewModel) Footer() FooterData {
	return FooterData{
		Pages:       vm.pager.Window().Pages,
		CurrentPage: vm.pager.CurrentPage(),
		TotalPages:  vm.pager.TotalPages(),
		IsFirstPage: vm.pager.IsFirstPage(),
		IsLastPage:  vm.pager.IsLastPage(),
		Height:      vm.grid.FooterHeight(),
	}
}

// Table builds the table view data for the current page
func (vm *ViewModel) Table() TableData {
	sortCol, sortAsc := vm.grid.SortColumn()
	return TableData{
		Columns:    vm.grid.Columns(),
		Rows:       vm.grid.PageRows(),
		SortColumn: sortCol,
		SortAsc:    sortAsc,
		Filter:     vm.grid.Filter(),
		RowCount:   vm.grid.VisibleRowCount(),
	}
}
