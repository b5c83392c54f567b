package pagination

// State holds all pagination-related state
type State struct {
	CurrentPage    int     // 1-based, always within [1, TotalPages]
	TotalPages     int     // at least 1, a single page disables navigation
	AvailableWidth float64 // display width in design units
	MoveStep       int     // explicit override, 0 means derive from width
}

// Window is the contiguous run of page numbers to render as buttons.
// It is derived from State and recomputed on every change, never stored
// independently of it.
type Window struct {
	Start int   // 0-based anchor
	End   int   // inclusive last page, 1-based
	Pages []int // the 1-based range [Start+1 .. End]
}

// Contains reports whether page is inside the window
func (w Window) Contains(page int) bool {
	return page > w.Start && page <= w.End
}

// Size returns the number of visible page buttons
func (w Window) Size() int {
	return w.End - w.Start
}

// PageChangedEvent is published after every navigation operation with the
// final, clamped page
type PageChangedEvent struct {
	Page int
}
