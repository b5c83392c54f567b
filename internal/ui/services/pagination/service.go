package pagination

import (
	"fmt"
	"math"

	"github.com/scadasystems/pluto-grid/internal/ui/services/events"
)

// GridSource is the grid-state collaborator the service stays in sync with.
// The service never owns or creates it; every read of the current page or the
// page count goes through it, and every navigation result is pushed back.
type GridSource interface {
	CurrentPage() int
	TotalPages() int
	// SetPage pushes a clamped page back to the source. notify controls
	// whether the source re-broadcasts the change on its own bus.
	SetPage(page int, notify bool)
}

// Service owns the page window: which page buttons are visible for the
// available width, how far previous/next jumps, and how navigation clamps at
// the boundaries.
type Service struct {
	state  *State
	window Window
	source GridSource
	bus    events.EventBus
}

// NewService creates a pagination service synchronized with src. moveStep is
// an optional fixed step for previous/next: 0 derives the step from the
// available width, any other non-positive value is rejected. The initial sync
// pushes the clamped page back to the source without a re-broadcast and
// publishes one PageChangedEvent to establish the starting page.
func NewService(src GridSource, bus events.EventBus, moveStep int) (*Service, error) {
	if moveStep < 0 {
		return nil, fmt.Errorf("move step must be positive, got %d", moveStep)
	}

	s := &Service{
		state: &State{
			CurrentPage: 1,
			TotalPages:  1,
			MoveStep:    moveStep,
		},
		source: src,
		bus:    bus,
	}

	s.state.TotalPages = totalOf(src)
	s.state.CurrentPage = s.clampPage(src.CurrentPage())
	s.recompute()

	src.SetPage(s.state.CurrentPage, false)
	s.bus.Publish(PageChangedEvent{Page: s.state.CurrentPage})

	return s, nil
}

// CurrentPage returns the current 1-based page
func (s *Service) CurrentPage() int {
	return s.state.CurrentPage
}

// TotalPages returns the page count last read from the source
func (s *Service) TotalPages() int {
	return s.state.TotalPages
}

// Window returns the currently visible page range
func (s *Service) Window() Window {
	return s.window
}

// IsFirstPage reports whether the first-page and previous-page affordances
// should be disabled
func (s *Service) IsFirstPage() bool {
	return s.state.CurrentPage < 2
}

// IsLastPage reports whether the next-page and last-page affordances should
// be disabled
func (s *Service) IsLastPage() bool {
	return s.state.CurrentPage > s.state.TotalPages-1
}

// MoveStep returns the number of pages a previous/next action moves: the
// configured override when set, otherwise one full window width
func (s *Service) MoveStep() int {
	if s.state.MoveStep > 0 {
		return s.state.MoveStep
	}
	return 1 + 2*itemSize(s.state.AvailableWidth)
}

// SetAvailableWidth records a new display width and recomputes the window
// before returning, so the next paint sees the resized button row
func (s *Service) SetAvailableWidth(width float64) {
	if width < 0 {
		width = 0
	}
	s.state.AvailableWidth = width
	s.recompute()
}

// FirstPage navigates to page 1
func (s *Service) FirstPage() {
	s.moveTo(1)
}

// PreviousPage moves back by the current move step
func (s *Service) PreviousPage() {
	s.moveTo(s.state.CurrentPage - s.MoveStep())
}

// NextPage moves forward by the current move step
func (s *Service) NextPage() {
	s.moveTo(s.state.CurrentPage + s.MoveStep())
}

// LastPage navigates to the last page
func (s *Service) LastPage() {
	s.moveTo(s.state.TotalPages)
}

// JumpTo navigates to a specific page, clamped into range
func (s *Service) JumpTo(page int) {
	s.moveTo(page)
}

// Refresh re-reads the page and page count from the source after an external
// change (re-sort, filter, resize). State and window are only touched, and a
// PageChangedEvent only republished, when the source values actually differ
// from the cached ones.
func (s *Service) Refresh() {
	total := totalOf(s.source)
	page := s.source.CurrentPage()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	if total == s.state.TotalPages && page == s.state.CurrentPage {
		return
	}

	s.state.TotalPages = total
	s.state.CurrentPage = page
	s.recompute()
	s.bus.Publish(PageChangedEvent{Page: page})
}

// moveTo clamps the target, updates state and window, pushes the page to the
// source and notifies. All of it completes before returning, so a listener
// that navigates again from inside its handler sees consistent state.
func (s *Service) moveTo(page int) {
	page = s.clampPage(page)
	s.state.CurrentPage = page
	s.recompute()

	s.source.SetPage(page, true)
	s.bus.Publish(PageChangedEvent{Page: page})
}

func (s *Service) clampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > s.state.TotalPages {
		return s.state.TotalPages
	}
	return page
}

// recompute derives the visible window from the current state. When the
// window is truncated at one boundary the unused span is borrowed by the
// opposite side, so the button row keeps its full width at the edges instead
// of shrinking.
func (s *Service) recompute() {
	cur := s.state.CurrentPage
	total := s.state.TotalPages
	r := itemSize(s.state.AvailableWidth)
	gap := r + 1

	start := cur - gap
	if cur+r > total {
		start -= r + cur - total
	}
	if start < 0 {
		start = 0
	}

	end := cur + r
	if cur-gap < 0 {
		end += gap - cur
	}
	if end > total {
		end = total
	}

	pages := make([]int, 0, end-start)
	for p := start + 1; p <= end; p++ {
		pages = append(pages, p)
	}

	s.window = Window{Start: start, End: end, Pages: pages}
}

// itemSize maps the available width to the half-window radius. Below 450
// units only the current page is useful context; every further 100 units
// affords one more page on each side, capped at 3.
func itemSize(width float64) int {
	r := int(math.Floor((width - 350) / 100))
	if r < 0 {
		return 0
	}
	if r > 3 {
		return 3
	}
	return r
}

func totalOf(src GridSource) int {
	total := src.TotalPages()
	if total < 1 {
		return 1
	}
	return total
}
