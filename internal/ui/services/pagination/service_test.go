package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scadasystems/pluto-grid/internal/ui/services/events"
)

// fakeSource is a scriptable GridSource recording every SetPage call
type fakeSource struct {
	page  int
	total int
	calls []setPageCall
}

type setPageCall struct {
	page   int
	notify bool
}

func (f *fakeSource) CurrentPage() int { return f.page }
func (f *fakeSource) TotalPages() int  { return f.total }

func (f *fakeSource) SetPage(page int, notify bool) {
	f.page = page
	f.calls = append(f.calls, setPageCall{page: page, notify: notify})
}

// recordingBus captures every published event in order
type recordingBus struct {
	events []interface{}
}

func (b *recordingBus) Publish(event interface{}) { b.events = append(b.events, event) }

func (b *recordingBus) Subscribe(eventType string, handler func(interface{})) {}

func (b *recordingBus) pageEvents() []PageChangedEvent {
	var out []PageChangedEvent
	for _, e := range b.events {
		if pe, ok := e.(PageChangedEvent); ok {
			out = append(out, pe)
		}
	}
	return out
}

func newTestService(t *testing.T, page, total int, width float64) (*Service, *fakeSource, *recordingBus) {
	t.Helper()
	src := &fakeSource{page: page, total: total}
	bus := &recordingBus{}
	svc, err := NewService(src, bus, 0)
	require.NoError(t, err)
	svc.SetAvailableWidth(width)
	return svc, src, bus
}

func TestItemSizeRangeAndMonotonicity(t *testing.T) {
	prev := 0
	for w := 0.0; w <= 2000; w += 5 {
		r := itemSize(w)
		assert.GreaterOrEqual(t, r, 0, "width %v", w)
		assert.LessOrEqual(t, r, 3, "width %v", w)
		assert.GreaterOrEqual(t, r, prev, "itemSize must not decrease at width %v", w)
		prev = r
	}
}

func TestItemSizeThresholds(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{0, 0},
		{349, 0},
		{449, 0},
		{450, 1},
		{549, 1},
		{550, 2},
		{649, 2},
		{650, 3},
		{750, 3},
		{10000, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, itemSize(tt.width), "width %v", tt.width)
	}
}

func TestWindowNeverExceedsBoundsAndNeverEmpty(t *testing.T) {
	widths := []float64{0, 400, 450, 550, 650, 750, 1200}
	for total := 1; total <= 25; total++ {
		for page := 1; page <= total; page++ {
			for _, width := range widths {
				svc, _, _ := newTestService(t, page, total, width)
				w := svc.Window()

				require.GreaterOrEqual(t, w.Start+1, 1,
					"total=%d page=%d width=%v", total, page, width)
				require.LessOrEqual(t, w.End, total,
					"total=%d page=%d width=%v", total, page, width)
				require.LessOrEqual(t, w.Start+1, w.End,
					"window empty: total=%d page=%d width=%v", total, page, width)
				require.True(t, w.Contains(page),
					"current page outside window: total=%d page=%d width=%v", total, page, width)
				require.Len(t, w.Pages, w.Size())
			}
		}
	}
}

func TestWindowSizeStableNearBoundaries(t *testing.T) {
	// With enough pages the window keeps its full 2r+1 width at the edges:
	// space unused on the truncated side is borrowed by the other.
	widths := map[float64]int{450: 1, 550: 2, 650: 3}
	for width, r := range widths {
		total := 2*r + 1 + 5
		for _, page := range []int{1, total / 2, total} {
			svc, _, _ := newTestService(t, page, total, width)
			assert.Equal(t, 2*r+1, svc.Window().Size(),
				"width=%v r=%d page=%d", width, r, page)
		}
	}
}

func TestWindowShrinksWhenTotalIsSmall(t *testing.T) {
	// Fewer pages than the window wants: it covers exactly [1, total]
	for total := 1; total <= 6; total++ {
		for page := 1; page <= total; page++ {
			svc, _, _ := newTestService(t, page, total, 750)
			w := svc.Window()
			assert.Equal(t, 0, w.Start, "total=%d page=%d", total, page)
			assert.Equal(t, total, w.End, "total=%d page=%d", total, page)
		}
	}
}

func TestWideWindowAroundMiddlePage(t *testing.T) {
	svc, src, bus := newTestService(t, 5, 10, 650)

	w := svc.Window()
	assert.Equal(t, 1, w.Start)
	assert.Equal(t, 8, w.End)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, w.Pages)
	assert.Equal(t, 7, svc.MoveStep())

	svc.NextPage()
	assert.Equal(t, 10, svc.CurrentPage())
	assert.Equal(t, 10, src.page)

	evs := bus.pageEvents()
	require.NotEmpty(t, evs)
	assert.Equal(t, 10, evs[len(evs)-1].Page)
}

func TestNarrowWindowOnFirstPage(t *testing.T) {
	svc, src, bus := newTestService(t, 1, 3, 0)

	assert.Equal(t, 1, svc.MoveStep())
	assert.True(t, svc.IsFirstPage())

	before := len(bus.pageEvents())
	svc.PreviousPage()
	assert.Equal(t, 1, svc.CurrentPage())
	assert.Equal(t, 1, src.page)

	evs := bus.pageEvents()
	require.Len(t, evs, before+1, "clamped navigation still notifies once")
	assert.Equal(t, 1, evs[len(evs)-1].Page)
}

func TestExplicitMoveStep(t *testing.T) {
	src := &fakeSource{page: 19, total: 20}
	bus := &recordingBus{}
	svc, err := NewService(src, bus, 2)
	require.NoError(t, err)
	svc.SetAvailableWidth(650)

	assert.Equal(t, 2, svc.MoveStep(), "explicit step ignores width")
	assert.False(t, svc.IsLastPage())

	svc.NextPage()
	assert.Equal(t, 20, svc.CurrentPage())
	assert.True(t, svc.IsLastPage())
}

func TestNonPositiveMoveStepRejected(t *testing.T) {
	src := &fakeSource{page: 1, total: 10}
	_, err := NewService(src, &events.NullBus{}, -1)
	require.Error(t, err)

	// Zero is "derive from width", not an override
	_, err = NewService(src, &events.NullBus{}, 0)
	require.NoError(t, err)
}

func TestPreviousNextRoundTripInterior(t *testing.T) {
	svc, _, _ := newTestService(t, 15, 30, 550)
	step := svc.MoveStep()
	require.Equal(t, 5, step)

	svc.PreviousPage()
	assert.Equal(t, 10, svc.CurrentPage())
	svc.NextPage()
	assert.Equal(t, 15, svc.CurrentPage())

	svc.NextPage()
	svc.PreviousPage()
	assert.Equal(t, 15, svc.CurrentPage())
}

func TestFirstAndLastAbsolutes(t *testing.T) {
	for _, start := range []int{1, 2, 7, 13} {
		svc, _, _ := newTestService(t, start, 13, 550)
		svc.FirstPage()
		assert.Equal(t, 1, svc.CurrentPage(), "from %d", start)
		assert.True(t, svc.IsFirstPage())

		svc.LastPage()
		assert.Equal(t, 13, svc.CurrentPage(), "from %d", start)
		assert.True(t, svc.IsLastPage())
	}
}

func TestJumpToClamps(t *testing.T) {
	tests := []struct {
		target int
		want   int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{7, 7},
		{10, 10},
		{11, 10},
		{9999, 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("jump_%d", tt.target), func(t *testing.T) {
			svc, src, _ := newTestService(t, 5, 10, 450)
			svc.JumpTo(tt.target)
			assert.Equal(t, tt.want, svc.CurrentPage())
			assert.Equal(t, tt.want, src.page)
		})
	}
}

func TestInitializationSync(t *testing.T) {
	src := &fakeSource{page: 42, total: 10}
	bus := &recordingBus{}
	svc, err := NewService(src, bus, 0)
	require.NoError(t, err)

	assert.Equal(t, 10, svc.CurrentPage(), "out-of-range source page is clamped")

	require.Len(t, src.calls, 1)
	assert.Equal(t, 10, src.calls[0].page)
	assert.False(t, src.calls[0].notify, "initial sync suppresses the source re-broadcast")

	evs := bus.pageEvents()
	require.Len(t, evs, 1, "initialization publishes exactly one page change")
	assert.Equal(t, 10, evs[0].Page)
}

func TestExactlyOneEventPerOperation(t *testing.T) {
	svc, src, bus := newTestService(t, 1, 10, 450)
	base := len(bus.pageEvents())

	svc.FirstPage() // already there, still one notification
	svc.NextPage()
	svc.JumpTo(4)
	svc.LastPage()
	svc.PreviousPage()

	assert.Len(t, bus.pageEvents(), base+5)
	// Every navigation also pushed its result to the source with notify on
	for _, call := range src.calls[1:] {
		assert.True(t, call.notify)
	}
}

func TestRefreshOnlyFiresWhenSourceChanged(t *testing.T) {
	svc, src, bus := newTestService(t, 3, 10, 450)
	base := len(bus.pageEvents())

	svc.Refresh()
	assert.Len(t, bus.pageEvents(), base, "unchanged source must not refire")

	// Dataset shrank under us: total drops, source page now out of range
	src.total = 2
	src.page = 3
	svc.Refresh()
	assert.Equal(t, 2, svc.CurrentPage())
	assert.Equal(t, 2, svc.TotalPages())
	require.Len(t, bus.pageEvents(), base+1)
	assert.Equal(t, 2, bus.pageEvents()[base].Page)

	svc.Refresh()
	assert.Len(t, bus.pageEvents(), base+1, "second refresh is a no-op")
}

func TestRefreshNormalizesDegenerateSource(t *testing.T) {
	svc, src, _ := newTestService(t, 1, 1, 450)

	src.total = 0
	src.page = 0
	svc.Refresh()
	assert.Equal(t, 1, svc.CurrentPage())
	assert.Equal(t, 1, svc.TotalPages())
}

func TestSetAvailableWidthRecomputesWithoutEvents(t *testing.T) {
	svc, _, bus := newTestService(t, 5, 20, 0)
	require.Equal(t, 1, svc.Window().Size())
	base := len(bus.pageEvents())

	svc.SetAvailableWidth(650)
	assert.Equal(t, 7, svc.Window().Size())
	assert.Len(t, bus.pageEvents(), base, "resizing is not a page change")

	svc.SetAvailableWidth(-100)
	assert.Equal(t, 1, svc.Window().Size(), "negative width treated as zero")
}

func TestSinglePageDisablesNavigation(t *testing.T) {
	svc, _, _ := newTestService(t, 1, 1, 650)

	assert.True(t, svc.IsFirstPage())
	assert.True(t, svc.IsLastPage())
	assert.Equal(t, []int{1}, svc.Window().Pages)

	svc.NextPage()
	svc.LastPage()
	assert.Equal(t, 1, svc.CurrentPage())
}
