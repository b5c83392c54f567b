package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scadasystems/pluto-grid/internal/ui/viewmodels"
)

// Navigation glyphs
const (
	iconFirst    = "|<"
	iconPrevious = "<"
	iconNext     = ">"
	iconLast     = ">|"
)

// Footer renders the pagination button row. It draws what the view model
// hands it; which pages are visible and which affordances are enabled was
// decided upstream.
type Footer struct {
	styles *Styles
}

// NewFooter creates a footer renderer
func NewFooter(styles *Styles) *Footer {
	return &Footer{styles: styles}
}

// Render produces one line like "|< <  2 3 [4] 5 6  > >|" with boundary
// icons dimmed when disabled
func (f *Footer) Render(data viewmodels.FooterData) string {
	var parts []string

	backStyle := f.styles.Icon
	if data.IsFirstPage {
		backStyle = f.styles.IconDisabled
	}
	parts = append(parts, backStyle.Render(iconFirst), backStyle.Render(iconPrevious))

	for _, page := range data.Pages {
		label := strconv.Itoa(page)
		if page == data.CurrentPage {
			parts = append(parts, f.styles.ActivePage.Render("["+label+"]"))
		} else {
			parts = append(parts, f.styles.InactivePage.Render(label))
		}
	}

	forwardStyle := f.styles.Icon
	if data.IsLastPage {
		forwardStyle = f.styles.IconDisabled
	}
	parts = append(parts, forwardStyle.Render(iconNext), forwardStyle.Render(iconLast))

	row := strings.Join(parts, " ")
	counter := f.styles.Dim.Render(
		strconv.Itoa(data.CurrentPage) + "/" + strconv.Itoa(data.TotalPages))

	return lipgloss.JoinHorizontal(lipgloss.Center, row, "  ", counter)
}
