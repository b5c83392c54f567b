package ui

import (
	"fmt"
	"log"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scadasystems/pluto-grid/internal/config"
	"github.com/scadasystems/pluto-grid/internal/eventbus"
	"github.com/scadasystems/pluto-grid/internal/grid"
	uievents "github.com/scadasystems/pluto-grid/internal/ui/services/events"
	"github.com/scadasystems/pluto-grid/internal/ui/services/pagination"
	"github.com/scadasystems/pluto-grid/internal/ui/viewmodels"
	"github.com/scadasystems/pluto-grid/internal/ui/views"
)

// Terminal cells are narrow compared to the design units the window sizing
// was tuned for, so the width is scaled up before it reaches the pager.
const widthScale = 10

// inputMode is what the text input at the bottom is currently capturing
type inputMode int

const (
	modeNormal inputMode = iota
	modeFilter
	modeJump
)

// keyMap defines the key bindings for the grid
type keyMap struct {
	First    key.Binding
	Previous key.Binding
	Next     key.Binding
	Last     key.Binding
	Jump     key.Binding
	Filter   key.Binding
	Sort     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		Previous: key.NewBinding(key.WithKeys("h", "left", "pgup"), key.WithHelp("h/←", "previous")),
		Next:     key.NewBinding(key.WithKeys("l", "right", "pgdown"), key.WithHelp("l/→", "next")),
		Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		Jump:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump to page")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Jump, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.First, k.Previous, k.Next, k.Last},
		{k.Jump, k.Filter, k.Sort},
		{k.Help, k.Quit},
	}
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	grid  *grid.State
	pager *pagination.Service

	width  int
	height int

	mode      inputMode
	textInput textinput.Model
	keys      keyMap
	help      help.Model
	showHelp  bool
	lastError string
	sortNext  int // next column the sort key cycles to

	viewModel *viewmodels.ViewModel
	footer    *views.Footer
	table     *views.Table
}

// NewModel creates a new UI model wired to the grid state. The pagination
// service is constructed here too and performs its initial sync, so the
// config's move step is validated before the program starts.
func NewModel(bus eventbus.EventBus, cfg *config.Config, gridState *grid.State) (*Model, error) {
	uiBus := uievents.NewBus()

	pager, err := pagination.NewService(gridState, uiBus, cfg.MoveStep)
	if err != nil {
		return nil, fmt.Errorf("pagination: %w", err)
	}

	uiBus.Subscribe(fmt.Sprintf("%T", pagination.PageChangedEvent{}), func(e interface{}) {
		if ev, ok := e.(pagination.PageChangedEvent); ok {
			log.Printf("page changed: %d", ev.Page)
		}
	})

	ti := textinput.New()
	ti.CharLimit = 64

	styles := views.NewStyles(cfg.UISettings)

	m := &Model{
		bus:       bus,
		config:    cfg,
		grid:      gridState,
		pager:     pager,
		textInput: ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
		footer:    views.NewFooter(styles),
		table:     views.NewTable(styles),
	}
	m.viewModel = viewmodels.NewViewModel(gridState, pager)

	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.help.Width = msg.Width
		// Recompute the window before this paint, not after
		m.pager.SetAvailableWidth(float64(msg.Width) * widthScale)
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// updateNormal handles keys outside of text entry
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.First):
		m.pager.FirstPage()

	case key.Matches(msg, m.keys.Previous):
		m.pager.PreviousPage()

	case key.Matches(msg, m.keys.Next):
		m.pager.NextPage()

	case key.Matches(msg, m.keys.Last):
		m.pager.LastPage()

	case key.Matches(msg, m.keys.Jump):
		m.mode = modeJump
		m.textInput.Placeholder = "page"
		m.textInput.SetValue("")
		m.textInput.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.textInput.Placeholder = "filter"
		m.textInput.SetValue(m.grid.Filter())
		m.textInput.Focus()

	case key.Matches(msg, m.keys.Sort):
		cols := len(m.grid.Columns())
		if cols > 0 {
			col := m.sortNext % cols
			m.grid.SortBy(col)
			if _, asc := m.grid.SortColumn(); !asc {
				// second press flipped to descending, advance next time
				m.sortNext = (col + 1) % cols
			}
			m.pager.Refresh()
		}
	}

	return m, nil
}

// updateInput handles keys while the jump or filter prompt is open
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.textInput.Blur()
		return m, nil

	case "enter":
		value := m.textInput.Value()
		mode := m.mode
		m.mode = modeNormal
		m.textInput.Blur()

		switch mode {
		case modeJump:
			if page, err := strconv.Atoi(value); err == nil {
				m.pager.JumpTo(page)
			}
		case modeFilter:
			m.grid.SetFilter(value)
			m.pager.Refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.DatasetLoadedEvent:
		m.lastError = ""
		m.pager.Refresh()

	case eventbus.DataChangedEvent:
		m.pager.Refresh()

	case eventbus.ErrorEvent:
		m.lastError = e.Message
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	table := m.table.Render(m.viewModel.Table(), m.width)
	footer := m.footer.Render(m.viewModel.Footer())

	status := ""
	switch m.mode {
	case modeJump:
		status = "jump: " + m.textInput.View()
	case modeFilter:
		status = "filter: " + m.textInput.View()
	default:
		if m.lastError != "" {
			status = m.lastError
		} else if f := m.grid.Filter(); f != "" {
			status = fmt.Sprintf("filter %q, %d rows", f, m.grid.VisibleRowCount())
		}
	}

	sections := []string{table, footer}
	if status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
