package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/ptable/internal/grid"
	"github.com/five82/ptable/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Grid      *grid.Grid
	ThemeName string
	Mouse     bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Data
	ctrl       *state.Controller
	boundPos   map[int]int // grid index -> position in ctrl.Cells()
	categories []categoryOption

	// UI state
	keys   keyMap
	help   help.Model
	search textinput.Model
	theme  Theme
	width  int
	height int
	ready  bool
	mouse  bool

	showHelp     bool
	pickerCursor int

	status    string
	statusErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	g := opts.Grid
	if g == nil {
		g = grid.Build(nil)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	ctrl := state.New(g)
	cells := ctrl.Cells()
	boundPos := make(map[int]int, len(cells))
	for i, cell := range cells {
		boundPos[cell.Index] = i
	}

	return Model{
		ctrl:       ctrl,
		boundPos:   boundPos,
		categories: buildCategoryOptions(cells),
		keys:       DefaultKeyMap(),
		help:       newHelp(theme),
		search:     newSearchInput(theme),
		theme:      theme,
		mouse:      opts.Mouse,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		// An open overlay never survives a resize.
		if m.ctrl.Resize() {
			m.status = ""
			log.Printf("detail close: resize %dx%d", msg.Width, msg.Height)
		}
		return m, nil

	case clipboardMsg:
		return m.handleClipboard(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.ctrl.Modal().Open {
		return m.placeOverlay(m.renderDetailBox())
	}

	if m.ctrl.Input() == state.InputCategoryPicker {
		return m.placeOverlay(m.renderPickerBox())
	}

	return m.renderMain()
}

// handleKey routes keyboard input to whichever control holds focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The search accelerator works from every control.
	if msg.String() == "ctrl+f" && m.ctrl.Input() != state.InputSearch {
		m.closeDetail("search")
		if m.ctrl.Input() == state.InputCategoryPicker {
			m.closePicker()
		}
		return m, m.focusSearch()
	}

	if m.ctrl.Modal().Open {
		return m.handleDetailKey(msg)
	}

	switch m.ctrl.Input() {
	case state.InputSearch:
		return m.handleSearchKey(msg)
	case state.InputCategoryPicker:
		return m.handlePickerKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleGridKey processes keyboard input while the grid has focus.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))

	case key.Matches(msg, m.keys.Search):
		return m, m.focusSearch()

	case key.Matches(msg, m.keys.ClearSearch):
		return m, m.clearSearch()

	case key.Matches(msg, m.keys.Category):
		m.openPicker()

	case key.Matches(msg, m.keys.NextCategory):
		m.setCategory(state.CycleCategory(m.ctrl.Filter().Category, 1))

	case key.Matches(msg, m.keys.PrevCategory):
		m.setCategory(state.CycleCategory(m.ctrl.Filter().Category, -1))

	case key.Matches(msg, m.keys.Open):
		m.openCell(m.ctrl.Focus().Index)

	case key.Matches(msg, m.keys.Up):
		m.ctrl.Navigate(state.Up)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Navigate(state.Down)
	case key.Matches(msg, m.keys.Left):
		m.ctrl.Navigate(state.Left)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.Navigate(state.Right)
	}
	return m, nil
}

// handleMouse processes left clicks. Overlays consume clicks inside their box;
// a click on the backdrop dismisses them.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.ctrl.Modal().Open {
		box := overlayRect(m.renderDetailBox(), m.width, m.height)
		switch {
		case !box.contains(msg.X, msg.Y):
			m.closeDetail("backdrop")
		case m.closeButtonRect(box).contains(msg.X, msg.Y):
			m.closeDetail("button")
		}
		return m, nil
	}

	if m.ctrl.Input() == state.InputCategoryPicker {
		box := overlayRect(m.renderPickerBox(), m.width, m.height)
		if !box.contains(msg.X, msg.Y) {
			m.closePicker()
		}
		return m, nil
	}

	if marker, ok := m.clearMarkerRect(); ok && marker.contains(msg.X, msg.Y) {
		return m, m.clearSearch()
	}

	if msg.Y == searchRow {
		return m, m.focusSearch()
	}

	if idx, ok := cellAt(msg.X, msg.Y); ok {
		if pos, bound := m.boundPos[idx]; bound {
			m.blurSearch()
			m.openCell(pos)
		}
	}
	return m, nil
}

// setTheme switches the palette of every themed component.
func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.help = newHelp(m.theme)
	m.help.Width = m.width
	applySearchTheme(&m.search, m.theme)
	log.Printf("theme %s", m.theme.Name)
}

// renderMain renders the header, search line, grid, legend and footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n\n")
	b.WriteString(m.renderLegend())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(opts), programOpts...)
	_, err := p.Run()
	return exitErr(ctx, err)
}

// exitErr maps the program's exit error. A kill caused by cancelling ctx,
// such as on SIGTERM, is a clean exit.
func exitErr(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
