package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"empdir/internal/config"
	"empdir/internal/directory"
	"empdir/internal/domain"
	"empdir/internal/eventbus"
	"empdir/internal/ui/input"
	inputtypes "empdir/internal/ui/input/types"
	"empdir/internal/ui/state"
	"empdir/internal/ui/viewmodels"
	"empdir/internal/ui/views"
)

const (
	statusTimeout      = 3 * time.Second
	errorStatusTimeout = 5 * time.Second
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // presentation state
	session *directory.Session

	dialog *dialog
	sink   *snapshotSink

	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a UI model around a new session seeded with seed
func NewModel(bus eventbus.EventBus, cfg *config.Config, seed []domain.Employee) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		dialog:       &dialog{},
		sink:         &snapshotSink{},
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, cfg, newKeyMap()),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}

	opts := []directory.Option{directory.WithRenderer(m.sink)}
	if bus != nil {
		opts = append(opts, directory.WithEventBus(bus))
	}
	m.session = directory.NewSession(seed, m.dialog, opts...)
	m.session.Render()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Session returns the directory session driven by the UI
func (m *Model) Session() *directory.Session {
	return m.session
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := m.context()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if cmd := m.afterSessionChange(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the full key hints
			log.WithError(msg.err).Warn("help pager failed")
			m.state.ShowFullHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.ClearStatus(msg.seq)
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetShowAll(m.state.ShowFullHelp)
	m.viewModel.SetSearchInput(m.inputHandler.Prompt(), m.inputHandler.TextInput())
	form := m.inputHandler.Form()
	m.viewModel.SetForm(form.Inputs(), form.Focused())

	return m.renderer.Render(m.viewModel.BuildViewState(m.sink.snap))
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:   m.state,
		Session: m.session,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.WithField("action", action.Type()).Debug("processAction")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SwitchPaneAction:
		if m.state.Focus == state.PaneDirectory && len(m.session.Results()) > 0 {
			m.state.Focus = state.PaneResults
		} else {
			m.state.Focus = state.PaneDirectory
		}

	case inputtypes.UpdateTextAction:
		m.session.SetQuery(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.session.SetQuery(a.Text)
			m.session.SearchPending()
			if len(m.session.Results()) > 0 && m.config.UI.ShowSearchResults {
				m.state.Focus = state.PaneResults
				m.state.ResultsIndex = 0
			}
		}

	case inputtypes.CancelTextAction:
		// The typed text stays pending so the next search starts from it

	case inputtypes.OpenAddFormAction:
		m.session.OpenAddForm()

	case inputtypes.CloseAddFormAction:
		m.session.CloseAddForm()

	case inputtypes.SetFieldAction:
		m.session.SetDraftField(a.Field, a.Value)

	case inputtypes.SubmitFormAction:
		if err := m.session.Commit(); err != nil {
			log.WithError(err).Debug("add rejected")
			return nil
		}
		m.state.Focus = state.PaneDirectory
		m.state.DirectoryIndex = m.session.Len() - 1
		m.state.EnsureVisible()

	case inputtypes.ShowDetailAction:
		m.session.ShowDetail(a.ID)

	case inputtypes.CloseDetailAction:
		m.session.CloseDetail()

	case inputtypes.RequestDeleteAction:
		m.state.PendingDeleteID = a.ID
		m.state.ConfirmPending = true

	case inputtypes.ConfirmAction:
		id := m.state.PendingDeleteID
		m.state.PendingDeleteID = 0
		m.state.ConfirmPending = false
		m.dialog.preAnswer(a.Yes)
		m.session.Delete(id)

	case inputtypes.ClearSearchAction:
		m.session.ClearSearch()
		m.state.Focus = state.PaneDirectory
		return m.setStatus(state.NoticeInfo, "Search cleared")

	case inputtypes.ToggleHelpAction:
		m.state.ShowFullHelp = !m.state.ShowFullHelp

	case inputtypes.OpenHelpPagerAction:
		if m.program == nil {
			m.state.ShowFullHelp = true
			return nil
		}
		return m.fetchHelpPager(RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// afterSessionChange moves queued notices to the status line, keeps the
// cursors in range and leaves form mode once the session closed the form
func (m *Model) afterSessionChange() tea.Cmd {
	var cmd tea.Cmd
	for _, n := range m.dialog.drain() {
		cmd = m.setStatus(n.kind, n.text)
	}

	m.state.Clamp(m.session.Len(), len(m.session.Results()))
	m.state.EnsureVisible()

	if m.inputHandler.CurrentMode() == inputtypes.ModeForm && !m.session.FormVisible() {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.context())
	}
	return cmd
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SeedLoadedEvent:
		if e.Skipped > 0 {
			return m.setStatus(state.NoticeWarning,
				fmt.Sprintf("Loaded %d employees, skipped %d invalid seed records", e.Count, e.Skipped))
		}
		return m.setStatus(state.NoticeInfo, fmt.Sprintf("Loaded %d employees", e.Count))
	}
	return nil
}

func (m *Model) setStatus(kind state.NoticeKind, text string) tea.Cmd {
	seq := m.state.SetStatus(kind, text)
	timeout := statusTimeout
	if kind == state.NoticeError {
		timeout = errorStatusTimeout
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) navigate(direction string) {
	n := m.session.Len()
	index := &m.state.DirectoryIndex
	if m.state.Focus == state.PaneResults {
		n = len(m.session.Results())
		index = &m.state.ResultsIndex
	}
	if n == 0 {
		return
	}

	pageSize := m.state.ViewportHeight - 2 // Leave some overlap
	if pageSize < 1 {
		pageSize = 1
	}

	switch direction {
	case "up":
		*index--
	case "down":
		*index++
	case "pageup":
		*index -= pageSize
	case "pagedown":
		*index += pageSize
	case "home":
		*index = 0
	case "end":
		*index = n - 1
	}
	if *index < 0 {
		*index = 0
	}
	if *index > n-1 {
		*index = n - 1
	}
	m.state.EnsureVisible()
}

// updateViewportHeight calculates the rows available for the employee list
func (m *Model) updateViewportHeight() {
	// Title (2), search line (2), pane border and title (3), status (1), hints (1), padding (2)
	reservedLines := 11

	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}
	m.state.EnsureVisible()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}
