package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pitchside/internal/state"
)

// Options configures the UI.
type Options struct {
	Browser   *state.Browser
	ThemeName string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	browser *state.Browser
	logger  *slog.Logger
	keys    keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// View state; view is always browser.Derive(state)
	state state.State
	view  state.View

	// Table state
	cursor int // row within the visible page
	pager  paginator.Model

	// Search box
	search    textinput.Model
	searching bool

	// Help overlay
	showHelp bool

	// One-line message in the command bar, cleared on the next key
	notice notice
}

type noticeLevel int

const (
	noticeWarn noticeLevel = iota
	noticeSuccess
	noticeError
)

type notice struct {
	text  string
	level noticeLevel
}

// style picks the notice color from the theme.
func (n notice) style(styles Styles) lipgloss.Style {
	switch n.level {
	case noticeSuccess:
		return styles.SuccessText
	case noticeError:
		return styles.DangerText
	default:
		return styles.WarningText
	}
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	browser := opts.Browser
	if browser == nil {
		browser = state.NewBrowser(nil, state.DefaultPageSize, state.ResetPage)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "club name"
	ti.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = browser.PageSize()

	m := Model{
		browser: browser,
		logger:  logger,
		keys:    DefaultKeyMap(),
		theme:   GetTheme(opts.ThemeName),
		state:   state.Initial(),
		search:  ti,
		pager:   pager,
	}
	m.derive()
	return m
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

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case linkCopiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy link failed", "error", msg.err)
			m.notice = notice{text: "Copy failed: " + msg.err.Error(), level: noticeError}
		} else {
			m.notice = notice{text: "Link copied", level: noticeSuccess}
		}
		return m, nil
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

	if m.view.Selected != nil {
		return m.renderDetail(*m.view.Selected)
	}

	return m.renderMain()
}

// dispatch applies an action and re-derives every view from the result.
func (m *Model) dispatch(action state.Action) {
	m.state = m.browser.Apply(m.state, action)
	m.derive()
}

func (m *Model) derive() {
	m.view = m.browser.Derive(m.state)

	if m.cursor >= len(m.view.Page) {
		m.cursor = len(m.view.Page) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.pager.TotalPages = max(m.view.TotalPages, 1)
	m.pager.Page = min(max(m.view.CurrentPage-1, 0), m.pager.TotalPages-1)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	m.notice = notice{}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.view.Selected != nil {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.logger.Debug("theme changed", "theme", m.theme.Name)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.view.SearchTerm != "" {
			m.search.SetValue("")
			m.dispatch(state.SetSearch{Term: ""})
		}

	case key.Matches(msg, m.keys.NextPage):
		if m.view.CanNext {
			m.dispatch(state.Navigate{Direction: state.Next})
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.PrevPage):
		if m.view.CanPrev {
			m.dispatch(state.Navigate{Direction: state.Previous})
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Page)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.view.Page)-1, 0)

	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.view.Page) {
			team := m.view.Page[m.cursor]
			m.dispatch(state.Select{Team: &team})
			m.logger.Debug("team selected", "club", team.Club)
		}
	}

	return m, nil
}

// handleSearchKey feeds the search box and filters on every change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.dispatch(state.SetSearch{Term: ""})
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.state.SearchTerm {
		m.dispatch(state.SetSearch{Term: term})
	}
	return m, cmd
}

// handleDetailKey handles keys while the detail overlay is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.dispatch(state.Deselect{})
		return m, nil

	case key.Matches(msg, m.keys.CopyLink):
		url := strings.TrimSpace(m.view.Selected.URL)
		if url == "" {
			m.notice = notice{text: "No link for this club"}
			return m, nil
		}
		return m, copyLinkCmd(url)

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// renderMain renders the table screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderPagination())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
