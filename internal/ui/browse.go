package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ghactivity/internal/github"
)

// BrowseOptions configures the interactive event browser.
type BrowseOptions struct {
	Context   context.Context
	Fetcher   github.EventFetcher
	Username  string
	ThemeName string
}

// Model is the Bubble Tea state of the event browser.
type Model struct {
	ctx      context.Context
	fetcher  github.EventFetcher
	username string
	keys     keyMap
	renderer *lipgloss.Renderer
	theme    Theme
	styles   Styles

	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	loading bool
	events  []github.Event
	err     error
}

// New creates the browser model. Fetching starts from Init.
func New(opts BrowseOptions) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	renderer := lipgloss.NewRenderer(os.Stdout)
	theme := GetTheme(opts.ThemeName)
	return Model{
		ctx:      ctx,
		fetcher:  opts.Fetcher,
		username: opts.Username,
		keys:     DefaultKeyMap(),
		renderer: renderer,
		theme:    theme,
		styles:   theme.Styles(renderer),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading:  true,
	}
}

// Err returns the error of the most recent fetch, if any.
func (m Model) Err() error {
	return m.err
}

// Events returns the events of the most recent successful fetch.
func (m Model) Events() []github.Event {
	return m.events
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchEventsCmd(m.ctx, m.fetcher, m.username))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(m.height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(m.width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = bodyHeight
		}
		m.updateContent()
		return m, nil

	case eventsMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.events = msg.events
		}
		m.updateContent()
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, fetchEventsCmd(m.ctx, m.fetcher, m.username))

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles(m.renderer)
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return strings.Join([]string{m.renderHeader(), m.viewport.View(), m.renderFooter()}, "\n")
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("ghactivity · " + m.username)
	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " Fetching events..."
	case m.err != nil:
		status = m.styles.Danger.Render("Error: " + m.err.Error())
	default:
		status = m.styles.Muted.Render(fmt.Sprintf("%d events", len(m.events)))
	}
	return title + "  " + status
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, len(m.keys.shortHelp()))
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+strings.ToLower(h.Desc))
	}
	return m.styles.Muted.Render(strings.Join(parts, " · "))
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	if len(m.events) == 0 {
		if m.err == nil && !m.loading {
			m.viewport.SetContent(m.styles.Muted.Render("No public events."))
		} else {
			m.viewport.SetContent("")
		}
		return
	}
	r := &Renderer{theme: m.theme, styles: m.styles}
	m.viewport.SetContent(strings.TrimSuffix(r.Events(m.events), "\n"))
}

// Messages

type eventsMsg struct {
	events []github.Event
	err    error
}

// Commands

func fetchEventsCmd(ctx context.Context, fetcher github.EventFetcher, username string) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return eventsMsg{err: fmt.Errorf("no event fetcher configured")}
		}
		events, err := fetcher.FetchEvents(ctx, username)
		return eventsMsg{events: events, err: err}
	}
}

// Browse runs the browser until the user quits and returns the model's last
// fetch error so callers can report it.
func Browse(opts BrowseOptions) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
