// Package ui is the interactive article list.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilgisen/headlines/internal/logger"
	"github.com/bilgisen/headlines/internal/models"
	"github.com/bilgisen/headlines/internal/push"
	"github.com/bilgisen/headlines/internal/sorting"
	"github.com/bilgisen/headlines/internal/storage"
)

// Feed is the presenter surface the screen drives
type Feed interface {
	FetchArticles(ctx context.Context)
	Updates() <-chan *models.NewsResponse
}

type directionLoadedMsg struct {
	direction sorting.Direction
	err       error
}

type newsMsg struct {
	news *models.NewsResponse
}

type openURLResultMsg struct {
	url string
	err error
}

type preferenceSavedMsg struct {
	err error
}

type clearStatusMsg struct {
	id int
}

// Model is the bubbletea model for the article list
type Model struct {
	ctx       context.Context
	feed      Feed
	store     storage.Store
	openURLFn func(string) error
	loc       *time.Location

	state     State
	listening bool
	banner    *push.Notification
	status    string
	statusID  int
	width     int
	height    int

	spinner spinner.Model
	help    help.Model
	keys    keyMap
}

// NewModel creates the screen in the Loading state
func NewModel(ctx context.Context, feed Feed, store storage.Store) Model {
	return Model{
		ctx:       ctx,
		feed:      feed,
		store:     store,
		openURLFn: OpenURLInBrowser,
		loc:       time.Local,
		state:     NewState(sorting.NewestFirst),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
		keys:      defaultKeyMap(),
	}
}

// SetURLOpener replaces the browser hand-off
func (m *Model) SetURLOpener(fn func(string) error) {
	m.openURLFn = fn
}

// SetLocation sets the zone publish times are displayed in
func (m *Model) SetLocation(loc *time.Location) {
	m.loc = loc
}

// State returns the current screen state
func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDirectionCmd(m.ctx, m.store))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case directionLoadedMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			logger.Error().Err(msg.err).Msg("Error loading sort preference")
			m, cmd = m.withStatus("Could not read sort preference")
		}
		m.state = m.state.WithDirection(msg.direction)
		m.feed.FetchArticles(m.ctx)
		if m.listening {
			return m, cmd
		}
		m.listening = true
		return m, tea.Batch(cmd, waitForNewsCmd(m.feed.Updates()))

	case newsMsg:
		// a nil feed leaves the spinner up
		m.state = m.state.WithFeed(msg.news)
		return m, waitForNewsCmd(m.feed.Updates())

	case PushMsg:
		n := msg.Notification
		m.banner = &n
		return m, nil

	case openURLResultMsg:
		if msg.err != nil {
			logger.Error().Err(msg.err).Str("url", msg.url).Msg("Error opening article")
			return m.withStatus("Could not open browser")
		}
		return m.withStatus("Opened in browser")

	case preferenceSavedMsg:
		if msg.err != nil {
			logger.Error().Err(msg.err).Msg("Error saving sort preference")
			return m.withStatus("Could not save sort preference")
		}
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Relaunch):
		if m.banner != nil && m.banner.Relaunch {
			return m.relaunch()
		}
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.banner = nil
		return m, nil
	}

	if m.state.Phase != Loaded {
		return m, nil
	}

	visible := m.visibleRows()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.state = m.state.Moved(-1, visible)
	case key.Matches(msg, m.keys.Down):
		m.state = m.state.Moved(1, visible)
	case key.Matches(msg, m.keys.PageUp):
		m.state = m.state.Moved(-visible, visible)
	case key.Matches(msg, m.keys.PageDown):
		m.state = m.state.Moved(visible, visible)
	case key.Matches(msg, m.keys.Top):
		m.state = m.state.Moved(-len(m.state.Articles), visible)
	case key.Matches(msg, m.keys.Bottom):
		m.state = m.state.Moved(len(m.state.Articles), visible)
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Sort):
		m.state = m.state.Toggled()
		return m, persistDirectionCmd(m.ctx, m.store, m.state.Direction)
	}
	return m, nil
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	article, ok := m.state.Selected()
	if !ok {
		return m, nil
	}
	url, err := validateArticleURL(article.URL)
	if err != nil {
		return m.withStatus(err.Error())
	}
	return m, openURLCmd(url, m.openURLFn)
}

// relaunch returns to a fresh main screen: Loading, direction re-read, feed
// fetched again
func (m Model) relaunch() (tea.Model, tea.Cmd) {
	m.banner = nil
	m.state = NewState(m.state.Direction)
	return m, tea.Batch(m.spinner.Tick, loadDirectionCmd(m.ctx, m.store))
}

func (m Model) withStatus(status string) (Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, 4*time.Second)
}

func loadDirectionCmd(ctx context.Context, store storage.Store) tea.Cmd {
	return func() tea.Msg {
		d, err := storage.LoadSortDirection(ctx, store)
		return directionLoadedMsg{direction: d, err: err}
	}
}

func persistDirectionCmd(ctx context.Context, store storage.Store, d sorting.Direction) tea.Cmd {
	return func() tea.Msg {
		return preferenceSavedMsg{err: storage.SaveSortDirection(ctx, store, d)}
	}
}

func waitForNewsCmd(updates <-chan *models.NewsResponse) tea.Cmd {
	return func() tea.Msg {
		return newsMsg{news: <-updates}
	}
}

func openURLCmd(url string, openFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn == nil {
			return openURLResultMsg{url: url, err: fmt.Errorf("no URL handler configured")}
		}
		return openURLResultMsg{url: url, err: openFn(url)}
	}
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
