// Package tui provides the Bubble Tea terminal UI behind `mercado-search
// browse`. Screens form a stack: categories, then search, then detail.
// Each screen owns one screen controller for as long as it is on the
// stack and closes it when popped.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/screen"
	"github.com/donaldgifford/mercado-search/pkg/logger"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Repo      repository.Repository
	SiteID    string // overrides the remembered site when set
	Query     string // opens a search for Query on start when set
	Logger    *slog.Logger
	PrefsPath string
}

// view is implemented by every screen on the stack.
type view interface {
	ID() int
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(v frame) string
	Resize(width, height int)
	// Capturing reports whether keys go to a text input.
	Capturing() bool
	Close()
}

// frame carries what a screen needs to render.
type frame struct {
	width   int
	height  int
	spinner string
	styles  Styles
	siteID  string
}

// Navigation messages emitted by screens.
type (
	openSearchMsg struct {
		categoryID *string
		name       string
	}
	openDetailMsg struct{ productID string }
	backMsg       struct{}
	querySentMsg  struct{ query string }
	prefsSavedMsg struct{ err error }
)

// routed is implemented by messages addressed to one screen.
type routed interface {
	target() int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	repo      repository.Repository
	log       *slog.Logger
	prefsPath string
	prefs     Prefs
	siteID    string

	styles  Styles
	spinner spinner.Model

	stack  []view
	nextID int
	width  int
	height int
}

// New creates the root model with the categories screen on the stack.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = DefaultPrefsPath()
	}
	prefs := LoadPrefs(prefsPath)

	siteID := opts.SiteID
	if siteID == "" {
		siteID = prefs.SiteID
	}
	if siteID == "" {
		siteID = domain.DefaultSiteID
	}

	styles := newStyles(mercado)
	m := Model{
		ctx:       ctx,
		repo:      opts.Repo,
		log:       logger.Component(opts.Logger, "tui"),
		prefsPath: prefsPath,
		prefs:     prefs,
		siteID:    siteID,
		styles:    styles,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.Title.UnsetMarginBottom()),
		),
	}

	m.push(newCategoriesScreen(m.allocID(), m.repo, m.screenOptions()))
	if q := strings.TrimSpace(opts.Query); q != "" {
		m.push(newSearchScreen(m.allocID(), m.repo, nil, "", q, true, m.screenOptions()))
	}

	return m
}

// Run starts the UI and blocks until the user quits or ctx is done.
func Run(opts Options) error {
	m := New(opts)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.closeAll()
	} else {
		m.closeAll()
	}
	if err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}

func (m *Model) allocID() int {
	m.nextID++
	return m.nextID
}

func (m *Model) screenOptions() []screen.Option {
	return []screen.Option{
		screen.WithContext(m.ctx),
		screen.WithLogger(m.log),
		screen.WithSiteID(m.siteID),
	}
}

func (m *Model) push(v view) {
	if m.width > 0 {
		v.Resize(m.width, m.height)
	}
	m.stack = append(m.stack, v)
}

func (m *Model) top() view {
	return m.stack[len(m.stack)-1]
}

// pop closes and removes the top screen. The root screen stays.
func (m *Model) pop() {
	if len(m.stack) <= 1 {
		return
	}
	v := m.top()
	m.stack = m.stack[:len(m.stack)-1]
	v.Close()
}

func (m *Model) closeAll() {
	for i := len(m.stack) - 1; i >= 0; i-- {
		m.stack[i].Close()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for _, v := range m.stack {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" ||
			(!m.top().Capturing() && key.Matches(msg, bindings.Quit)) {
			m.closeAll()
			return m, tea.Quit
		}
		return m, m.top().Update(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for _, v := range m.stack {
			v.Resize(msg.Width, msg.Height)
		}
		return m, m.top().Update(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case openSearchMsg:
		query := ""
		if msg.categoryID == nil {
			query = m.prefs.LastQuery
		}
		v := newSearchScreen(m.allocID(), m.repo, msg.categoryID, msg.name, query, false, m.screenOptions())
		m.push(v)
		return m, v.Init()

	case openDetailMsg:
		id := msg.productID
		v := newDetailScreen(m.allocID(), m.repo, &id, m.screenOptions())
		m.push(v)
		return m, v.Init()

	case backMsg:
		m.pop()
		return m, nil

	case querySentMsg:
		m.prefs.LastQuery = msg.query
		m.prefs.SiteID = m.siteID
		return m, savePrefsCmd(m.prefsPath, m.prefs)

	case prefsSavedMsg:
		if msg.err != nil {
			m.log.Warn("saving preferences failed", "error", msg.err)
		}
		return m, nil

	case routed:
		for _, v := range m.stack {
			if v.ID() == msg.target() {
				return m, v.Update(msg)
			}
		}
		// The screen was popped; its controller is already closed.
		return m, nil
	}

	return m, m.top().Update(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.stack) == 0 {
		return ""
	}
	return m.top().View(frame{
		width:   m.width,
		height:  m.height,
		spinner: m.spinner.View(),
		styles:  m.styles,
		siteID:  m.siteID,
	})
}

func savePrefsCmd(path string, p Prefs) tea.Cmd {
	return func() tea.Msg {
		return prefsSavedMsg{err: SavePrefs(path, p)}
	}
}

// waitFor delivers the next state published on ch, wrapped by wrap. A
// closed channel yields no message.
func waitFor[S any](ch <-chan S, wrap func(S) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(s)
	}
}

func back() tea.Msg { return backMsg{} }

// clamp bounds i to [0, n-1], or 0 when n is 0.
func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
