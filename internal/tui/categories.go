package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/screen"
)

type categoriesStateMsg struct {
	id    int
	state screen.CategoriesState
}

func (m categoriesStateMsg) target() int { return m.id }

// categoriesScreen lists the site's top-level categories.
type categoriesScreen struct {
	id          int
	ctrl        *screen.CategoriesController
	states      <-chan screen.CategoriesState
	unsubscribe func()

	state  screen.CategoriesState
	cursor int
	list   listWindow
}

func newCategoriesScreen(id int, repo repository.Repository, opts []screen.Option) *categoriesScreen {
	ctrl := screen.NewCategoriesController(repo, opts...)
	states, unsubscribe := ctrl.Subscribe()
	return &categoriesScreen{
		id:          id,
		ctrl:        ctrl,
		states:      states,
		unsubscribe: unsubscribe,
		state:       screen.CategoriesState{Loading: true},
	}
}

func (s *categoriesScreen) ID() int         { return s.id }
func (s *categoriesScreen) Capturing() bool { return false }

func (s *categoriesScreen) Init() tea.Cmd {
	return s.wait()
}

func (s *categoriesScreen) wait() tea.Cmd {
	id := s.id
	return waitFor(s.states, func(st screen.CategoriesState) tea.Msg {
		return categoriesStateMsg{id: id, state: st}
	})
}

func (s *categoriesScreen) Resize(_, height int) {
	s.list.height = height - chromeLines
}

func (s *categoriesScreen) Close() {
	s.unsubscribe()
	s.ctrl.Close()
}

func (s *categoriesScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case categoriesStateMsg:
		s.state = msg.state
		s.cursor = clamp(s.cursor, len(s.state.Categories))
		return s.wait()

	case tea.KeyMsg:
		n := len(s.state.Categories)
		switch {
		case key.Matches(msg, bindings.Up):
			s.cursor = clamp(s.cursor-1, n)
		case key.Matches(msg, bindings.Down):
			s.cursor = clamp(s.cursor+1, n)
		case key.Matches(msg, bindings.Top):
			s.cursor = 0
		case key.Matches(msg, bindings.Bottom):
			s.cursor = clamp(n-1, n)
		case key.Matches(msg, bindings.Open):
			if n == 0 {
				return nil
			}
			c := s.state.Categories[s.cursor]
			id := c.ID
			return func() tea.Msg { return openSearchMsg{categoryID: &id, name: c.Name} }
		case key.Matches(msg, bindings.Search):
			return func() tea.Msg { return openSearchMsg{} }
		case key.Matches(msg, bindings.Retry):
			if s.state.Loading {
				return nil
			}
			return func() tea.Msg {
				s.ctrl.Fetch()
				return nil
			}
		}
	}
	return nil
}

func (s *categoriesScreen) View(f frame) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render(fmt.Sprintf("Categorías · %s", f.siteID)))
	b.WriteString("\n")

	switch {
	case s.state.Loading && len(s.state.Categories) == 0:
		b.WriteString(f.spinner + " Cargando categorías…\n")
	case s.state.Err != nil:
		b.WriteString(f.styles.Error.Render(s.state.Err.Error()))
		b.WriteString("\n")
	case len(s.state.Categories) == 0:
		b.WriteString(f.styles.Muted.Render("No hay categorías."))
		b.WriteString("\n")
	default:
		start, end := s.list.window(s.cursor, len(s.state.Categories))
		for i := start; i < end; i++ {
			c := s.state.Categories[i]
			line := fmt.Sprintf("%-10s %s", c.ID, c.Name)
			if i == s.cursor {
				b.WriteString(f.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(f.styles.Text.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(f.styles.Help.Render(helpLine(bindings.Up, bindings.Down, bindings.Open, bindings.Search, bindings.Retry, bindings.Quit)))
	return b.String()
}
