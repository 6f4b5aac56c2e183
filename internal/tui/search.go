package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/screen"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

type searchStateMsg struct {
	id    int
	state screen.SearchState
}

func (m searchStateMsg) target() int { return m.id }

// searchScreen shows a query box over an incrementally loaded result list.
type searchScreen struct {
	id          int
	ctrl        *screen.SearchController
	states      <-chan screen.SearchState
	unsubscribe func()
	title       string

	state   screen.SearchState
	input   textinput.Model
	editing bool
	submit  bool // search the initial query on Init
	cursor  int
	list    listWindow

	// triggeredAt is the result count when LoadMore was last requested.
	// Row count changes re-arm the trigger; a failed page does not.
	triggeredAt int
}

// newSearchScreen creates a search over categoryID, or the whole site when
// it is nil. An unscoped screen starts in the query box unless submit is
// set, in which case query is searched right away.
func newSearchScreen(
	id int,
	repo repository.Repository,
	categoryID *string,
	categoryName string,
	query string,
	submit bool,
	opts []screen.Option,
) *searchScreen {
	ctrl := screen.NewSearchController(repo, categoryID, append(opts, screen.WithQuery(query))...)
	states, unsubscribe := ctrl.Subscribe()

	in := textinput.New()
	in.Placeholder = "¿Qué estás buscando?"
	in.Prompt = "🔍 "
	in.CharLimit = 120
	in.SetValue(query)

	title := "Buscar"
	if categoryID != nil {
		title = categoryName
		if title == "" {
			title = *categoryID
		}
	}

	s := &searchScreen{
		id:          id,
		ctrl:        ctrl,
		states:      states,
		unsubscribe: unsubscribe,
		title:       title,
		state:       ctrl.Snapshot(),
		input:       in,
		submit:      submit && strings.TrimSpace(query) != "",
		triggeredAt: -1,
	}
	if categoryID == nil && !s.submit {
		s.editing = true
		s.input.Focus()
	}
	return s
}

func (s *searchScreen) ID() int         { return s.id }
func (s *searchScreen) Capturing() bool { return s.editing }

func (s *searchScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.wait()}
	if s.editing {
		cmds = append(cmds, textinput.Blink)
	}
	if s.submit {
		cmds = append(cmds, s.search(s.input.Value()))
	}
	return tea.Batch(cmds...)
}

func (s *searchScreen) wait() tea.Cmd {
	id := s.id
	return waitFor(s.states, func(st screen.SearchState) tea.Msg {
		return searchStateMsg{id: id, state: st}
	})
}

func (s *searchScreen) Resize(width, height int) {
	s.list.height = height - chromeLines - 3 // query box
	s.input.Width = max(width-8, 10)
}

func (s *searchScreen) Close() {
	s.unsubscribe()
	s.ctrl.Close()
}

// search runs a fresh search off the UI goroutine.
func (s *searchScreen) search(query string) tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		ctrl.Search(query)
		return nil
	}
}

func (s *searchScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchStateMsg:
		prev := len(s.state.Results)
		s.state = msg.state
		if len(s.state.Results) < prev {
			s.cursor = 0
			s.triggeredAt = -1
		}
		s.cursor = clamp(s.cursor, len(s.state.Results))
		return tea.Batch(s.wait(), s.maybeLoadMore(false))

	case tea.WindowSizeMsg:
		return s.maybeLoadMore(false)

	case tea.KeyMsg:
		if s.editing {
			return s.updateInput(msg)
		}
		return s.updateList(msg)
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

func (s *searchScreen) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		q := strings.TrimSpace(s.input.Value())
		if q == "" {
			return nil
		}
		s.editing = false
		s.input.Blur()
		s.cursor = 0
		s.triggeredAt = -1
		return tea.Batch(s.search(q), func() tea.Msg { return querySentMsg{query: q} })
	case tea.KeyEsc:
		if !s.state.Searched && s.state.Err == nil {
			return back
		}
		s.editing = false
		s.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *searchScreen) updateList(msg tea.KeyMsg) tea.Cmd {
	n := len(s.state.Results)
	moved := true
	switch {
	case key.Matches(msg, bindings.Back):
		return back
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
		id := s.state.Results[s.cursor].ID
		return func() tea.Msg { return openDetailMsg{productID: id} }
	case key.Matches(msg, bindings.Search):
		s.editing = true
		return s.input.Focus()
	case key.Matches(msg, bindings.Retry):
		if s.state.Err == nil || s.state.Loading {
			return nil
		}
		return s.search(s.state.Query)
	default:
		moved = false
	}

	if moved {
		return s.maybeLoadMore(s.cursor == n-1)
	}
	return nil
}

// maybeLoadMore asks for the next page once the last accumulated row is
// rendered. Reaching the last row with the cursor re-arms the trigger.
func (s *searchScreen) maybeLoadMore(reachedLast bool) tea.Cmd {
	n := len(s.state.Results)
	last := s.cursor
	if s.list.height > 0 {
		last = s.list.lastVisible(s.cursor, n)
	}
	if !s.state.ShouldLoadMore(last) {
		return nil
	}
	if !reachedLast && s.triggeredAt == n {
		return nil
	}
	s.triggeredAt = n

	ctrl := s.ctrl
	return func() tea.Msg {
		ctrl.LoadMore()
		return nil
	}
}

func (s *searchScreen) View(f frame) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render(s.title))
	b.WriteString("\n")
	b.WriteString(f.styles.InputBox.Render(s.input.View()))
	b.WriteString("\n")

	st := s.state
	switch {
	case st.Loading:
		b.WriteString(f.spinner + " Buscando…\n")
	case st.Err != nil:
		b.WriteString(f.styles.Error.Render(st.Err.Error()))
		b.WriteString("\n")
	case st.Searched && len(st.Results) == 0:
		b.WriteString(f.styles.Muted.Render("No hay publicaciones que coincidan con tu búsqueda."))
		b.WriteString("\n")
	}

	if len(st.Results) > 0 {
		start, end := s.list.window(s.cursor, len(st.Results))
		for i := start; i < end; i++ {
			b.WriteString(s.row(f, i, &st.Results[i]))
			b.WriteString("\n")
		}
		b.WriteString(s.status(f))
		b.WriteString("\n")
	}

	help := []key.Binding{bindings.Up, bindings.Down, bindings.Open, bindings.Search, bindings.Back}
	if st.Err != nil {
		help = append(help, bindings.Retry)
	}
	if !s.editing {
		help = append(help, bindings.Quit)
	}
	b.WriteString(f.styles.Help.Render(helpLine(help...)))
	return b.String()
}

func (s *searchScreen) row(f frame, i int, p *domain.Product) string {
	cond := p.NormalizedCondition()
	line := fmt.Sprintf("%s  %-14s %s  %s",
		truncate(p.Title, 40),
		p.FormattedPrice,
		f.styles.conditionLabel(cond.Label(), cond == domain.ConditionUsed),
		p.FormattedAddress,
	)
	if i == s.cursor {
		return f.styles.Selected.Render("> ") + line
	}
	return "  " + line
}

func (s *searchScreen) status(f frame) string {
	st := s.state
	shown := humanize.Comma(int64(len(st.Results)))
	line := shown + " resultados"
	if total, ok := st.KnownTotal(); ok {
		line = fmt.Sprintf("%s de %s resultados", shown, humanize.Comma(int64(total)))
	}
	if st.LoadingMore {
		line += " " + f.spinner + " cargando más…"
	}
	return f.styles.Subtitle.Render(line)
}

// truncate shortens s to maxLen runes and pads shorter strings to maxLen.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s + strings.Repeat(" ", maxLen-len(r))
	}
	return string(r[:maxLen-1]) + "…"
}
