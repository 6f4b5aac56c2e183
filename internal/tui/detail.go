package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/screen"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

type detailStateMsg struct {
	id    int
	state screen.DetailState
}

func (m detailStateMsg) target() int { return m.id }

// detailScreen shows one product with its description in a scrollable
// viewport.
type detailScreen struct {
	id          int
	productID   *string
	ctrl        *screen.DetailController
	states      <-chan screen.DetailState
	unsubscribe func()

	state    screen.DetailState
	viewport viewport.Model
	width    int
}

func newDetailScreen(id int, repo repository.Repository, productID *string, opts []screen.Option) *detailScreen {
	ctrl := screen.NewDetailController(repo, productID, opts...)
	states, unsubscribe := ctrl.Subscribe()
	return &detailScreen{
		id:          id,
		productID:   productID,
		ctrl:        ctrl,
		states:      states,
		unsubscribe: unsubscribe,
		state:       screen.DetailState{Loading: true},
		viewport:    viewport.New(80, 20),
	}
}

func (s *detailScreen) ID() int         { return s.id }
func (s *detailScreen) Capturing() bool { return false }

func (s *detailScreen) Init() tea.Cmd {
	return s.wait()
}

func (s *detailScreen) wait() tea.Cmd {
	id := s.id
	return waitFor(s.states, func(st screen.DetailState) tea.Msg {
		return detailStateMsg{id: id, state: st}
	})
}

func (s *detailScreen) Resize(width, height int) {
	s.width = width
	s.viewport.Width = width
	s.viewport.Height = max(height-chromeLines, 3)
	s.refresh()
}

func (s *detailScreen) Close() {
	s.unsubscribe()
	s.ctrl.Close()
}

func (s *detailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case detailStateMsg:
		s.state = msg.state
		s.refresh()
		return s.wait()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, bindings.Back):
			return back
		case key.Matches(msg, bindings.Retry):
			if s.state.Err == nil || s.state.Loading {
				return nil
			}
			ctrl, id := s.ctrl, s.productID
			return func() tea.Msg {
				ctrl.Fetch(id)
				return nil
			}
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// refresh re-renders the product into the viewport.
func (s *detailScreen) refresh() {
	if s.state.Product == nil {
		s.viewport.SetContent("")
		return
	}
	s.viewport.SetContent(renderProduct(newStyles(mercado), s.state.Product, s.width))
	s.viewport.GotoTop()
}

func (s *detailScreen) View(f frame) string {
	var b strings.Builder

	title := "Detalle"
	if p := s.state.Product; p != nil {
		title = p.Title
	}
	b.WriteString(f.styles.Title.Render(title))
	b.WriteString("\n")

	switch {
	case s.state.Loading:
		b.WriteString(f.spinner + " Cargando publicación…\n")
	case s.state.Err != nil:
		b.WriteString(f.styles.Error.Render(s.state.Err.Error()))
		b.WriteString("\n")
	default:
		b.WriteString(s.viewport.View())
		b.WriteString("\n")
	}

	help := []key.Binding{bindings.Up, bindings.Down, bindings.Back}
	if s.state.Err != nil {
		help = append(help, bindings.Retry)
	}
	help = append(help, bindings.Quit)
	b.WriteString(f.styles.Help.Render(helpLine(help...)))
	return b.String()
}

// renderProduct lays out the detail body: price line, condition, location,
// link and the wrapped description.
func renderProduct(st Styles, p *domain.Product, width int) string {
	var b strings.Builder

	cond := p.NormalizedCondition()
	b.WriteString(st.Price.Render(p.FormattedPrice))
	b.WriteString("  ")
	b.WriteString(st.conditionLabel(cond.Label(), cond == domain.ConditionUsed))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("📍 " + p.FormattedAddress))
	b.WriteString("\n")
	if n := len(p.Pictures); n > 0 {
		b.WriteString(st.Muted.Render(fmt.Sprintf("%d fotos", n)))
		b.WriteString("\n")
	}
	if p.Permalink != "" {
		b.WriteString(st.Muted.Render(p.Permalink))
		b.WriteString("\n")
	}

	if p.Description != "" {
		b.WriteString("\n")
		para := st.Paragraph
		if width > 4 {
			para = para.Width(width - 2)
		}
		b.WriteString(para.Render(p.Description))
		b.WriteString("\n")
	}

	return b.String()
}
