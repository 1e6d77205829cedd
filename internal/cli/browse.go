package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/cli/formatter"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// projectsLoadedMsg carries the result of a project list query.
type projectsLoadedMsg struct {
	projects []*domain.Project
	err      error
}

// statusChangedMsg carries the result of an approve or reject action.
type statusChangedMsg struct {
	project *domain.Project
	err     error
}

type browseKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Back    key.Binding
	Filter  key.Binding
	Approve key.Binding
	Reject  key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Approve: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		Reject:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reject")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Filter, k.Approve, k.Reject, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.Filter, k.Approve, k.Reject, k.Reload},
		{k.Help, k.Quit},
	}
}

// detailKeyMap scrolls the detail pane with arrows and paging only, so
// letter keys stay free for actions.
func detailKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// browseModel is a two-pane quote browser: a filterable list and a
// scrollable detail view of the selected quote.
type browseModel struct {
	ctx      context.Context
	projects projectBrowser
	keys     browseKeyMap
	help     help.Model
	detail   viewport.Model

	all     []*domain.Project
	cursor  int
	loading bool
	err     error
	flash   string

	filtering bool
	filter    string

	showDetail bool
	width      int
	height     int
	quitting   bool
}

// projectBrowser is the slice of ProjectService the browser needs.
type projectBrowser interface {
	List(ctx context.Context, f repository.ProjectFilter) ([]*domain.Project, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
}

func newBrowseModel(ctx context.Context, projects projectBrowser) browseModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = detailKeyMap()
	return browseModel{
		ctx:      ctx,
		projects: projects,
		keys:     defaultBrowseKeys(),
		help:     help.New(),
		detail:   vp,
		loading:  true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.load()
}

func (m browseModel) load() tea.Cmd {
	ctx, projects := m.ctx, m.projects
	return func() tea.Msg {
		ps, err := projects.List(ctx, repository.ProjectFilter{})
		return projectsLoadedMsg{projects: ps, err: err}
	}
}

func (m browseModel) setStatus(p *domain.Project, status domain.ProjectStatus) tea.Cmd {
	ctx, projects, id := m.ctx, m.projects, p.ID
	return func() tea.Msg {
		updated, err := projects.UpdateStatus(ctx, id, status)
		return statusChangedMsg{project: updated, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-3, 1)
		return m, nil

	case projectsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.all = msg.projects
		}
		m.clampCursor()
		return m, nil

	case statusChangedMsg:
		if msg.err != nil {
			m.flash = "Error: " + strings.TrimPrefix(msg.err.Error(), domain.ErrValidation.Error()+": ")
			return m, nil
		}
		m.replace(msg.project)
		m.flash = fmt.Sprintf("%s is now %s", msg.project.Name, formatter.Humanize(string(msg.project.Status)))
		if m.showDetail {
			m.detail.SetContent(formatter.FormatProjectDetail(msg.project))
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.showDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if p := m.selected(); p != nil {
			m.showDetail = true
			m.detail.SetContent(formatter.FormatProjectDetail(p))
			m.detail.GotoTop()
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter = ""
		m.cursor = 0
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.flash = ""
		return m, m.load()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return m.updateAction(msg)
	}
	return m, nil
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.showDetail = false
		return m, nil
	case key.Matches(msg, m.keys.Approve), key.Matches(msg, m.keys.Reject):
		return m.updateAction(msg)
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m browseModel) updateAction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.selected()
	if p == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Approve):
		return m, m.setStatus(p, domain.ProjectApproved)
	case key.Matches(msg, m.keys.Reject):
		return m, m.setStatus(p, domain.ProjectRejected)
	}
	return m, nil
}

func (m browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
		}
	case tea.KeySpace:
		m.filter += " "
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
	}
	m.cursor = 0
	return m, nil
}

// visible returns the quotes matching the filter by name, client or id.
func (m browseModel) visible() []*domain.Project {
	if m.filter == "" {
		return m.all
	}
	lf := strings.ToLower(m.filter)
	var out []*domain.Project
	for _, p := range m.all {
		if strings.Contains(strings.ToLower(p.Name), lf) ||
			strings.Contains(strings.ToLower(p.ClientName), lf) ||
			strings.HasPrefix(p.ID, lf) {
			out = append(out, p)
		}
	}
	return out
}

func (m browseModel) selected() *domain.Project {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

func (m *browseModel) replace(p *domain.Project) {
	for i, existing := range m.all {
		if existing.ID == p.ID {
			m.all[i] = p
			return
		}
	}
}

func (m *browseModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showDetail {
		return m.detail.View() + "\n" + m.footer()
	}

	var b strings.Builder
	b.WriteString(formatter.Header("QUOTES") + "\n\n")
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.err != nil:
		b.WriteString("Error: " + m.err.Error() + "\n")
	default:
		visible := m.visible()
		if len(visible) == 0 {
			b.WriteString(formatter.Dim("No quotes match.") + "\n")
		}
		for i, p := range visible {
			cursor := "  "
			if i == m.cursor {
				cursor = formatter.Bold("> ")
			}
			fmt.Fprintf(&b, "%s%-8s  %-28s %12s  %s  %s\n",
				cursor, p.DisplayID(), truncate(p.Name, 28),
				formatter.Money(p.Estimate.ClientPrice.TotalPrice),
				formatter.StatusPill(p.Status),
				formatter.HealthIndicator(p.Estimate.Profit.HealthStatus))
		}
	}
	if m.filtering || m.filter != "" {
		b.WriteString("\nFilter: " + m.filter)
		if m.filtering {
			b.WriteString("_")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.footer())
	return b.String()
}

func (m browseModel) footer() string {
	var lines []string
	if m.flash != "" {
		lines = append(lines, m.flash)
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse, approve and reject saved quotes interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return errNotInteractive
			}
			p := tea.NewProgram(newBrowseModel(cmd.Context(), app.Projects),
				tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
}
