package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const cardsPerRow = 3

// listModel is the gallery: category tabs, a search box and character cards.
type listModel struct {
	ctx     context.Context
	archive service.ClientArchiveService
	auth    service.ClientAuthService

	category  int
	search    textinput.Model
	searching bool
	cursor    int

	loading bool
	errMsg  string
}

func newListModel(ctx context.Context, archive service.ClientArchiveService, auth service.ClientAuthService) *listModel {
	search := textinput.New()
	search.Placeholder = "name, slug or label"
	search.CharLimit = 64
	search.Width = 40
	search.Prompt = "/ "

	return &listModel{
		ctx:     ctx,
		archive: archive,
		auth:    auth,
		search:  search,
	}
}

func (m *listModel) Init() tea.Cmd {
	return m.reload()
}

// reload starts a full refetch of the character list.
func (m *listModel) reload() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	archive := m.archive
	return func() tea.Msg {
		return refreshDoneMsg{err: archive.Refresh(ctx)}
	}
}

func (m *listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.loading = false
		m.errMsg = humanizeServerUnavailableError(msg.err)
		m.clampCursor()
		return m, nil
	case listChangedMsg, deleteDoneMsg:
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *listModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m *listModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()
	admin := m.auth.IsAdmin()

	switch {
	case key.Matches(msg, keys.tab):
		m.category = (m.category + 1) % len(models.Categories)
		m.cursor = 0
	case key.Matches(msg, keys.backtab):
		m.category = (m.category - 1 + len(models.Categories)) % len(models.Categories)
		m.cursor = 0
	case key.Matches(msg, keys.left):
		m.move(-1, len(visible))
	case key.Matches(msg, keys.right):
		m.move(1, len(visible))
	case key.Matches(msg, keys.up):
		m.move(-cardsPerRow, len(visible))
	case key.Matches(msg, keys.down):
		m.move(cardsPerRow, len(visible))
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
		m.cursor = 0
	case key.Matches(msg, keys.refresh):
		return m, m.reload()
	case key.Matches(msg, keys.enter):
		if c, ok := m.selected(visible); ok {
			return m, navigate(pageProfile, openProfileMsg{slug: c.Slug})
		}
	case key.Matches(msg, keys.login) && !admin:
		return m, navigate(pageLogin, nil)
	case key.Matches(msg, keys.logout) && admin:
		return m, cmdLogout(m.ctx, m.auth)
	case key.Matches(msg, keys.newItem) && admin:
		return m, navigate(pageEdit, openEditorMsg{})
	case key.Matches(msg, keys.edit) && admin:
		if c, ok := m.selected(visible); ok {
			return m, navigate(pageEdit, openEditorMsg{character: &c})
		}
	case key.Matches(msg, keys.delete) && admin:
		if c, ok := m.selected(visible); ok {
			return m, cmdDelete(m.ctx, m.archive, c)
		}
	}
	return m, nil
}

func (m *listModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.visible()
	switch {
	case m.loading && len(visible) == 0:
		b.WriteString("Loading characters...")
	case len(visible) == 0:
		b.WriteString("No characters found.")
	default:
		b.WriteString(m.renderCards(visible))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	title := "CHARACTER ARCHIVE"
	if m.auth.IsAdmin() {
		title += " [ADMIN]"
	}
	return renderPage(title, b.String(), m.hotKeys())
}

func (m *listModel) hotKeys() string {
	if m.searching {
		return "enter/esc: done"
	}
	base := "tab: category │ arrows: move │ enter: open │ /: search │ r: refresh │ v: about │ q: quit"
	if m.auth.IsAdmin() {
		return base + "\nn: new │ e: edit │ d: delete │ o: log out"
	}
	return base + " │ a: admin login"
}

func (m *listModel) renderTabs() string {
	tabs := make([]string, 0, len(models.Categories))
	for i, c := range models.Categories {
		if i == m.category {
			tabs = append(tabs, activeTabStyle.Render(c.Title()))
			continue
		}
		tabs = append(tabs, tabStyle.Render(c.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *listModel) renderCards(visible []models.Character) string {
	rows := make([]string, 0, len(visible)/cardsPerRow+1)
	for start := 0; start < len(visible); start += cardsPerRow {
		end := min(start+cardsPerRow, len(visible))
		cards := make([]string, 0, cardsPerRow)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(visible[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c models.Character, selected bool) string {
	var b strings.Builder
	b.WriteString(fitText(strings.ToUpper(c.Name), 24))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(c.Role.Label()))
	if len(c.Labels) > 0 {
		b.WriteString("\n")
		b.WriteString(fitText(strings.Join(c.Labels, " · "), 24))
	}
	if c.Quote != "" {
		b.WriteString("\n")
		b.WriteString(quoteStyle.Render(fitText(fmt.Sprintf("%q", c.Quote), 24)))
	}

	if selected {
		return selectedCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

func (m *listModel) visible() []models.Character {
	return models.FilterCharacters(m.archive.Characters(), models.Categories[m.category], m.search.Value())
}

func (m *listModel) selected(visible []models.Character) (models.Character, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return models.Character{}, false
	}
	return visible[m.cursor], true
}

func (m *listModel) move(delta, total int) {
	if total == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(total-1, m.cursor+delta))
}

func (m *listModel) clampCursor() {
	m.move(0, len(m.visible()))
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func cmdLogout(ctx context.Context, auth service.ClientAuthService) tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

// cmdDelete runs the delete workflow off the event loop: it blocks on the
// confirmation overlay.
func cmdDelete(ctx context.Context, archive service.ClientArchiveService, c models.Character) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: archive.Delete(ctx, c.ID, c.Slug)}
	}
}
