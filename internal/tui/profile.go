// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/char-archive/internal/lore"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is swapped in tests; headless CI has no clipboard.
var writeClipboard = clipboard.WriteAll

// profileModel shows a single character resolved by slug from the cached list.
type profileModel struct {
	ctx     context.Context
	archive service.ClientArchiveService
	auth    service.ClientAuthService

	slug   string
	status string
	errMsg string
}

func newProfileModel(ctx context.Context, archive service.ClientArchiveService, auth service.ClientAuthService) *profileModel {
	return &profileModel{ctx: ctx, archive: archive, auth: auth}
}

func (m *profileModel) Init() tea.Cmd {
	return nil
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openProfileMsg:
		m.slug = msg.slug
		m.status = ""
		m.errMsg = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Image URL copied to clipboard"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case deleteDoneMsg:
		if _, ok := m.character(); !ok {
			return m, navigate(pageList, nil)
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *profileModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c, found := m.character()
	admin := m.auth.IsAdmin()

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m, navigate(pageList, nil)
	case key.Matches(msg, keys.copy) && found:
		return m, cmdCopy(c.ImageURL)
	case key.Matches(msg, keys.edit) && found && admin:
		return m, navigate(pageEdit, openEditorMsg{character: &c})
	case key.Matches(msg, keys.delete) && found && admin:
		return m, cmdDelete(m.ctx, m.archive, c)
	}
	return m, nil
}

func (m *profileModel) View() string {
	c, ok := m.character()
	if !ok {
		return renderPage("PROFILE", "Character not found.", "esc: back")
	}

	var b strings.Builder
	if c.Quote != "" {
		b.WriteString(quoteStyle.Render("\"" + c.Quote + "\""))
		b.WriteString("\n\n")
	}

	b.WriteString(field("Role", c.Role.SubLabel()))
	b.WriteString("\n")
	b.WriteString(renderStats(c.Stats))
	b.WriteString("\n")
	if len(c.Labels) > 0 {
		b.WriteString(field("Labels", strings.Join(c.Labels, ", ")))
		b.WriteString("\n")
	}

	writeSection(&b, "BIO", c.Bio)
	writeSection(&b, "ABILITIES", lore.PlainEntries(c.Abilities))
	writeSection(&b, "RELATIONSHIPS", lore.PlainEntries(c.Relationships))
	writeSection(&b, "TRIVIA", bulletList(c.Trivias))

	b.WriteString("\n")
	b.WriteString(field("Image", orDash(c.ImageURL)))
	b.WriteString("\n")
	b.WriteString(field("Icon", orDash(c.IconURL)))
	if len(c.Gallery) > 0 {
		b.WriteString("\n")
		b.WriteString(field("Gallery", strconv.Itoa(len(c.Gallery))+" image(s)"))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	hotKeys := "esc: back │ c: copy image url"
	if m.auth.IsAdmin() {
		hotKeys += " │ e: edit │ d: delete"
	}
	return renderPage(strings.ToUpper(c.Name), b.String(), hotKeys)
}

func (m *profileModel) character() (models.Character, bool) {
	return models.FindBySlug(m.archive.Characters(), m.slug)
}

func renderStats(s *models.Stats) string {
	age, species, height := "-", "-", "-"
	gender, status := models.GenderUnknown.Label(), models.StatusUnknown.Label()
	if s != nil {
		age = valueOrDash(s.Age)
		species = valueOrDash(s.Species)
		if s.Height != nil {
			height = strconv.Itoa(*s.Height) + " cm"
		}
		if s.Gender != nil {
			gender = s.Gender.Label()
		}
		if s.Status != nil {
			status = s.Status.Label()
		}
	}

	lines := []string{
		field("Age", age),
		field("Gender", gender),
		field("Species", species),
		field("Height", height),
		field("Birthday", s.BirthdayLabel()),
		field("Status", status),
	}
	return strings.Join(lines, "\n")
}

func writeSection(b *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
}

func bulletList(items models.StringList) string {
	if len(items) == 0 {
		return ""
	}
	return "• " + strings.Join(items, "\n• ")
}

func orDash(v string) string {
	return valueOrDash(&v)
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{err: writeClipboard(text)}
	}
}
