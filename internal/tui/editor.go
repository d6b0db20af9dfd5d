// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/char-archive/internal/lore"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	fieldInput fieldKind = iota
	fieldArea
	fieldSelect
	fieldGallery
)

// Field order on the edit form.
const (
	fName = iota
	fRole
	fQuote
	fBio
	fAge
	fGender
	fSpecies
	fHeight
	fBirthMonth
	fBirthDay
	fStatus
	fLabels
	fAbilities
	fRelationships
	fTrivias
	fMainFile
	fIconFile
	fGalleryFiles
	fRetained
	fieldCount
)

type option struct {
	label string
	value string
}

type formField struct {
	label   string
	kind    fieldKind
	input   textinput.Model
	area    textarea.Model
	options []option
	choice  int
}

// editorModel is the create/edit form. A submission is handed to the save
// workflow and the form navigates away at once so the optimistic record
// is visible while uploads run.
type editorModel struct {
	ctx     context.Context
	archive service.ClientArchiveService

	editing *models.Character
	fields  []formField
	focus   int

	clearMain bool
	clearIcon bool

	// kept marks which existing gallery URLs survive the save.
	kept          []bool
	galleryCursor int

	submitting bool
	errMsg     string
}

func newEditorModel(ctx context.Context, archive service.ClientArchiveService) *editorModel {
	m := &editorModel{ctx: ctx, archive: archive}
	m.reset(nil)
	return m
}

func (m *editorModel) Init() tea.Cmd {
	return nil
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openEditorMsg:
		m.reset(msg.character)
		return m, m.focusField(fName)
	case saveDoneMsg:
		m.submitting = false
		switch {
		case errors.Is(msg.err, service.ErrInvalidDataProvided), errors.Is(msg.err, service.ErrSaveInProgress):
			m.errMsg = msg.err.Error()
		default:
			m.errMsg = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m.forward(msg)
}

func (m *editorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.fields[m.focus]

	switch {
	case key.Matches(msg, keys.esc):
		return m, m.leave()
	case key.Matches(msg, keys.save):
		return m, m.submit()
	case key.Matches(msg, keys.tab):
		return m, m.focusField((m.focus + 1) % fieldCount)
	case key.Matches(msg, keys.backtab):
		return m, m.focusField((m.focus - 1 + fieldCount) % fieldCount)
	case key.Matches(msg, keys.toggle):
		m.toggle()
		return m, nil
	}

	switch f.kind {
	case fieldSelect:
		switch msg.String() {
		case "left":
			f.choice = (f.choice - 1 + len(f.options)) % len(f.options)
		case "right", " ":
			f.choice = (f.choice + 1) % len(f.options)
		}
		return m, nil
	case fieldGallery:
		switch msg.String() {
		case "left":
			m.galleryCursor = max(0, m.galleryCursor-1)
		case "right":
			m.galleryCursor = min(max(0, len(m.kept)-1), m.galleryCursor+1)
		case " ":
			m.toggle()
		}
		return m, nil
	case fieldInput:
		if key.Matches(msg, keys.enter) {
			return m, m.focusField((m.focus + 1) % fieldCount)
		}
	}

	return m.forward(msg)
}

// forward hands msg to the focused text widget.
func (m *editorModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.fields[m.focus]
	var cmd tea.Cmd
	switch f.kind {
	case fieldInput:
		f.input, cmd = f.input.Update(msg)
	case fieldArea:
		f.area, cmd = f.area.Update(msg)
	}
	return m, cmd
}

func (m *editorModel) toggle() {
	switch m.focus {
	case fMainFile:
		m.clearMain = !m.clearMain
	case fIconFile:
		m.clearIcon = !m.clearIcon
	case fRetained:
		if m.galleryCursor < len(m.kept) {
			m.kept[m.galleryCursor] = !m.kept[m.galleryCursor]
		}
	}
}

func (m *editorModel) leave() tea.Cmd {
	if m.editing != nil {
		return navigate(pageProfile, openProfileMsg{slug: m.editing.Slug})
	}
	return navigate(pageList, nil)
}

func (m *editorModel) submit() tea.Cmd {
	if m.submitting || m.archive.Saving() {
		m.errMsg = service.ErrSaveInProgress.Error()
		return nil
	}

	input, err := m.buildInput()
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	return tea.Batch(tea.Sequence(m.leave(), cmdSave(m.ctx, m.archive, input)), pollSave())
}

func cmdSave(ctx context.Context, archive service.ClientArchiveService, input models.SaveInput) tea.Cmd {
	return func() tea.Msg {
		report, err := archive.Save(ctx, input, nil)
		return saveDoneMsg{report: report, err: err}
	}
}

// buildInput collects the raw form and reads staged image files from disk.
func (m *editorModel) buildInput() (models.SaveInput, error) {
	input := models.SaveInput{
		Form: models.CharacterForm{
			Name:       m.text(fName),
			Role:       m.choice(fRole),
			Quote:      m.text(fQuote),
			Bio:        m.text(fBio),
			Age:        m.text(fAge),
			Gender:     m.choice(fGender),
			Species:    m.text(fSpecies),
			Height:     m.text(fHeight),
			BirthMonth: m.choice(fBirthMonth),
			BirthDay:   m.text(fBirthDay),
			Status:     m.choice(fStatus),
		},
		ClearMain: m.clearMain,
		ClearIcon: m.clearIcon,
		Extra: models.LoreExtras{
			Abilities:     lore.ParseLines(m.text(fAbilities)),
			Relationships: lore.ParseLines(m.text(fRelationships)),
			Trivias:       lore.ParseList(m.text(fTrivias)),
		},
	}
	if labels := splitComma(m.text(fLabels)); len(labels) > 0 {
		input.Extra.Labels = labels
	}

	if m.editing != nil {
		editing := m.editing.Clone()
		input.Editing = &editing

		retained := models.StringList{}
		for i, url := range editing.Gallery {
			if i < len(m.kept) && m.kept[i] {
				retained = append(retained, url)
			}
		}
		input.Extra.RetainedGallery = retained
	}

	var err error
	if !m.clearMain {
		if input.MainFile, err = loadImageFile(m.text(fMainFile)); err != nil {
			return models.SaveInput{}, err
		}
	}
	if !m.clearIcon {
		if input.IconFile, err = loadImageFile(m.text(fIconFile)); err != nil {
			return models.SaveInput{}, err
		}
	}
	if input.Extra.GalleryFiles, err = loadImageFiles(m.text(fGalleryFiles)); err != nil {
		return models.SaveInput{}, err
	}

	return input, nil
}

func (m *editorModel) View() string {
	var b strings.Builder

	for i := range m.fields {
		f := &m.fields[i]
		label := labelStyle.Width(14).Render(f.label)
		if i == m.focus {
			label = focusStyle.Width(14).Render("› " + f.label)
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(m.renderField(i))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	title := "NEW CHARACTER"
	if m.editing != nil {
		title = "EDIT " + strings.ToUpper(m.editing.Name)
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *editorModel) renderField(i int) string {
	f := &m.fields[i]
	switch f.kind {
	case fieldSelect:
		return "‹ " + f.options[f.choice].label + " ›"
	case fieldArea:
		if i == m.focus {
			return "\n" + f.area.View()
		}
		return fitText(strings.ReplaceAll(f.area.Value(), "\n", " ⏎ "), 60)
	case fieldGallery:
		return m.renderGallery()
	}

	out := f.input.View()
	switch {
	case i == fMainFile && m.clearMain:
		out += " [remove current image]"
	case i == fIconFile && m.clearIcon:
		out += " [remove current icon]"
	case i == fMainFile && m.editing != nil:
		out += helpStyle.Render(" current: " + orDash(m.editing.ImageURL))
	case i == fIconFile && m.editing != nil:
		out += helpStyle.Render(" current: " + orDash(m.editing.IconURL))
	}
	return out
}

func (m *editorModel) renderGallery() string {
	if m.editing == nil || len(m.editing.Gallery) == 0 {
		return "-"
	}

	url := m.editing.Gallery[m.galleryCursor]
	mark := "[x]"
	if !m.kept[m.galleryCursor] {
		mark = "[ ]"
	}
	kept := 0
	for _, k := range m.kept {
		if k {
			kept++
		}
	}
	return fmt.Sprintf("%s %d/%d %s (%d kept)", mark, m.galleryCursor+1, len(m.kept), fitText(url, 48), kept)
}

func (m *editorModel) hotKeys() string {
	base := "tab: next │ shift+tab: prev │ ctrl+s: save │ esc: cancel"
	switch m.fields[m.focus].kind {
	case fieldSelect:
		return base + " │ ←/→: choose"
	case fieldGallery:
		return base + " │ ←/→: browse │ space: keep/drop"
	}
	if m.focus == fMainFile || m.focus == fIconFile {
		return base + " │ ctrl+x: remove current"
	}
	return base
}

func (m *editorModel) text(i int) string {
	f := &m.fields[i]
	if f.kind == fieldArea {
		return f.area.Value()
	}
	return f.input.Value()
}

func (m *editorModel) choice(i int) string {
	f := &m.fields[i]
	return f.options[f.choice].value
}

func (m *editorModel) focusField(i int) tea.Cmd {
	if cur := &m.fields[m.focus]; cur.kind == fieldInput {
		cur.input.Blur()
	} else if cur.kind == fieldArea {
		cur.area.Blur()
	}

	m.focus = i
	f := &m.fields[i]
	switch f.kind {
	case fieldInput:
		return f.input.Focus()
	case fieldArea:
		return f.area.Focus()
	}
	return nil
}

// reset rebuilds the form, prefilled from c when editing.
func (m *editorModel) reset(c *models.Character) {
	m.editing = nil
	if c != nil {
		clone := c.Clone()
		m.editing = &clone
	}
	m.focus = fName
	m.clearMain, m.clearIcon = false, false
	m.galleryCursor = 0
	m.submitting = false
	m.errMsg = ""

	m.fields = make([]formField, fieldCount)
	m.fields[fName] = inputField("Name", "full name", 80)
	m.fields[fRole] = selectField("Role", roleOptions())
	m.fields[fQuote] = inputField("Quote", "signature line", 280)
	m.fields[fBio] = areaField("Bio", "biography")
	m.fields[fAge] = inputField("Age", "17, around 300, unknown", 40)
	m.fields[fGender] = selectField("Gender", genderOptions())
	m.fields[fSpecies] = inputField("Species", "human", 60)
	m.fields[fHeight] = inputField("Height (cm)", "1-300", 3)
	m.fields[fBirthMonth] = selectField("Birth month", monthOptions())
	m.fields[fBirthDay] = inputField("Birth day", "1-31", 2)
	m.fields[fStatus] = selectField("Status", statusOptions())
	m.fields[fLabels] = inputField("Labels", "comma separated", 200)
	m.fields[fAbilities] = areaField("Abilities", "Name: description, one per line")
	m.fields[fRelationships] = areaField("Relationships", "Name: description, one per line")
	m.fields[fTrivias] = areaField("Trivia", "one fact per line")
	m.fields[fMainFile] = inputField("Main image", "path to file", 512)
	m.fields[fIconFile] = inputField("Icon", "path to file", 512)
	m.fields[fGalleryFiles] = inputField("Add gallery", "comma separated paths", 2048)
	m.fields[fRetained] = formField{label: "Gallery", kind: fieldGallery}

	m.kept = nil
	if m.editing == nil {
		return
	}

	e := m.editing
	m.fields[fName].input.SetValue(e.Name)
	m.fields[fRole].choose(strconv.Itoa(int(e.Role)))
	m.fields[fQuote].input.SetValue(e.Quote)
	m.fields[fBio].area.SetValue(e.Bio)
	m.fields[fLabels].input.SetValue(strings.Join(e.Labels, ", "))
	m.fields[fAbilities].area.SetValue(lore.PlainEntries(e.Abilities))
	m.fields[fRelationships].area.SetValue(lore.PlainEntries(e.Relationships))
	m.fields[fTrivias].area.SetValue(strings.Join(e.Trivias, "\n"))

	m.kept = make([]bool, len(e.Gallery))
	for i := range m.kept {
		m.kept[i] = true
	}

	if s := e.Stats; s != nil {
		if s.Age != nil {
			m.fields[fAge].input.SetValue(*s.Age)
		}
		if s.Species != nil {
			m.fields[fSpecies].input.SetValue(*s.Species)
		}
		if s.Height != nil {
			m.fields[fHeight].input.SetValue(strconv.Itoa(*s.Height))
		}
		if s.Gender != nil {
			m.fields[fGender].choose(strconv.Itoa(int(*s.Gender)))
		}
		if s.Status != nil {
			m.fields[fStatus].choose(strconv.Itoa(int(*s.Status)))
		}
		if month, day, ok := splitBirthday(s.Birthday); ok {
			m.fields[fBirthMonth].choose(month)
			m.fields[fBirthDay].input.SetValue(day)
		}
	}
}

func (f *formField) choose(value string) {
	if i := slices.IndexFunc(f.options, func(o option) bool { return o.value == value }); i >= 0 {
		f.choice = i
	}
}

func inputField(label, placeholder string, limit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 48
	in.Prompt = ""
	return formField{label: label, kind: fieldInput, input: in}
}

func areaField(label, placeholder string) formField {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetWidth(60)
	area.SetHeight(4)
	return formField{label: label, kind: fieldArea, area: area}
}

func selectField(label string, options []option) formField {
	return formField{label: label, kind: fieldSelect, options: options}
}

func roleOptions() []option {
	out := make([]option, 0, len(models.Roles))
	for _, r := range models.Roles {
		out = append(out, option{label: r.SubLabel(), value: strconv.Itoa(int(r))})
	}
	return out
}

func genderOptions() []option {
	out := []option{{label: "-", value: ""}}
	for g := models.GenderUnknown; g.Valid(); g++ {
		out = append(out, option{label: g.Label(), value: strconv.Itoa(int(g))})
	}
	return out
}

func statusOptions() []option {
	out := []option{{label: "-", value: ""}}
	for s := models.StatusUnknown; s.Valid(); s++ {
		out = append(out, option{label: s.Label(), value: strconv.Itoa(int(s))})
	}
	return out
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func monthOptions() []option {
	out := []option{{label: "-", value: ""}}
	for i, name := range monthNames {
		out = append(out, option{label: name, value: strconv.Itoa(i + 1)})
	}
	return out
}

// splitBirthday turns "2000-07-04" into ("7", "4").
func splitBirthday(birthday *string) (string, string, bool) {
	if birthday == nil {
		return "", "", false
	}
	parts := strings.Split(*birthday, "-")
	if len(parts) != 3 {
		return "", "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", "", false
	}
	return strconv.Itoa(month), strconv.Itoa(day), true
}
