package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const savePollInterval = 150 * time.Millisecond

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) shows alert and confirmation overlays raised by workflows
// 4) handles NavigateTo messages
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices

	list    *listModel
	profile *profileModel
	login   *loginModel
	editor  *editorModel

	pages   map[string]tea.Model
	current string

	// alerts are shown one at a time, oldest first.
	alerts  []string
	confirm *confirmMsg

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool

	quitByUser bool
}

// NewRootModel registers all pages and opens the character list.
func NewRootModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		ctx:       ctx,
		services:  services,
		list:      newListModel(ctx, services.ArchiveService, services.AuthService),
		profile:   newProfileModel(ctx, services.ArchiveService, services.AuthService),
		login:     newLoginModel(ctx, services.AuthService),
		editor:    newEditorModel(ctx, services.ArchiveService),
		current:   pageList,
		buildInfo: buildInfo,
	}
	r.pages = map[string]tea.Model{
		pageList:    r.list,
		pageProfile: r.profile,
		pageLogin:   r.login,
		pageEdit:    r.editor,
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.list.Init(), cmdCheckAuth(r.ctx, r.services.AuthService))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		return r.updateKey(k)
	}

	switch msg := msg.(type) {
	case alertMsg:
		r.alerts = append(r.alerts, msg.text)
		return r, nil
	case confirmMsg:
		if r.confirm != nil {
			msg.reply <- false
			return r, nil
		}
		r.confirm = &msg
		return r, nil
	case reloadMsg:
		r.showBuildInfo = false
		r.current = pageList
		return r, tea.Batch(
			cmdCheckAuth(r.ctx, r.services.AuthService),
			r.list.reload(),
		)
	case serverVersionMsg:
		r.serverVersion = msg.version
		return r, nil
	case savePollMsg:
		if r.services.ArchiveService.Saving() {
			return r, pollSave()
		}
		return r, nil
	case saveDoneMsg:
		_, cmd := r.editor.Update(msg)
		if errors.Is(msg.err, service.ErrInvalidDataProvided) {
			r.current = pageEdit
		}
		return r, cmd
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, next.Init()
	}

	return r.delegate(msg)
}

func (r RootModel) updateKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.String() == "ctrl+c" {
		if r.confirm != nil {
			r.confirm.reply <- false
			r.confirm = nil
		}
		r.quitByUser = true
		return r, tea.Quit
	}

	if r.confirm != nil {
		switch {
		case key.Matches(k, keys.yes):
			r.confirm.reply <- true
			r.confirm = nil
		case key.Matches(k, keys.no):
			r.confirm.reply <- false
			r.confirm = nil
		}
		return r, nil
	}

	if len(r.alerts) > 0 {
		if key.Matches(k, keys.enter) || key.Matches(k, keys.esc) {
			r.alerts = r.alerts[1:]
		}
		return r, nil
	}

	if r.showBuildInfo {
		if key.Matches(k, keys.esc) || k.String() == "v" {
			r.showBuildInfo = false
		}
		return r, nil
	}

	if r.isListIdle() {
		switch {
		case k.String() == "v":
			r.showBuildInfo = true
			return r, cmdServerVersion(r.ctx, r.services.AppInfoService)
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		}
	}

	return r.delegate(k)
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}

	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("CHARACTER ARCHIVE", "", "")
	}

	var b strings.Builder
	b.WriteString(page.View())

	if r.services.ArchiveService.Saving() {
		b.WriteString("\n  ")
		b.WriteString(statusStyle.Render("Saving..."))
	}

	switch {
	case r.confirm != nil:
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(r.confirm.text + "\n\n" + helpStyle.Render("y: confirm │ n: cancel")))
	case len(r.alerts) > 0:
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(r.alerts[0] + "\n\n" + helpStyle.Render("enter: ok")))
	}

	return b.String()
}

func (r RootModel) isListIdle() bool {
	return r.current == pageList && !r.list.searching
}

func cmdCheckAuth(ctx context.Context, auth service.ClientAuthService) tea.Cmd {
	return func() tea.Msg {
		return authCheckedMsg{admin: auth.CheckAuthStatus(ctx)}
	}
}

func cmdServerVersion(ctx context.Context, info service.ClientAppInfoService) tea.Cmd {
	return func() tea.Msg {
		v, err := info.ServerVersion(ctx)
		if err != nil {
			return serverVersionMsg{version: humanizeServerUnavailableError(err)}
		}
		return serverVersionMsg{version: v}
	}
}

func pollSave() tea.Cmd {
	return tea.Tick(savePollInterval, func(time.Time) tea.Msg { return savePollMsg{} })
}
