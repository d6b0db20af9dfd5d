package tui

import (
	"github.com/MKhiriev/char-archive/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageList    = "list"
	pageProfile = "profile"
	pageLogin   = "login"
	pageEdit    = "edit"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// sent by Notifier from workflow goroutines
type alertMsg struct {
	text string
}

type confirmMsg struct {
	text  string
	reply chan<- bool
}

type reloadMsg struct{}

type listChangedMsg struct{}

type refreshDoneMsg struct {
	err error
}

type serverVersionMsg struct {
	version string
}

type authCheckedMsg struct {
	admin bool
}

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type saveDoneMsg struct {
	report models.SaveReport
	err    error
}

type savePollMsg struct{}

type deleteDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type openProfileMsg struct {
	slug string
}

// openEditorMsg opens the edit form; a nil character starts a new record.
type openEditorMsg struct {
	character *models.Character
}
