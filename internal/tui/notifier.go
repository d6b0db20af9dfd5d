// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type sender interface {
	Send(msg tea.Msg)
}

// Notifier delivers workflow alerts, confirmations and reload requests to
// the running program as messages. It satisfies service.Notifier.
//
// Alerts and reloads raised before the program starts are queued and
// replayed on attach. Confirm never queues: with no program to answer it
// the action is declined.
type Notifier struct {
	mu       sync.Mutex
	program  sender
	pending  []tea.Msg
	done     chan struct{}
	detached bool
}

func NewNotifier() *Notifier {
	return &Notifier{done: make(chan struct{})}
}

// Alert implements service.Notifier.
func (n *Notifier) Alert(message string) {
	n.send(alertMsg{text: message}, true)
}

// Confirm implements service.Notifier. It blocks until the user answers
// the overlay or the program exits.
func (n *Notifier) Confirm(message string) bool {
	reply := make(chan bool, 1)
	if !n.send(confirmMsg{text: message, reply: reply}, false) {
		return false
	}

	select {
	case ok := <-reply:
		return ok
	case <-n.done:
		return false
	}
}

// Reload implements service.Notifier.
func (n *Notifier) Reload() {
	n.send(reloadMsg{}, true)
}

// Refreshed tells the program that the cached character list changed in
// the background.
func (n *Notifier) Refreshed() {
	n.send(listChangedMsg{}, false)
}

func (n *Notifier) attach(p sender) {
	n.mu.Lock()
	n.program = p
	pending := n.pending
	n.pending = nil
	n.mu.Unlock()

	if len(pending) == 0 {
		return
	}
	// Send blocks until the event loop runs.
	go func() {
		for _, msg := range pending {
			p.Send(msg)
		}
	}()
}

func (n *Notifier) detach() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.program = nil
	if !n.detached {
		n.detached = true
		close(n.done)
	}
}

func (n *Notifier) send(msg tea.Msg, queue bool) bool {
	n.mu.Lock()
	p := n.program
	if p == nil {
		if queue && !n.detached {
			n.pending = append(n.pending, msg)
		}
		n.mu.Unlock()
		return false
	}
	n.mu.Unlock()

	p.Send(msg)
	return true
}
