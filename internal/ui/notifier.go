package ui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilgisen/headlines/internal/push"
)

// PushMsg carries a notification into the running program
type PushMsg struct {
	Notification push.Notification
}

// ProgramNotifier shows notifications as a banner in the running reader
type ProgramNotifier struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach routes future notifications to p
func (n *ProgramNotifier) Attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

func (n *ProgramNotifier) Notify(ctx context.Context, notification push.Notification) error {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()

	if p == nil {
		return errors.New("reader is not running")
	}
	p.Send(PushMsg{Notification: notification})
	return nil
}
