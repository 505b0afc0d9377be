// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package confirm is the button-choice popup.
package confirm

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/ui/tui/models/components/popup"
	"github.com/toeirei/portmaster/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/portmaster/ui/tui/models/helpers/form/input"
	"github.com/toeirei/portmaster/ui/tui/util"
	"github.com/toeirei/portmaster/util/slicest"
)

var (
	messageStyle = lipgloss.NewStyle().Padding(0, 1, 1)
	warningStyle = messageStyle.Foreground(lipgloss.Color("214")).Bold(true)
)

type Model struct {
	severity core.Severity
	message  string
	buttons  []*forminput.Button
	active   int
	reply    *popup.Reply[int]
	size     util.Size
}

// New shows req.Message with one button per label. The default button is
// focused first; esc answers with the first button.
func New(req core.ConfirmRequest, done func(int)) *Model {
	m := &Model{
		severity: req.Severity,
		message:  req.Message,
		buttons: slicest.Map(req.Buttons, func(label string) *forminput.Button {
			return forminput.NewButton(label, false)
		}),
		reply: popup.NewReply(done),
	}
	if len(m.buttons) > 0 {
		m.active = util.Clamp(0, req.DefaultButton, len(m.buttons)-1)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(kmsg, DefaultKeyMap.Cancel):
		return m.reply.Send(core.ButtonKeep)
	case key.Matches(kmsg, DefaultKeyMap.Prev):
		return m.move(-1)
	case key.Matches(kmsg, DefaultKeyMap.Next):
		return m.move(1)
	}

	if len(m.buttons) == 0 {
		if key.Matches(kmsg, DefaultKeyMap.Choose) {
			return m.reply.Send(core.ButtonKeep)
		}
		return nil
	}
	if _, action := m.buttons[m.active].Update(kmsg); action == form.ActionSubmit {
		return m.reply.Send(m.active)
	}
	return nil
}

func (m *Model) move(delta int) tea.Cmd {
	if len(m.buttons) == 0 {
		return nil
	}
	m.buttons[m.active].Blur()
	m.active = (m.active + delta + len(m.buttons)) % len(m.buttons)
	m.buttons[m.active].Focus()
	return nil
}

// Active returns the index of the focused button.
func (m *Model) Active() int {
	return m.active
}

func (m *Model) View() string {
	style := messageStyle
	if m.severity == core.SeverityWarning {
		style = warningStyle
	}
	if m.size.Width > 0 {
		style = style.MaxWidth(m.size.Width)
	}

	width := 0
	if m.size.Width > 0 && len(m.buttons) > 0 {
		width = m.size.Width / len(m.buttons)
	}
	buttons := slicest.Map(m.buttons, func(b *forminput.Button) string {
		return b.View(width)
	})

	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(m.message),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(m.buttons) > 0 {
		m.buttons[m.active].Focus()
	}
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	if len(m.buttons) > 0 {
		m.buttons[m.active].Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
