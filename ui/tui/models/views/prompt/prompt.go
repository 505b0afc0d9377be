// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt is the single-line text popup.
package prompt

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/ui/tui/models/components/popup"
	"github.com/toeirei/portmaster/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/portmaster/ui/tui/models/helpers/form/input"
	"github.com/toeirei/portmaster/ui/tui/util"
)

const maxWidth = 60

type Model struct {
	form  form.Form[core.PromptResponse]
	reply *popup.Reply[core.Result[core.PromptResponse]]
}

// New builds a prompt prefilled with req.Value. enter submits, esc
// cancels.
func New(req core.PromptRequest, done func(core.Result[core.PromptResponse])) *Model {
	m := &Model{reply: popup.NewReply(done)}

	input := forminput.NewText(req.Label, "")
	input.Set(req.Value)

	m.form = form.New(
		form.WithInput[core.PromptResponse]("value", input),
		form.WithOnSubmit(func(res core.PromptResponse, _ error) tea.Cmd {
			return m.reply.Send(core.Done(res))
		}),
		form.WithOnCancel[core.PromptResponse](func() tea.Cmd {
			return m.reply.Send(core.Cancelled[core.PromptResponse]())
		}),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		msg = tea.WindowSizeMsg{Width: min(size.Width, maxWidth), Height: size.Height}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return m.form.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
