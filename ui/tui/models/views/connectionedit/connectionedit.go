// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package connectionedit is the popup that creates or edits a connection.
package connectionedit

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/i18n"
	"github.com/toeirei/portmaster/ui/tui/models/components/popup"
	"github.com/toeirei/portmaster/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/portmaster/ui/tui/models/helpers/form/input"
	"github.com/toeirei/portmaster/ui/tui/util"
)

// compactWidth caps the popup unless the caller asked for a large dialog.
const compactWidth = 64

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginTop(1)
)

type Model struct {
	form  form.Form[model.Connection]
	large bool
	err   string
	reply *popup.Reply[core.Result[model.Connection]]
}

func New(req core.EditRequest, done func(core.Result[model.Connection])) *Model {
	m := &Model{
		large: req.Size == core.SizeLarge,
		reply: popup.NewReply(done),
	}

	m.form = form.New(
		form.WithInput[model.Connection]("name", forminput.NewText(label("name"), "COM1")),
		form.WithInlineInput[model.Connection]("group", forminput.NewText(label("group"), "")),
		form.WithInput[model.Connection]("port", forminput.NewText(label("port"), "/dev/ttyUSB0")),
		form.WithInput[model.Connection]("baudrate", forminput.NewText(label("baudrate"), "")),
		form.WithInlineInput[model.Connection]("databits", forminput.NewText(label("databits"), "")),
		form.WithInlineInput[model.Connection]("parity", forminput.NewText(label("parity"), "")),
		form.WithInlineInput[model.Connection]("stopbits", forminput.NewText(label("stopbits"), "")),
		form.WithInput[model.Connection]("rtscts", forminput.NewToggle(label("rtscts"))),
		form.WithInlineInput[model.Connection]("xon", forminput.NewToggle(label("xon"))),
		form.WithInlineInput[model.Connection]("xoff", forminput.NewToggle(label("xoff"))),
		form.WithInlineInput[model.Connection]("xany", forminput.NewToggle(label("xany"))),
		form.WithInput[model.Connection]("save", forminput.NewButton(label("save"), false)),
		form.WithOnSubmit(m.submit),
		form.WithOnCancel[model.Connection](func() tea.Cmd {
			return m.reply.Send(core.Cancelled[model.Connection]())
		}),
	)
	// a struct always decodes into the value map
	_ = m.form.Set(req.Seed)
	return m
}

func label(id string) string {
	return i18n.T("connections.edit." + id)
}

// submit checks the required fields. A failed check keeps the popup open.
func (m *Model) submit(conn model.Connection, err error) tea.Cmd {
	if err != nil {
		m.err = err.Error()
		return nil
	}
	conn.Name = strings.TrimSpace(conn.Name)
	conn.Port = strings.TrimSpace(conn.Port)
	switch {
	case conn.Name == "":
		m.err = i18n.T("connections.edit.required", label("name"))
		return nil
	case conn.Port == "":
		m.err = i18n.T("connections.edit.required", label("port"))
		return nil
	}
	m.err = ""
	return m.reply.Send(core.Done(conn))
}

// Err returns the validation message currently shown.
func (m *Model) Err() string {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok && !m.large {
		msg = tea.WindowSizeMsg{Width: min(size.Width, compactWidth), Height: size.Height}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) View() string {
	parts := []string{titleStyle.Render(i18n.T("connections.edit.title")), m.form.View()}
	if m.err != "" {
		parts = append(parts, errorStyle.Render(m.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
