// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/portmaster/ui/tui/models/helpers/form"
)

// Toggle is a boolean checkbox.
type Toggle struct {
	Label  string
	KeyMap ToggleKeyMap

	value   bool
	focused bool
}

type ToggleKeyMap struct {
	Toggle key.Binding
	Next   key.Binding
}

func (k ToggleKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle, k.Next} }

func (k ToggleKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle, k.Next}} }

func NewToggle(label string) *Toggle {
	return &Toggle{
		Label: label,
		KeyMap: ToggleKeyMap{
			Toggle: key.NewBinding(
				key.WithKeys(" ", "space", "x"),
				key.WithHelp("space", "toggle"),
			),
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "confirm"),
			),
		},
	}
}

func (t *Toggle) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return nil, t.KeyMap
}

func (t *Toggle) Blur() {
	t.focused = false
}

func (t *Toggle) Get() any      { return t.value }
func (t *Toggle) Init() tea.Cmd { return nil }
func (t *Toggle) Reset()        { t.value = false }

func (t *Toggle) Set(value any) {
	if v, ok := value.(bool); ok {
		t.value = v
	}
}

func (t *Toggle) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	msg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(msg, t.KeyMap.Toggle):
		t.value = !t.value
	case key.Matches(msg, t.KeyMap.Next):
		return nil, form.ActionNext
	}
	return nil, form.ActionNone
}

func (t *Toggle) View(width int) string {
	box := "[ ] "
	if t.value {
		box = "[x] "
	}
	style := labelStyle
	if t.focused {
		style = focusedLabelStyle
	}
	return style.MaxWidth(max(width, 0)).Render(box + t.Label)
}

var _ form.FormInput = (*Toggle)(nil)
