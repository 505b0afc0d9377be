// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package connections

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Collapse key.Binding
	Copy     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.New, km.Edit, km.Delete, km.Collapse, km.Copy}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.New, km.Edit, km.Delete},
		{km.Collapse, km.Copy},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Collapse: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "collapse"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy port"),
	),
}

// forRow adjusts help texts to what the keys do on the selected row.
func (km KeyMap) forRow(r row, ok bool) KeyMap {
	if !ok {
		km.Edit.SetEnabled(false)
		km.Delete.SetEnabled(false)
		km.Collapse.SetEnabled(false)
		km.Copy.SetEnabled(false)
		return km
	}
	if r.isGroup() {
		km.Edit.SetHelp("enter", "rename group")
		km.Delete.SetHelp("d", "delete group")
		km.Copy.SetEnabled(false)
	}
	return km
}
