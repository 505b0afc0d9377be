// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key bindings of the focused model.
package keyhelp

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/portmaster/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	size     util.Size
	help     help.Model
	Expanded bool
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) View() string {
	if m.KeyMap != nil {
		if m.Expanded {
			return FullHelpView(m.help, m.KeyMap.FullHelp())
		}
		return ShortHelpView(m.help, m.KeyMap.ShortHelp())
	}
	return ""
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

func enabled(b key.Binding) bool { return b.Enabled() }

// ShortHelpView renders the enabled bindings on one line. Unlike
// help.Model.ShortHelpView, disabled bindings never leave a separator behind.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	parts := slices.Map(slices.Filter(bindings, enabled), func(b key.Binding) string {
		return m.Styles.ShortKey.Inline(true).Render(b.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(b.Help().Desc)
	})
	for i := 1; i < len(parts); i++ {
		parts[i] = separator + parts[i]
	}

	return strings.Join(fit(parts, m.Width, ellipsis(m)), "")
}

// FullHelpView renders one column per group that has an enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		group = slices.Filter(group, enabled)
		if len(group) == 0 {
			continue
		}
		keys := slices.Map(group, func(b key.Binding) string { return b.Help().Key })
		descs := slices.Map(group, func(b key.Binding) string { return b.Help().Desc })

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, ellipsis(m))...)
}

func ellipsis(m help.Model) string {
	return " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
}

// fit keeps the leading parts that fit into width. When parts are dropped
// the tail is appended, as long as it fits itself. Width 0 means unlimited.
func fit(parts []string, width int, tail string) []string {
	if width <= 0 {
		return parts
	}
	tailWidth := lipgloss.Width(tail)

	var used int
	for i, part := range parts {
		w := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+w <= width) || (!last && used+w+tailWidth <= width) {
			used += w
			continue
		}
		if used+tailWidth <= width {
			return append(parts[:i:i], tail)
		}
		return parts[:i]
	}
	return parts
}
