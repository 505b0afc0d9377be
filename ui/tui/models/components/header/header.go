// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/portmaster/ui/tui/util"
)

const logo string = "" +
	"╔═╗┌─┐┬─┐┌┬┐┌┬┐┌─┐┌─┐┌┬┐┌─┐┬─┐\n" +
	"╠═╝│ │├┬┘ │ │││├─┤└─┐ │ ├┤ ├┬┘\n" +
	"╩  └─┘┴└─ ┴ ┴ ┴┴ ┴└─┘ ┴ └─┘┴└─"

const compactLogo string = "⇄ Portmaster"

type Model struct {
	Subtitle string
	size     util.Size
}

func New(subtitle string) *Model {
	return &Model{Subtitle: subtitle}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	content := compactLogo
	if m.size.Width >= lipgloss.Width(logo) && m.size.Height > lipgloss.Height(logo) {
		content = logo
	}
	if m.Subtitle != "" {
		content = lipgloss.JoinVertical(lipgloss.Right, content,
			lipgloss.NewStyle().Faint(true).Render(m.Subtitle))
	}
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			content,
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
