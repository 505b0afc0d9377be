// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set changes the suffix of the terminal title. An empty title restores
// the base title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
