// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root wires the header, the connection list with its popups and
// the footer into the program's top-level model.
package root

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/portmaster/buildvars"
	"github.com/toeirei/portmaster/ui/tui/models/components/header"
	"github.com/toeirei/portmaster/ui/tui/models/components/popup"
	"github.com/toeirei/portmaster/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/portmaster/ui/tui/models/helpers/title"
	"github.com/toeirei/portmaster/ui/tui/models/views/connections"
	"github.com/toeirei/portmaster/ui/tui/models/views/footer"
	"github.com/toeirei/portmaster/ui/tui/util"
)

const title string = "Portmaster"

type Model struct {
	stack        *stack.Model
	injector     *popup.Injector
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

func New(ctx context.Context, settings connections.Settings) *Model {
	version := buildvars.VersionOrDefault("dev")

	injector := popup.NewInjector(util.ModelPointer(connections.New(ctx, settings)))
	footerPtr := util.ModelPointer(footer.New(&BaseKeyMap))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(header.New(version)), header.SizeConfig),
			stack.WithItem(util.ModelPointer(injector), stack.VariableSize(1)),
			stack.WithItem(footerPtr, footer.SizeConfig),
		),
		injector:     injector,
		footer:       footerPtr,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, version), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, BaseKeyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, BaseKeyMap.Help) && !m.injector.Active():
			// popups may take "?" as text input
			util.BorrowModelFunc(m.footer, func(f *footer.Model) {
				f.ToggleExpanded()
			})
			return m, nil
		}
		return m, m.stack.Update(msg)
	}

	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// Model implements tea.Model
var _ tea.Model = Model{}
