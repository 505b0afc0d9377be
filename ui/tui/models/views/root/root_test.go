// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/i18n"
	"github.com/toeirei/portmaster/ui/tui/models/components/popup"
	"github.com/toeirei/portmaster/ui/tui/models/views/prompt"
	"github.com/toeirei/portmaster/ui/tui/util"
)

type staticSettings struct {
	records []*model.Connection
}

func (s staticSettings) View(fn func(core.Snapshot)) {
	fn(core.Snapshot{Connections: s.records, Groups: core.GroupsOf(s.records)})
}
func (staticSettings) CreateConnection(context.Context) (bool, error) { return false, nil }
func (staticSettings) EditConnection(context.Context, *model.Connection) (bool, error) {
	return false, nil
}
func (staticSettings) DeleteConnection(context.Context, *model.Connection) (bool, error) {
	return false, nil
}
func (staticSettings) EditGroup(context.Context, model.Group) (bool, error)   { return false, nil }
func (staticSettings) DeleteGroup(context.Context, model.Group) (bool, error) { return false, nil }

func newRoot(t *testing.T) Model {
	t.Helper()
	i18n.Init("en")
	lab := model.NewConnection()
	lab.Name, lab.Group, lab.Port = "COM1", "Lab", "/dev/ttyS0"

	m := *New(context.Background(), staticSettings{records: []*model.Connection{&lab}})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestRoot_ExitQuits(t *testing.T) {
	m := newRoot(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestRoot_ViewShowsList(t *testing.T) {
	m := newRoot(t)
	view := ansi.Strip(m.View())
	for _, want := range []string{"Lab (1)", "COM1", "/dev/ttyS0"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRoot_HelpKeyGoesToPopupWhenOpen(t *testing.T) {
	m := newRoot(t)

	var answer string
	p := prompt.New(core.PromptRequest{Label: "New group name"}, func(r core.Result[core.PromptResponse]) {
		answer = r.Value.Value
	})
	m.Update(popup.Open(util.ModelPointer(p))())
	if !m.injector.Active() {
		t.Fatalf("popup not open")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if answer != "?" {
		t.Fatalf("prompt answer = %q, want \"?\"", answer)
	}
}
