// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package connections is the main view: the grouped connection list and the
// keys that start the settings workflows.
package connections

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/i18n"
	"github.com/toeirei/portmaster/internal/logging"
	windowtitle "github.com/toeirei/portmaster/ui/tui/models/helpers/title"
	"github.com/toeirei/portmaster/ui/tui/models/views/footer"
	"github.com/toeirei/portmaster/ui/tui/util"
)

// Settings is the part of core.Settings the list drives.
type Settings interface {
	View(fn func(core.Snapshot))
	CreateConnection(ctx context.Context) (bool, error)
	EditConnection(ctx context.Context, c *model.Connection) (bool, error)
	DeleteConnection(ctx context.Context, c *model.Connection) (bool, error)
	EditGroup(ctx context.Context, g model.Group) (bool, error)
	DeleteGroup(ctx context.Context, g model.Group) (bool, error)
}

// WorkflowDoneMsg is sent when a workflow started from the list returns.
type WorkflowDoneMsg struct {
	Op      string
	Applied bool
	Err     error
}

// RefreshMsg asks the list to re-read the store.
type RefreshMsg struct{}

func Refresh() tea.Cmd {
	return func() tea.Msg { return RefreshMsg{} }
}

var (
	groupStyle    = lipgloss.NewStyle().Bold(true)
	portStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Padding(1, 2)
)

type Model struct {
	ctx       context.Context
	settings  Settings
	rows      []row
	cursor    int
	offset    int
	collapsed map[string]bool
	focused   bool
	size      util.Size

	// copy writes to the system clipboard
	copy func(string) error
}

func New(ctx context.Context, settings Settings) *Model {
	m := &Model{
		ctx:       ctx,
		settings:  settings,
		collapsed: make(map[string]bool),
		copy:      clipboard.WriteAll,
	}
	m.rebuild()
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.titleCmd()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.scroll()
		return nil
	}

	switch msg := msg.(type) {
	case WorkflowDoneMsg:
		m.rebuild()
		return tea.Batch(m.statusCmd(msg), m.titleCmd(), m.announceCmd())
	case RefreshMsg:
		m.rebuild()
		return tea.Batch(m.titleCmd(), m.announceCmd())
	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := DefaultKeyMap
	r, ok := m.selected()

	switch {
	case key.Matches(msg, km.Up):
		return m.moveCursor(-1)
	case key.Matches(msg, km.Down):
		return m.moveCursor(1)
	case key.Matches(msg, km.New):
		return m.run("create connection", m.settings.CreateConnection)
	case !ok:
		return nil
	case key.Matches(msg, km.Edit):
		if r.isGroup() {
			g := model.Group{Name: r.group}
			return m.run("rename group", func(ctx context.Context) (bool, error) {
				return m.settings.EditGroup(ctx, g)
			})
		}
		return m.run("edit connection", func(ctx context.Context) (bool, error) {
			return m.settings.EditConnection(ctx, r.conn)
		})
	case key.Matches(msg, km.Delete):
		if r.isGroup() {
			g := model.Group{Name: r.group}
			return m.run("delete group", func(ctx context.Context) (bool, error) {
				return m.settings.DeleteGroup(ctx, g)
			})
		}
		return m.run("delete connection", func(ctx context.Context) (bool, error) {
			return m.settings.DeleteConnection(ctx, r.conn)
		})
	case key.Matches(msg, km.Collapse):
		m.collapsed[r.group] = !m.collapsed[r.group]
		// keep the cursor on the header of a group that just folded away
		if !r.isGroup() {
			r = row{group: r.group}
		}
		m.rebuildAt(r)
		return m.announceCmd()
	case key.Matches(msg, km.Copy):
		if r.isGroup() {
			return nil
		}
		if err := m.copy(r.port); err != nil {
			logging.Warnf("copy port to clipboard: %v", err)
			return footer.SetStatus(err.Error(), true)
		}
		return footer.SetStatus(i18n.T("connections.copied", r.port), false)
	}
	return nil
}

// run starts a workflow off the update loop. Workflows block while their
// popups are open.
func (m *Model) run(op string, fn func(ctx context.Context) (bool, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		applied, err := fn(ctx)
		return WorkflowDoneMsg{Op: op, Applied: applied, Err: err}
	}
}

func (m *Model) statusCmd(msg WorkflowDoneMsg) tea.Cmd {
	switch {
	case errors.Is(msg.Err, context.Canceled):
		return nil
	case errors.Is(msg.Err, core.ErrPersist):
		return footer.SetStatus(i18n.T("error.persist", msg.Err), true)
	case msg.Err != nil:
		logging.Warnf("%s: %v", msg.Op, msg.Err)
		return footer.SetStatus(msg.Err.Error(), true)
	case msg.Applied:
		return footer.SetStatus(i18n.T("status.saved"), false)
	}
	return footer.SetStatus("", false)
}

func (m *Model) titleCmd() tea.Cmd {
	n := 0
	for _, r := range m.rows {
		if r.isGroup() {
			n += r.count
		}
	}
	return windowtitle.Set(i18n.T("connections.count", n))
}

func (m *Model) announceCmd() tea.Cmd {
	if !m.focused {
		return nil
	}
	return util.AnnounceKeyMapCmd(m.keyMap())
}

func (m *Model) keyMap() help.KeyMap {
	r, ok := m.selected()
	return DefaultKeyMap.forRow(r, ok)
}

func (m *Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	before, _ := m.selected()
	m.cursor = util.Clamp(0, m.cursor+delta, len(m.rows)-1)
	m.scroll()
	if after, _ := m.selected(); after.isGroup() != before.isGroup() {
		return m.announceCmd()
	}
	return nil
}

func (m *Model) rebuild() {
	r, _ := m.selected()
	m.rebuildAt(r)
}

// rebuildAt re-reads the store and puts the cursor back on the row showing
// the same group or record as want, if it still exists.
func (m *Model) rebuildAt(want row) {
	m.settings.View(func(s core.Snapshot) {
		m.rows = buildRows(s, m.collapsed)
	})
	for i, r := range m.rows {
		if r.same(want) {
			m.cursor = i
			m.scroll()
			return
		}
	}
	m.cursor = util.Clamp(0, m.cursor, max(len(m.rows)-1, 0))
	m.scroll()
}

func (m *Model) scroll() {
	height := m.size.Height
	if height <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	m.offset = util.Clamp(0, m.offset, max(len(m.rows)-height, 0))
}

func (m *Model) View() string {
	if len(m.rows) == 0 {
		return emptyStyle.Render(i18n.T("connections.empty"))
	}

	nameWidth := 0
	for _, r := range m.rows {
		if !r.isGroup() {
			nameWidth = max(nameWidth, lipgloss.Width(r.name))
		}
	}

	end := len(m.rows)
	if m.size.Height > 0 {
		end = min(end, m.offset+m.size.Height)
	}

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		line := m.renderRow(m.rows[i], nameWidth)
		if i == m.cursor && m.focused {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r row, nameWidth int) string {
	if r.isGroup() {
		marker := "▾"
		if m.collapsed[r.group] {
			marker = "▸"
		}
		return groupStyle.Render(fmt.Sprintf("%s %s (%d)", marker, GroupLabel(r.group), r.count))
	}
	return fmt.Sprintf("    %-*s  %s", nameWidth, r.name,
		portStyle.Render(fmt.Sprintf("%s  %d", r.port, r.baud)))
}

// GroupLabel is how a group key is shown to the user.
func GroupLabel(name string) string {
	if name == model.Ungrouped {
		return i18n.T("connections.ungrouped")
	}
	return name
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keyMap()
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
