// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models along one axis.
package stack

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/portmaster/ui/tui/util"
	"github.com/toeirei/portmaster/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slices.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			return (*item.Model).Update(msg)
		})...)

		// items like the footer change height with their content
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size + margin).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size + margin).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	views := make([]string, 0, len(s.items))
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		// no gap before the first item
		margin := s.Gap * min(i, 1)
		views = append(views, styler(item.size, margin).Render((*item.Model).View()))
	}
	return joiner(s.Align, views...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(m.items) == 0 {
		return nil, nil
	}
	if m.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(m.items))
		keyMaps := make([]help.KeyMap, len(m.items))

		for i, item := range m.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*m.items[m.focussedIndex].Model).Focus()
}

func (m *Model) Blur() {
	if len(m.items) == 0 {
		return
	}
	if m.focussedIndex == FocusAll() {
		for _, item := range m.items {
			(*item.Model).Blur()
		}
		return
	}
	(*m.items[m.focussedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }
