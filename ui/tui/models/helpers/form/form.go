// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form is a small focus-cycling form whose values are decoded into a
// struct with mapstructure.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/portmaster/ui/tui/util"
	"github.com/toeirei/portmaster/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	// Set and Get exchange the input's value. Inputs without a value, like
	// buttons, return nil from Get.
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	baseKeyMap  help.KeyMap
	size        util.Size
}

func (f *Form[T]) appendToLastRow(id string, input FormInput) {
	f.items = append(f.items, formItem{id: id, input: input})
	last := &f.rows[len(f.rows)-1]
	last.items = append(last.items, len(f.items)-1)
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	if f.size.Update(msg) {
		return f, nil
	}
	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		case key.Matches(kmsg, DefaultKeyMap.Cancel):
			return f, f.cancel()
		}
	}

	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(f.size.Width / len(row.items))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.keyMap(nil)
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, f.keyMap(keyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// Resize sets the width inputs are rendered with.
func (f *Form[T]) Resize(size util.Size) {
	f.size = size
}

// ActiveID returns the id of the focused input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	data, err := f.Get()
	var resetCmd tea.Cmd
	if f.ResetAfterSubmit && err == nil {
		resetCmd = f.Reset()
	}
	var submitCmd tea.Cmd
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) cancel() tea.Cmd {
	if f.OnCancel != nil {
		return f.OnCancel()
	}
	return nil
}

func (f *Form[T]) keyMap(input help.KeyMap) help.KeyMap {
	return util.MergeKeyMaps(input, DefaultKeyMap, f.baseKeyMap)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	var actionCmd tea.Cmd
	switch action {
	case ActionNone:
	case ActionNext:
		// moving on from the last input submits
		if f.activeIndex == len(f.items)-1 {
			actionCmd = f.Submit()
		} else {
			actionCmd = f.changeActiveIndex(1)
		}
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		actionCmd = f.cancel()
	}

	return tea.Batch(updateCmd, actionCmd)
}

// changeActiveIndex moves focus by delta inputs, wrapping around.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	next := ((f.activeIndex+delta)%len(f.items) + len(f.items)) % len(f.items)
	if !f.focused {
		f.activeIndex = next
		return nil
	}

	f.items[f.activeIndex].input.Blur()
	f.activeIndex = next
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(f.keyMap(keyMap)))
}

// Get decodes the current input values into a T. Values are decoded weakly,
// so text inputs can fill numeric fields.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))
	for _, item := range f.items {
		if v := item.input.Get(); v != nil {
			values[item.id] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &data,
	})
	if err != nil {
		return data, err
	}
	err = decoder.Decode(values)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for _, item := range f.items {
		if value, ok := values[item.id]; ok {
			item.input.Set(value)
		}
	}
	return nil
}
