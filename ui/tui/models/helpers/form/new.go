// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithKeyMap adds bindings shown alongside the form's own while it is
// focused.
func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.baseKeyMap = keyMap
	}
}

// WithInput adds input on a row of its own. id is the mapstructure key the
// input's value is decoded into.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{})
		form.appendToLastRow(id, input)
	}
}

// WithInlineInput adds input to the row of the previous input.
func WithInlineInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		if len(form.rows) == 0 {
			form.rows = append(form.rows, formRow{})
		}
		form.appendToLastRow(id, input)
	}
}
