// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import tea "github.com/charmbracelet/bubbletea"

// Reply hands a popup's result to whoever opened it. Only the first Send
// is delivered.
type Reply[T any] struct {
	fn func(T)
}

func NewReply[T any](fn func(T)) *Reply[T] {
	return &Reply[T]{fn: fn}
}

// Send delivers v and closes the popup.
func (r *Reply[T]) Send(v T) tea.Cmd {
	if r.fn != nil {
		fn := r.fn
		r.fn = nil
		fn(v)
	}
	return Close()
}

// Sent reports whether a result was already delivered.
func (r *Reply[T]) Sent() bool {
	return r.fn == nil
}
