// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/ui/tui/models/components/popup"
	"github.com/toeirei/portmaster/ui/tui/models/views/confirm"
	"github.com/toeirei/portmaster/ui/tui/models/views/connectionedit"
	"github.com/toeirei/portmaster/ui/tui/models/views/prompt"
	"github.com/toeirei/portmaster/ui/tui/util"
)

// ErrNotAttached is returned by Interactor requests made before Attach.
var ErrNotAttached = errors.New("interactor is not attached to a program")

// Interactor answers workflow questions with popups. Every request opens a
// popup through the running program and blocks the calling goroutine until
// the popup replies or ctx is done. Requests must therefore never be made
// from the program's update loop.
type Interactor struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewInteractor() *Interactor {
	return &Interactor{}
}

// Attach sets the function used to deliver messages to the program,
// usually (*tea.Program).Send.
func (it *Interactor) Attach(send func(tea.Msg)) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.send = send
}

// Interactions returns it in all three collaborator roles.
func (it *Interactor) Interactions() core.Interactions {
	return core.Interactions{
		Editor:    it,
		Prompter:  it,
		Confirmer: it,
	}
}

func (it *Interactor) EditConnection(ctx context.Context, req core.EditRequest) (core.Result[model.Connection], error) {
	return await(ctx, it, func(done func(core.Result[model.Connection])) util.Model {
		return connectionedit.New(req, done)
	})
}

func (it *Interactor) Prompt(ctx context.Context, req core.PromptRequest) (core.Result[core.PromptResponse], error) {
	return await(ctx, it, func(done func(core.Result[core.PromptResponse])) util.Model {
		return prompt.New(req, done)
	})
}

func (it *Interactor) Confirm(ctx context.Context, req core.ConfirmRequest) (int, error) {
	return await(ctx, it, func(done func(int)) util.Model {
		return confirm.New(req, done)
	})
}

var (
	_ core.Editor    = (*Interactor)(nil)
	_ core.Prompter  = (*Interactor)(nil)
	_ core.Confirmer = (*Interactor)(nil)
)

func await[T any](ctx context.Context, it *Interactor, build func(done func(T)) util.Model) (T, error) {
	var zero T

	it.mu.RLock()
	send := it.send
	it.mu.RUnlock()
	if send == nil {
		return zero, ErrNotAttached
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// popups reply at most once, so the buffer never blocks the update loop
	replies := make(chan T, 1)
	m := build(func(v T) { replies <- v })
	send(popup.Open(&m)())

	select {
	case v := <-replies:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
