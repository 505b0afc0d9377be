// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"slices"

	"github.com/toeirei/portmaster/core/model"
)

type memPersistence struct {
	records []model.Connection
	saves   int
	saveErr error
	loadErr error

	// ctx.Err() seen by the last Save
	saveCtxErr error
}

func (m *memPersistence) Load(context.Context) ([]model.Connection, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return slices.Clone(m.records), nil
}

func (m *memPersistence) Save(ctx context.Context, conns []model.Connection) error {
	m.saves++
	m.saveCtxErr = ctx.Err()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = slices.Clone(conns)
	return nil
}

type fakeEditor struct {
	requests []EditRequest
	respond  func(EditRequest) Result[model.Connection]
	err      error
}

func (f *fakeEditor) EditConnection(_ context.Context, req EditRequest) (Result[model.Connection], error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return Result[model.Connection]{}, f.err
	}
	return f.respond(req), nil
}

type fakePrompter struct {
	requests []PromptRequest
	result   Result[PromptResponse]
	before   func()
}

func (f *fakePrompter) Prompt(_ context.Context, req PromptRequest) (Result[PromptResponse], error) {
	f.requests = append(f.requests, req)
	if f.before != nil {
		f.before()
	}
	return f.result, nil
}

type fakeConfirmer struct {
	requests []ConfirmRequest
	choice   int
}

func (f *fakeConfirmer) Confirm(_ context.Context, req ConfirmRequest) (int, error) {
	f.requests = append(f.requests, req)
	return f.choice, nil
}

func conn(name, group string) model.Connection {
	c := model.NewConnection()
	c.Name = name
	c.Group = group
	c.Port = "/dev/tty" + name
	return c
}
