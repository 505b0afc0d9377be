// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"

	"github.com/toeirei/portmaster/core/model"
)

// Result is the answer of a human interaction: either a value or a
// cancellation (the user dismissed the dialog).
type Result[T any] struct {
	Value     T
	Cancelled bool
}

// Done wraps an affirmative interaction result.
func Done[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Cancelled is the result of a dismissed interaction.
func Cancelled[T any]() Result[T] {
	return Result[T]{Cancelled: true}
}

// SizeHint is a presentation hint for the edit dialog.
type SizeHint int

const (
	SizeDefault SizeHint = iota
	SizeLarge
)

// Severity classifies a confirmation request.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Button indexes used by destructive confirmations. Only ButtonAffirm is
// treated as consent.
const (
	ButtonKeep   = 0
	ButtonAffirm = 1
)

// EditRequest asks the user to fill in or change a connection. Seed is
// always a copy; implementations may modify it freely.
type EditRequest struct {
	Seed model.Connection
	Size SizeHint
}

// PromptRequest asks the user for a single line of text.
type PromptRequest struct {
	Label string
	Value string
}

// PromptResponse is the affirmative answer to a PromptRequest. Value may be
// empty.
type PromptResponse struct {
	Value string
}

// ConfirmRequest asks the user to pick one of Buttons.
type ConfirmRequest struct {
	Severity      Severity
	Message       string
	Buttons       []string
	DefaultButton int
}

// Editor presents the connection edit dialog. It is also responsible for
// required-field checks; core never validates opaque fields.
type Editor interface {
	EditConnection(ctx context.Context, req EditRequest) (Result[model.Connection], error)
}

// Prompter presents a single-line text prompt.
type Prompter interface {
	Prompt(ctx context.Context, req PromptRequest) (Result[PromptResponse], error)
}

// Confirmer presents a confirmation and returns the index of the chosen
// button. There is no cancellation distinct from choosing a non-affirmative
// button.
type Confirmer interface {
	Confirm(ctx context.Context, req ConfirmRequest) (int, error)
}

// Interactions bundles the human-in-the-loop collaborators.
type Interactions struct {
	Editor    Editor
	Prompter  Prompter
	Confirmer Confirmer
}

// Loader reads the persisted connection list.
type Loader interface {
	Load(ctx context.Context) ([]model.Connection, error)
}

// Saver durably writes the entire connection list. Save must be idempotent.
type Saver interface {
	Save(ctx context.Context, connections []model.Connection) error
}

// Persistence is a storage backend for connections.
type Persistence interface {
	Loader
	Saver
}
