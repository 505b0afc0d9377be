// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
)

// Common errors returned by the settings workflows.
var (
	ErrPersist           = errors.New("persist connections")
	ErrUnknownConnection = errors.New("connection is not in the store")
	ErrInvalidGroupName  = errors.New("invalid group name")
	ErrNotFound          = errors.New("not found")
	ErrAmbiguous         = errors.New("ambiguous selector")
)

// PersistError reports a failed save. The in-memory mutation that preceded
// it is kept, so the store is ahead of durable state until the next
// successful save.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrPersist and the backend error to errors.Is.
func (e *PersistError) Unwrap() []error {
	return []error{ErrPersist, e.Err}
}
