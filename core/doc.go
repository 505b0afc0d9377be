// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core contains the UI-agnostic settings logic of Portmaster: the
// ordered record store, the derived group index, and the create/edit/delete
// workflows that tie them to persistence. Storage and human interaction are
// injected through the small interfaces in `interaction.go`, so the CLI and
// the TUI drive exactly the same code.
package core
