// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

//
// Package cli implements the command-line interface for Portmaster using
// Cobra. It wires configuration, storage and the terminal interactions, and
// provides commands that delegate to the `core` settings workflows. CLI code
// should remain thin and keep business logic in `core`.
package cli
