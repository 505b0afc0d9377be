// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

//
// Package uiadapters contains thin adapter implementations that bridge
// `core` interfaces to the concrete backends in `core/db`. UIs call
// NewPersistence with the loaded configuration and never touch a backend
// directly.
package uiadapters
