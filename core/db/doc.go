// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db contains the persistence backends for the connection list: a
// YAML settings file (the default) and a Bun-backed SQL table for sqlite,
// postgres and mysql. Both satisfy `core.Persistence`; use `uiadapters` to
// obtain one from configuration.
package db
