// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the core data models used across Portmaster. These are
// simple structs that represent persisted records and the derived group view,
// intentionally minimal to keep serialization and storage adapters
// straightforward.
package model
