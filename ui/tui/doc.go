// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the interactive terminal front end. It renders the grouped
// connection list and answers the settings workflows' questions with popups;
// all state changes go through core.Settings.
package tui
