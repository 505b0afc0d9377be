// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading and persistence helpers for
// Portmaster. It uses Viper for file/env/flag parsing and exposes utility
// functions to read/write configuration files.
package config
