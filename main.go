// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Portmaster.
//
// Usage:
//
//	go run . [flags]
//	./portmaster [flags]
//
// This launches the Portmaster CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/portmaster/internal/logging"
	"github.com/toeirei/portmaster/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
