// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"strings"
	"testing"
)

// TestConnectionCommands_BasicFlow tests the connection commands in a realistic workflow.
func TestConnectionCommands_BasicFlow(t *testing.T) {
	env := setupTestEnv(t)

	output := env.mustRun(t, "", "connection", "list")
	if !strings.Contains(output, "No connections found.") {
		t.Fatalf("expected empty list, got: %s", output)
	}

	output = env.mustRun(t, "", "connection", "add", "--name", "COM1", "--port", "/dev/ttyS0")
	if !strings.Contains(output, "Connection created: COM1") {
		t.Fatalf("expected creation message, got: %s", output)
	}
	env.mustRun(t, "", "connection", "add", "--name", "COM2", "--group", " Lab ", "--port", "/dev/ttyUSB0", "--baudrate", "9600", "--xon")

	output = env.mustRun(t, "", "connection", "list")
	for _, want := range []string{"1  COM1", "2  COM2", "Lab", "115200", "9600"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in list, got: %s", want, output)
		}
	}
	if groups := env.mustRun(t, "", "group", "list"); !strings.Contains(groups, "\nLab (1)\n") {
		t.Fatalf("group key should be normalized, got: %s", groups)
	}

	output = env.mustRun(t, "", "connection", "edit", "#1", "--name", "Console", "--stopbits", "2")
	if !strings.Contains(output, "Connection updated: Console") {
		t.Fatalf("expected update message, got: %s", output)
	}
	output = env.mustRun(t, "", "connection", "list")
	if !strings.HasPrefix(strings.Split(output, "\n")[1], "1  Console") {
		t.Fatalf("edited connection should keep its position, got: %s", output)
	}
}

func TestConnectionAdd_RequiresNameAndPort(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := env.run(t, "", "connection", "add", "--port", "/dev/ttyS0"); err == nil || !strings.Contains(err.Error(), "Name is required") {
		t.Fatalf("expected name required error, got %v", err)
	}
	if _, err := env.run(t, "", "connection", "add", "--name", "x"); err == nil || !strings.Contains(err.Error(), "Port is required") {
		t.Fatalf("expected port required error, got %v", err)
	}
	if _, err := env.run(t, "", "connection", "add", "--name", "x", "--port", "p", "--group", "a\tb"); err == nil {
		t.Fatalf("expected invalid group name error")
	}
}

func TestConnectionEdit_NoFlagsIsNoChange(t *testing.T) {
	env := setupTestEnv(t)
	env.mustRun(t, "", "connection", "add", "--name", "COM1", "--port", "/dev/ttyS0")

	output := env.mustRun(t, "", "connection", "edit", "COM1")
	if !strings.Contains(output, "No changes.") {
		t.Fatalf("expected no-change message, got: %s", output)
	}
}

func TestConnectionDelete(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantOut   string
		remaining bool
	}{
		{"confirmed by y", "y\n", nil, "Connection deleted: COM1", false},
		{"confirmed by label", "delete\n", nil, "Connection deleted: COM1", false},
		{"kept", "keep\n", nil, "Deletion cancelled.", true},
		{"end of input keeps", "", nil, "Deletion cancelled.", true},
		{"yes flag", "", []string{"--yes"}, "Connection deleted: COM1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			env.mustRun(t, "", "connection", "add", "--name", "COM1", "--port", "/dev/ttyS0")

			output := env.mustRun(t, tt.stdin, append([]string{"connection", "delete", "COM1"}, tt.args...)...)
			if !strings.Contains(output, tt.wantOut) {
				t.Fatalf("expected %q, got: %s", tt.wantOut, output)
			}
			if tt.args == nil && !strings.Contains(output, `Delete "COM1"?`) {
				t.Fatalf("expected confirmation question, got: %s", output)
			}

			list := env.mustRun(t, "", "connection", "list")
			if strings.Contains(list, "COM1") != tt.remaining {
				t.Fatalf("remaining=%v, list: %s", tt.remaining, list)
			}
		})
	}
}

func TestConnectionDelete_AmbiguousAndUnknown(t *testing.T) {
	env := setupTestEnv(t)
	env.mustRun(t, "", "connection", "add", "--name", "dup", "--port", "a")
	env.mustRun(t, "", "connection", "add", "--name", "dup", "--port", "b")

	if _, err := env.run(t, "", "connection", "delete", "dup", "--yes"); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("expected ambiguous selector error, got %v", err)
	}
	if _, err := env.run(t, "", "connection", "delete", "nope", "--yes"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}

	env.mustRun(t, "", "connection", "delete", "#2", "--yes")
	output := env.mustRun(t, "", "connection", "list")
	if !strings.Contains(output, "a") || strings.Count(output, "dup") != 1 {
		t.Fatalf("expected only the first dup to remain, got: %s", output)
	}
}
