// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testEnv struct {
	dir        string
	configPath string
	storePath  string
}

// setupTestEnv isolates the user config dir and writes a config that keeps
// connections in a temp YAML file.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	env := &testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "portmaster.yaml"),
		storePath:  filepath.Join(dir, "connections.yaml"),
	}
	content := "language: en\nstorage:\n  type: file\n  dsn: " + env.storePath + "\nlog:\n  level: error\n"
	if err := os.WriteFile(env.configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

// run executes a fresh root command and returns its output and error.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--config", e.configPath))
	err := root.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := e.run(t, stdin, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}

func TestRoot_VersionIsSet(t *testing.T) {
	if NewRootCmd().Version == "" {
		t.Fatalf("expected a version string")
	}
}

func TestRoot_MissingConfigFile(t *testing.T) {
	setupTestEnv(t)
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"connection", "list", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestRoot_UnsupportedStorage(t *testing.T) {
	env := setupTestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("storage:\n  type: redis\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := env.run(t, "", "connection", "list"); err == nil || !strings.Contains(err.Error(), "unsupported storage type") {
		t.Fatalf("expected unsupported storage error, got %v", err)
	}
}
