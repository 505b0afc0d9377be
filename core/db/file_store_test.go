// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/toeirei/portmaster/core/model"
)

func sampleConnections() []model.Connection {
	a := model.NewConnection()
	a.Name, a.Port = "COM1", "/dev/ttyS0"
	b := model.NewConnection()
	b.Name, b.Group, b.Port = "COM2", "Lab", "/dev/ttyUSB0"
	b.BaudRate, b.StopBits, b.XON = 9600, 2, true
	return []model.Connection{a, b}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "settings.yaml"))
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.yaml")
	s := NewFileStore(path)
	want := sampleConnections()

	if err := s.Save(context.Background(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d connections, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("connection %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Fatalf("expected mode 0600, got %o", perm)
		}
	}
}

func TestFileStore_SaveIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := NewFileStore(path)
	conns := sampleConnections()

	if err := s.Save(context.Background(), conns); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	first, _ := os.ReadFile(path)
	if err := s.Save(context.Background(), conns); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	second, _ := os.ReadFile(path)
	if string(first) != string(second) {
		t.Fatalf("repeated save changed the file:\n%s\n---\n%s", first, second)
	}
}

func TestFileStore_PreservesOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	initial := "appearance:\n  theme: dark\nserial:\n  autoconnect: true\n  connections: []\n"
	if err := os.WriteFile(path, []byte(initial), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := NewFileStore(path).Save(context.Background(), sampleConnections()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"theme: dark", "autoconnect: true", "name: COM2"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %q in saved file:\n%s", want, data)
		}
	}
}

func TestFileStore_UngroupedOmitsGroupKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := NewFileStore(path).Save(context.Background(), sampleConnections()[:1]); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "group:") {
		t.Fatalf("ungrouped connection should not carry a group key:\n%s", data)
	}
}

func TestFileStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("serial: [unclosed"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}
