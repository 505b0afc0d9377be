// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestMergeKeyMaps_SkipsNil(t *testing.T) {
	a := testKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := testKeyMap{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}

	merged := MergeKeyMaps(a, nil, b)
	if got := len(merged.ShortHelp()); got != 3 {
		t.Fatalf("ShortHelp() has %d bindings, want 3", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("FullHelp() has %d groups, want 2", got)
	}
}

func TestAnnounceKeyMapCmd(t *testing.T) {
	var km help.KeyMap = testKeyMap{}
	msg, ok := AnnounceKeyMapCmd(km)().(AnnounceKeyMapMsg)
	if !ok {
		t.Fatalf("unexpected message type")
	}
	if msg.KeyMap == nil {
		t.Fatalf("key map not carried")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		wanted, want int
	}{
		{-3, 0},
		{4, 4},
		{12, 9},
	}
	for _, tt := range tests {
		if got := Clamp(0, tt.wanted, 9); got != tt.want {
			t.Fatalf("Clamp(0, %d, 9) = %d, want %d", tt.wanted, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key message treated as resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("resize not recognised")
	}
	if got := s.Shrink(6, 30); got != (Size{Width: 74, Height: 0}) {
		t.Fatalf("Shrink() = %+v", got)
	}
	if got := s.ToMsg(); got.Width != 80 || got.Height != 24 {
		t.Fatalf("ToMsg() = %+v", got)
	}
}
