// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/portmaster/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/portmaster/ui/tui/models/helpers/form/input"
)

type settings struct {
	Name    string `mapstructure:"name"`
	Speed   int    `mapstructure:"speed"`
	Enabled bool   `mapstructure:"enabled"`
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
)

type outcome struct {
	submitted *settings
	err       error
	cancelled bool
}

func newForm(out *outcome) form.Form[settings] {
	return form.New(
		form.WithInput[settings]("name", forminput.NewText("Name", "")),
		form.WithInlineInput[settings]("speed", forminput.NewText("Speed", "")),
		form.WithInput[settings]("enabled", forminput.NewToggle("Enabled")),
		form.WithInput[settings]("save", forminput.NewButton("Save", false)),
		form.WithOnSubmit(func(s settings, err error) tea.Cmd {
			out.submitted, out.err = &s, err
			return nil
		}),
		form.WithOnCancel[settings](func() tea.Cmd {
			out.cancelled = true
			return nil
		}),
	)
}

func TestForm_SetGetRoundTrip(t *testing.T) {
	var out outcome
	f := newForm(&out)

	want := settings{Name: "COM1", Speed: 9600, Enabled: true}
	if err := f.Set(want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Fatalf("Get() = %+v, want %+v", got, want)
	}
}

func TestForm_GetRejectsNonNumeric(t *testing.T) {
	speed := forminput.NewText("Speed", "")
	speed.Set("fast")
	g := form.New(
		form.WithInput[settings]("speed", speed),
	)
	if _, err := g.Get(); err == nil {
		t.Fatalf("expected decode error for non-numeric speed")
	}
}

func TestForm_TabCyclesAndWraps(t *testing.T) {
	var out outcome
	f := newForm(&out)
	f.Focus()

	steps := []struct {
		key  tea.KeyMsg
		want string
	}{
		{tab, "speed"},
		{tab, "enabled"},
		{tab, "save"},
		{tab, "name"},
		{shiftTab, "save"},
	}
	for i, step := range steps {
		f, _ = f.Update(step.key)
		if got := f.ActiveID(); got != step.want {
			t.Fatalf("step %d: active = %q, want %q", i, got, step.want)
		}
	}
}

func TestForm_EnterWalksToSubmit(t *testing.T) {
	var out outcome
	f := newForm(&out)
	f.Set(settings{Name: "COM2", Speed: 115200})
	f.Focus()

	// name, speed and the toggle move on; the button submits
	for range 4 {
		f, _ = f.Update(enter)
	}

	if out.submitted == nil {
		t.Fatalf("form not submitted")
	}
	if out.err != nil {
		t.Fatalf("submit error: %v", out.err)
	}
	if *out.submitted != (settings{Name: "COM2", Speed: 115200}) {
		t.Fatalf("submitted %+v", *out.submitted)
	}
}

func TestForm_EscCancels(t *testing.T) {
	var out outcome
	f := newForm(&out)
	f.Focus()

	f.Update(esc)
	if !out.cancelled {
		t.Fatalf("esc did not cancel")
	}
	if out.submitted != nil {
		t.Fatalf("cancelled form submitted")
	}
}

func TestForm_IgnoresKeysWhileBlurred(t *testing.T) {
	var out outcome
	f := newForm(&out)

	f, _ = f.Update(esc)
	f, _ = f.Update(tab)
	if out.cancelled || f.ActiveID() != "name" {
		t.Fatalf("blurred form reacted to keys")
	}
}

func TestToggle_SpaceFlipsValue(t *testing.T) {
	toggle := forminput.NewToggle("XON")
	toggle.Focus()

	toggle.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	if got := toggle.Get(); got != true {
		t.Fatalf("Get() = %v after toggle", got)
	}
	if _, action := toggle.Update(enter); action != form.ActionNext {
		t.Fatalf("enter action = %v, want ActionNext", action)
	}
}

func TestText_SetFormatsNonStrings(t *testing.T) {
	text := forminput.NewText("Stop bits", "")
	text.Set(1.5)
	if got := text.Get(); got != "1.5" {
		t.Fatalf("Get() = %v, want 1.5", got)
	}
	text.Set(nil)
	if got := text.Get(); got != "" {
		t.Fatalf("Get() = %v, want empty", got)
	}
}
