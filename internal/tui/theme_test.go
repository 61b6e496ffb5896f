package tui

import "testing"

func TestThemeOverride(t *testing.T) {
	tests := []struct {
		theme, darkbg string
		dark, ok      bool
	}{
		{theme: "dark", dark: true, ok: true},
		{theme: "LIGHT", darkbg: "true", dark: false, ok: true},
		{theme: "auto", darkbg: "1", dark: true, ok: true},
		{darkbg: "nope"},
		{},
	}
	for _, tt := range tests {
		t.Setenv("OBJBROWSER_TUI_THEME", tt.theme)
		t.Setenv("OBJBROWSER_TUI_DARKBG", tt.darkbg)
		dark, ok := themeOverride()
		if dark != tt.dark || ok != tt.ok {
			t.Fatalf("theme=%q darkbg=%q: got (%v, %v), want (%v, %v)", tt.theme, tt.darkbg, dark, ok, tt.dark, tt.ok)
		}
	}
}

func TestColorFGBGDark(t *testing.T) {
	tests := []struct {
		in       string
		dark, ok bool
	}{
		{in: "15;0", dark: true, ok: true},
		{in: "0;15", dark: false, ok: true},
		{in: "7;default;0", dark: true, ok: true},
		{in: "15;x"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Setenv("COLORFGBG", tt.in)
		dark, ok := colorFGBGDark()
		if dark != tt.dark || ok != tt.ok {
			t.Fatalf("COLORFGBG=%q: got (%v, %v), want (%v, %v)", tt.in, dark, ok, tt.dark, tt.ok)
		}
	}
}
