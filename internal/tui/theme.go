package tui

import (
	"os"
	"strconv"
	"strings"

	"objbrowser/internal/browser"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The browser must stay readable on light and dark terminals, so row colors
// use lipgloss.AdaptiveColor and faint styling is only applied on dark
// backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted         = ac("240", "243")
	colorSelectedBg    = ac("#e9e9e9", "#262626")
	colorSelectedFg    = ac("235", "255")
	colorSurfaceFg     = ac("235", "252")
	colorControlBg     = ac("252", "235")
	colorAccent        = ac("27", "62")
	colorModalBg       = ac("255", "235")
	colorRowActive     = colorSurfaceFg
	colorRowInactive   = ac("246", "245")
	colorRowDestroyed  = ac("160", "203")
	colorStatusErrorFg = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// rowStyle maps a markup color tag to a terminal style. "white" reads as
// plain foreground text so it does not vanish on light backgrounds.
func rowStyle(tag string) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch tag {
	case browser.ColorActive:
		return st.Foreground(colorRowActive)
	case browser.ColorInactive:
		return faintIfDark(st.Foreground(colorRowInactive))
	case browser.ColorDestroyed:
		return st.Foreground(colorRowDestroyed).Strikethrough(true)
	default:
		return st
	}
}

// applyColorProfilePreference drops to plain text when NO_COLOR is set and
// otherwise keeps the profile Lip Gloss detected.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// applyThemePreference configures Lip Gloss's background detection:
// OBJBROWSER_TUI_THEME or OBJBROWSER_TUI_DARKBG first, then COLORFGBG.
func applyThemePreference() {
	if dark, ok := themeOverride(); ok {
		lipgloss.SetHasDarkBackground(dark)
		return
	}
	if dark, ok := colorFGBGDark(); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

func themeOverride() (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("OBJBROWSER_TUI_THEME"))) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	if v := strings.TrimSpace(os.Getenv("OBJBROWSER_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	}
	return false, false
}

// colorFGBGDark reads COLORFGBG. The last segment is the background; xterm
// palette entries 0-6 are dark.
func colorFGBGDark() (dark bool, ok bool) {
	v := strings.TrimSpace(os.Getenv("COLORFGBG"))
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return false, false
	}
	return bg < 7, true
}
