package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style + wrap width. WithAutoStyle is avoided because it can
	// block on terminal background queries.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// inspectMarkdown wraps serialized components in a fenced block so glamour
// highlights them.
func inspectMarkdown(body, lang string) string {
	body = strings.TrimRight(body, "\n")
	if strings.TrimSpace(body) == "" {
		return "_No components attached._"
	}
	return "```" + lang + "\n" + body + "\n```"
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		cfg := markdownStyleConfig(style)
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyleConfig(style string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if style == "light" {
		cfg = styles.LightStyleConfig
	}
	zero := uint(0)
	cfg.Document.Margin = &zero
	cfg.CodeBlock.Margin = &zero
	cfg.Text.Color = mdColor(colorSurfaceFg, style)
	if cfg.CodeBlock.BackgroundColor == nil {
		cfg.CodeBlock.BackgroundColor = mdColor(colorControlBg, style)
	}
	return cfg
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("OBJBROWSER_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// Follow the TUI theme so code blocks stay readable when it is forced.
	if dark, ok := themeOverride(); ok {
		return styleName(dark)
	}
	if dark, ok := colorFGBGDark(); ok {
		return styleName(dark)
	}
	return styleName(lipgloss.HasDarkBackground())
}

func styleName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func mdColor(c lipgloss.AdaptiveColor, style string) *string {
	if style == "light" {
		return &c.Light
	}
	return &c.Dark
}
