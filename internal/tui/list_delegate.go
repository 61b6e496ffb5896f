package tui

import (
	"fmt"
	"io"
	"strings"

	"objbrowser/internal/browser"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// objectDelegate renders one object per terminal line.
type objectDelegate struct {
	selected lipgloss.Style
}

func newObjectDelegate() objectDelegate {
	return objectDelegate{
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d objectDelegate) Height() int  { return 1 }
func (d objectDelegate) Spacing() int { return 0 }
func (d objectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d objectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fmt.Fprint(w, d.renderLine(item, m.Width(), index == m.Index()))
}

func (d objectDelegate) renderLine(item list.Item, width int, selected bool) string {
	if width < 4 {
		return ""
	}

	var tag, body string
	if t, ok := item.(interface{ Title() string }); ok {
		tag, body = browser.SplitColor(t.Title())
	} else {
		body = fmt.Sprint(item)
	}

	bodyW := width - 2
	if xansi.StringWidth(body) > bodyW {
		body = xansi.Truncate(body, bodyW, "…")
	}
	if pad := bodyW - xansi.StringWidth(body); pad > 0 {
		body += strings.Repeat(" ", pad)
	}

	marker := "  "
	style := rowStyle(tag)
	if selected {
		marker = "> "
		sel := d.selected
		if tag != "" {
			sel = sel.Foreground(style.GetForeground()).Strikethrough(style.GetStrikethrough())
		}
		style = sel
	}
	return style.Render(marker + body)
}
