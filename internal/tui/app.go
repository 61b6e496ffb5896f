package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	order := "scene"
	if m.reverse {
		order = "reversed"
	}
	header := lipgloss.NewStyle().
		Bold(true).
		Render(fmt.Sprintf("Object Browser  Scene=%s  Objects=%d  Filter=%s  Order=%s",
			emptyAsDash(m.sceneName),
			m.ctrl.Count(),
			emptyAsDash(m.query),
			order,
		))

	var body string
	switch m.mode {
	case modeInspect:
		body = m.viewInspect()
	default:
		if m.ctrl.Count() == 0 {
			body = styleMuted().Render("No objects.")
		} else {
			body = m.list.View()
		}
	}
	if m.mode == modeConfirmDestroy && m.pending != nil {
		modal := renderConfirmModal(m.width, "Destroy object",
			fmt.Sprintf("Destroy %q and all of its children?", m.pending.Snapshot().Name()),
			"Destroy", "Cancel", m.confirmFocus)
		body = lipgloss.Place(max(m.width, lipgloss.Width(modal)), m.bodyHeight(), lipgloss.Center, lipgloss.Center, modal)
	}

	return strings.Join([]string{header, body, m.footer()}, "\n\n")
}

func (m appModel) viewInspect() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(m.paneHeading())
	return title + "\n\n" + m.viewport.View()
}

func (m appModel) paneHeading() string {
	if m.pane.markdown {
		return m.pane.title
	}
	return "Inspect: " + m.pane.title
}

func (m appModel) footer() string {
	var hints string
	switch m.mode {
	case modeFilter:
		return m.filter.View()
	case modeInspect:
		hints = "↑/↓: scroll  esc: close  q: close"
	case modeConfirmDestroy:
		hints = "y: destroy  n: cancel"
	default:
		var parts []string
		if it := m.selectedItem(); it != nil {
			for _, a := range it.Actions {
				parts = append(parts, listKeys.actionBinding(a.Kind).Help().Key+": "+a.Label)
			}
		}
		for _, b := range listKeys.globalHelp() {
			h := b.Help()
			parts = append(parts, h.Key+": "+h.Desc)
		}
		hints = strings.Join(parts, "  ")
	}

	out := styleMuted().Render(hints)
	if m.status != "" {
		st := lipgloss.NewStyle()
		if m.statusErr {
			st = st.Foreground(colorStatusErrorFg)
		}
		out += "\n" + st.Render(m.status)
	}
	return out
}

func emptyAsDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
