package tui

import (
	"strings"

	"objbrowser/internal/browser"
	"objbrowser/internal/watch"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return waitForSceneChange(m.watcher) }

func waitForSceneChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.C; !ok {
			return nil
		}
		return sceneChangedMsg{}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case sceneChangedMsg:
		m.reloadFromDisk()
		return m, waitForSceneChange(m.watcher)

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeInspect:
			return m.updateInspect(msg)
		case modeConfirmDestroy:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeFilter:
		m.filter, cmd = m.filter.Update(msg)
	case modeInspect:
		m.viewport, cmd = m.viewport.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, listKeys.Filter):
		m.mode = modeFilter
		m.prevQuery = m.query
		m.filter.SetValue(m.query)
		m.filter.CursorEnd()
		return m, m.filter.Focus()
	case key.Matches(msg, listKeys.Reverse):
		m.reverse = !m.reverse
		m.applyCriteria()
		if m.reverse {
			m.setStatus("order: reversed")
		} else {
			m.setStatus("order: scene")
		}
		return m, nil
	case key.Matches(msg, listKeys.Reload):
		m.reloadFromDisk()
		return m, nil
	case key.Matches(msg, listKeys.Help):
		m.openHelp()
		return m, nil
	case key.Matches(msg, listKeys.Inspect):
		m.invoke(m.selectedItem(), browser.ActionInspect)
		return m, nil
	case key.Matches(msg, listKeys.Toggle):
		m.invoke(m.selectedItem(), browser.ActionToggleActive)
		return m, nil
	case key.Matches(msg, listKeys.Destroy):
		it := m.selectedItem()
		if it == nil {
			return m, nil
		}
		if it.Snapshot().State() == browser.StateDestroyed {
			m.setStatus(it.Snapshot().Name() + " is already destroyed")
			return m, nil
		}
		m.pending = it
		m.confirmFocus = confirmFocusConfirm
		m.mode = modeConfirmDestroy
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.query = strings.TrimSpace(m.filter.Value())
		m.filter.Blur()
		m.mode = modeList
		m.applyCriteria()
		return m, nil
	case "esc":
		m.query = m.prevQuery
		m.filter.Blur()
		m.mode = modeList
		m.applyCriteria()
		return m, nil
	}

	// Filter as you type.
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.query = m.filter.Value()
	m.applyCriteria()
	return m, cmd
}

func (m appModel) updateInspect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "enter", "backspace":
		m.closeInspect()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y":
		return m.confirmDestroy(), nil
	case "n", "esc", "q":
		m.pending = nil
		m.mode = modeList
		return m, nil
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.next()
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDestroy(), nil
		}
		m.pending = nil
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

func (m appModel) confirmDestroy() appModel {
	it := m.pending
	m.pending = nil
	m.mode = modeList
	m.invoke(it, browser.ActionDestroy)
	return m
}
