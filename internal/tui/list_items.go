package tui

import (
	"objbrowser/internal/browser"

	"github.com/charmbracelet/bubbles/list"
)

// objectRow adapts one browser row to bubbles/list.
type objectRow struct {
	item *browser.Item
}

func (r objectRow) FilterValue() string { return browser.PlainText(r.item.Text()) }

// Title is the row text with its color tag still attached; the delegate
// turns the tag into a style.
func (r objectRow) Title() string       { return r.item.Text() }
func (r objectRow) Description() string { return r.item.Snapshot().State().String() }

func rowsFor(items []*browser.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, objectRow{item: it})
	}
	return out
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newObjectDelegate(), 0, 0)
	l.Title = title
	// The app renders its own header and footer.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Filtering goes through the browser criteria, not the list's fuzzy filter.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("object", "objects")
	// ESC closes views here; only q quits.
	l.KeyMap.Quit.SetKeys("q")

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)

	goToStartKeys := append([]string{}, l.KeyMap.GoToStart.Keys()...)
	goToStartKeys = append(goToStartKeys, "<")
	l.KeyMap.GoToStart.SetKeys(goToStartKeys...)

	goToEndKeys := append([]string{}, l.KeyMap.GoToEnd.Keys()...)
	goToEndKeys = append(goToEndKeys, ">")
	l.KeyMap.GoToEnd.SetKeys(goToEndKeys...)
	return l
}
