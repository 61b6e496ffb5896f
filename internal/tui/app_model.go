package tui

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"objbrowser/internal/browser"
	"objbrowser/internal/docs"
	"objbrowser/internal/scene"
	"objbrowser/internal/store"
	"objbrowser/internal/watch"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

type appModel struct {
	store     store.Store
	graph     *scene.Graph
	sceneName string
	lang      string

	ctrl    *browser.Controller
	pane    *inspectPane
	saver   *sceneSaver
	watcher *watch.Watcher
	log     *slog.Logger

	width  int
	height int
	mode   mode

	list     list.Model
	filter   textinput.Model
	viewport viewport.Model

	query     string
	prevQuery string
	reverse   bool

	pending      *browser.Item
	confirmFocus confirmModalFocus

	status    string
	statusErr bool
}

func newAppModel(opts Options) appModel {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	lang := "json"
	ser := browser.SerializerFor(opts.Format)
	if _, ok := ser.(browser.YAMLSerializer); ok {
		lang = "yaml"
	}

	pane := &inspectPane{}
	saver := &sceneSaver{store: opts.Store, graph: opts.Graph, name: opts.SceneName, log: log}
	m := appModel{
		store:     opts.Store,
		graph:     opts.Graph,
		sceneName: opts.SceneName,
		lang:      lang,
		pane:      pane,
		saver:     saver,
		log:       log,
		mode:      modeList,
		query:     opts.Query,
		reverse:   opts.Reverse,
	}
	m.ctrl = browser.NewController(opts.Graph, browser.Options{
		Criteria:   m.criteria(),
		Serializer: ser,
		Viewer:     pane,
		Logger:     log,
		OnMutate:   saver.onMutate,
	})

	m.list = newList("Objects", rowsFor(m.ctrl.Items()))

	m.filter = textinput.New()
	m.filter.Prompt = "/ "
	m.filter.Placeholder = "filter objects"
	m.filter.CharLimit = 200

	m.viewport = viewport.New(0, 0)
	return m
}

func (m appModel) criteria() browser.Criteria {
	return browser.Criteria{Match: browser.MatchText(m.query), Reverse: m.reverse}
}

func (m *appModel) applyCriteria() {
	m.ctrl.SetCriteria(m.criteria())
	m.syncItems()
}

// syncItems swaps in the controller's current rows, keeping the cursor on
// the same position when it still exists.
func (m *appModel) syncItems() {
	idx := m.list.Index()
	m.list.SetItems(rowsFor(m.ctrl.Items()))
	n := len(m.list.Items())
	if n == 0 {
		return
	}
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
}

func (m appModel) selectedItem() *browser.Item {
	if r, ok := m.list.SelectedItem().(objectRow); ok {
		return r.item
	}
	return nil
}

// invoke runs one action on a row and reports the outcome in the status line.
func (m *appModel) invoke(it *browser.Item, kind browser.ActionKind) {
	if it == nil {
		return
	}
	a, ok := it.Action(kind)
	if !ok {
		return
	}
	name := it.Snapshot().Name()
	before := m.saver.mutations
	a.Invoke()

	if kind == browser.ActionInspect {
		if m.pane.open {
			m.openInspect()
		} else {
			m.setError(fmt.Errorf("%s no longer exists", name))
		}
		return
	}
	m.syncItems()
	switch {
	case m.saver.mutations == before:
		m.setError(fmt.Errorf("%s no longer exists", name))
	case m.saver.err != nil:
		m.setError(fmt.Errorf("%s: %s applied but not saved: %w", name, kind.Label(), m.saver.err))
	default:
		m.setStatus(fmt.Sprintf("%s: %s", kind.Label(), name))
	}
}

func (m *appModel) openInspect() {
	m.mode = modeInspect
	m.renderInspect()
	m.viewport.GotoTop()
}

func (m *appModel) renderInspect() {
	w := m.viewport.Width
	if w <= 0 {
		w = 80
	}
	md := m.pane.body
	if !m.pane.markdown {
		md = inspectMarkdown(md, m.lang)
	}
	m.viewport.SetContent(renderMarkdown(md, w))
}

func (m *appModel) openHelp() {
	body, ok := docs.Get("keys")
	if !ok {
		return
	}
	m.pane.OpenText("Keys", body)
	m.pane.markdown = true
	m.openInspect()
}

func (m *appModel) closeInspect() {
	m.pane.close()
	m.mode = modeList
}

// reloadFromDisk replaces the graph with the stored scene. Writes that match
// the live graph (our own saves) are ignored.
func (m *appModel) reloadFromDisk() {
	sc, err := m.store.Load(context.Background())
	if err != nil {
		m.log.Warn("reload scene", slog.String("path", m.store.Path), slog.Any("error", err))
		m.setError(err)
		return
	}
	if m.graph != nil && reflect.DeepEqual(sc, m.graph.Model(sc.Name)) {
		m.log.Debug("scene unchanged on disk", slog.String("path", m.store.Path))
		return
	}
	g, err := scene.FromModel(sc)
	if err != nil {
		m.log.Warn("reload scene", slog.String("path", m.store.Path), slog.Any("error", err))
		m.setError(err)
		return
	}
	m.graph = g
	m.sceneName = sc.Name
	m.saver.graph = g
	m.saver.name = sc.Name
	m.ctrl.Reset(g)
	if m.mode == modeConfirmDestroy {
		m.pending = nil
		m.mode = modeList
	}
	m.syncItems()
	m.setStatus("scene reloaded from disk")
}

func (m *appModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *appModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *appModel) resize() {
	h := m.height - 6
	if h < 4 {
		h = 4
	}
	w := m.width
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
	m.viewport.Width = w
	m.viewport.Height = h - 2
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.filter.Width = w - 4
	if m.mode == modeInspect {
		m.renderInspect()
	}
}

func (m appModel) bodyHeight() int {
	h := m.height - 6
	if h < 4 {
		h = 4
	}
	return h
}
