package tui

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"objbrowser/internal/browser"
	"objbrowser/internal/model"
	"objbrowser/internal/scene"
	"objbrowser/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(appModel)
	if !ok {
		t.Fatalf("expected appModel, got %T", next)
	}
	return am
}

func newTestApp(t *testing.T) (appModel, store.Store) {
	t.Helper()
	ctx := context.Background()
	st := store.Store{Path: filepath.Join(t.TempDir(), "scene.json")}
	if err := st.Save(ctx, model.SampleScene()); err != nil {
		t.Fatalf("save: %v", err)
	}
	sc, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	g, err := scene.FromModel(sc)
	if err != nil {
		t.Fatalf("from model: %v", err)
	}
	m := newAppModel(Options{Store: st, Graph: g, SceneName: sc.Name, Logger: quietLogger()})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, st
}

func storedNode(t *testing.T, st store.Store, id string) (model.Node, bool) {
	t.Helper()
	sc, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, n := range sc.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Node{}, false
}

func TestApp_ToggleUpdatesRowsAndSaves(t *testing.T) {
	m, st := newTestApp(t)
	m.list.Select(2)

	m = update(t, m, keyRunes("t"))

	player, _ := m.ctrl.ItemAt(2)
	if got := player.Snapshot().State(); got != browser.StateInactive {
		t.Fatalf("expected Player inactive, got %s", got)
	}
	body, _ := m.ctrl.ItemAt(3)
	if got := body.Snapshot().State(); got != browser.StateInactive {
		t.Fatalf("expected Body inactive through its parent, got %s", got)
	}
	n, ok := storedNode(t, st, "player")
	if !ok || n.ActiveSelf {
		t.Fatalf("expected stored player to be inactive, got %+v (found=%v)", n, ok)
	}
	if m.statusErr || !strings.Contains(m.status, "Toggle active: Player") {
		t.Fatalf("unexpected status %q (err=%v)", m.status, m.statusErr)
	}
}

func TestApp_DestroyRequiresConfirmation(t *testing.T) {
	m, st := newTestApp(t)
	m.list.Select(2)

	m = update(t, m, keyRunes("x"))
	if m.mode != modeConfirmDestroy || m.pending == nil {
		t.Fatalf("expected confirm modal, mode=%v", m.mode)
	}
	if !strings.Contains(m.View(), `Destroy "Player"`) {
		t.Fatalf("expected modal to name the object")
	}
	m = update(t, m, keyRunes("n"))
	if m.mode != modeList || m.ctrl.Count() != 10 {
		t.Fatalf("expected cancel to keep all objects, mode=%v count=%d", m.mode, m.ctrl.Count())
	}

	m = update(t, m, keyRunes("x"))
	m = update(t, m, keyRunes("y"))
	if m.mode != modeList {
		t.Fatalf("expected list mode after destroy, got %v", m.mode)
	}
	if m.ctrl.Count() != 6 {
		t.Fatalf("expected Player subtree removed (6 left), got %d", m.ctrl.Count())
	}
	for i, it := range m.ctrl.Items() {
		if it.Snapshot().Line() != i+1 {
			t.Fatalf("expected contiguous numbering, row %d shows line %d", i, it.Snapshot().Line())
		}
	}
	if _, ok := storedNode(t, st, "player-weapon"); ok {
		t.Fatalf("expected destroyed subtree to be gone from the stored scene")
	}
	if sel := m.selectedItem(); sel == nil || sel.Snapshot().Name() != "Canvas" {
		t.Fatalf("expected cursor to stay on row 3 (Canvas), got %+v", sel)
	}
}

func TestApp_ConfirmEnterOnCancelKeepsObject(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(t, m, keyRunes("x"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeList || m.ctrl.Count() != 10 {
		t.Fatalf("expected nothing destroyed, mode=%v count=%d", m.mode, m.ctrl.Count())
	}
}

func TestApp_FilterAsYouTypeAndCancel(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, keyRunes("/"))
	if m.mode != modeFilter {
		t.Fatalf("expected filter mode, got %v", m.mode)
	}
	m = update(t, m, keyRunes("player"))
	if m.ctrl.Count() != 1 {
		t.Fatalf("expected 1 match while typing, got %d", m.ctrl.Count())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.query != "" || m.ctrl.Count() != 10 {
		t.Fatalf("expected esc to restore the previous filter, query=%q count=%d", m.query, m.ctrl.Count())
	}

	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("weapon"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeList || m.query != "weapon" {
		t.Fatalf("expected applied filter, mode=%v query=%q", m.mode, m.query)
	}
	it, ok := m.ctrl.ItemAt(0)
	if !ok || m.ctrl.Count() != 1 || it.Snapshot().Line() != 5 {
		t.Fatalf("expected only Weapon at line 5, got count=%d", m.ctrl.Count())
	}
}

func TestApp_ReverseKey(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(t, m, keyRunes("r"))
	first, _ := m.ctrl.ItemAt(0)
	if first.Snapshot().Line() != 10 || first.Snapshot().Name() != "ResumeButton" {
		t.Fatalf("expected last object first, got line %d %s", first.Snapshot().Line(), first.Snapshot().Name())
	}
	m = update(t, m, keyRunes("r"))
	first, _ = m.ctrl.ItemAt(0)
	if first.Snapshot().Line() != 1 {
		t.Fatalf("expected scene order restored, got line %d", first.Snapshot().Line())
	}
}

func TestApp_InspectOpensAndCloses(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeInspect || !m.pane.open {
		t.Fatalf("expected inspect view, mode=%v", m.mode)
	}
	if m.pane.title != "Main Camera" {
		t.Fatalf("expected title Main Camera, got %q", m.pane.title)
	}
	if !strings.Contains(m.pane.body, `"fieldOfView"`) || !strings.Contains(m.pane.body, `"AudioListener"`) {
		t.Fatalf("expected both components serialized, got %q", m.pane.body)
	}
	if !strings.Contains(m.View(), "Inspect: Main Camera") {
		t.Fatalf("expected inspect header in view")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList || m.pane.open {
		t.Fatalf("expected esc to close inspect, mode=%v", m.mode)
	}
}

func TestApp_FooterShowsActionLabels(t *testing.T) {
	m, _ := newTestApp(t)
	v := m.View()
	for _, want := range []string{"enter: Inspect", "x: Destroy", "t: Toggle active", "Objects=10"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in view:\n%s", want, v)
		}
	}
}

func TestApp_ReloadPicksUpExternalChanges(t *testing.T) {
	m, st := newTestApp(t)
	ctx := context.Background()

	m = update(t, m, sceneChangedMsg{})
	if m.status != "" {
		t.Fatalf("expected unchanged file to be ignored, got status %q", m.status)
	}

	sc := model.SampleScene()
	sc.Nodes[0].Name = "Renamed Camera"
	sc.Nodes = sc.Nodes[:2]
	if err := st.Save(ctx, sc); err != nil {
		t.Fatalf("save: %v", err)
	}
	m = update(t, m, sceneChangedMsg{})
	if m.ctrl.Count() != 2 {
		t.Fatalf("expected reloaded scene with 2 objects, got %d", m.ctrl.Count())
	}
	first, _ := m.ctrl.ItemAt(0)
	if first.Snapshot().Name() != "Renamed Camera" {
		t.Fatalf("expected renamed object, got %q", first.Snapshot().Name())
	}

	// Mutations after a reload are saved against the new graph.
	m.list.Select(1)
	m = update(t, m, keyRunes("t"))
	if n, ok := storedNode(t, st, "light"); !ok || n.ActiveSelf {
		t.Fatalf("expected light toggled in stored scene, got %+v", n)
	}
}

func TestApp_HelpShowsKeys(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(t, m, keyRunes("?"))
	if m.mode != modeInspect || !m.pane.markdown || m.pane.title != "Keys" {
		t.Fatalf("expected keys help pane, mode=%v title=%q", m.mode, m.pane.title)
	}
	m = update(t, m, keyRunes("q"))
	if m.mode != modeList {
		t.Fatalf("expected q to close help, got %v", m.mode)
	}
}

func TestRun_RejectsUnknownFormat(t *testing.T) {
	g, err := scene.FromModel(model.SampleScene())
	if err != nil {
		t.Fatalf("from model: %v", err)
	}
	err = Run(context.Background(), Options{Graph: g, Format: "xml", Logger: quietLogger()})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
