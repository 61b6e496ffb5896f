package tui

import (
	"context"
	"log/slog"

	"objbrowser/internal/browser"
	"objbrowser/internal/scene"
	"objbrowser/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeFilter
	modeInspect
	modeConfirmDestroy
)

// sceneChangedMsg is sent when the watched scene file changed on disk.
type sceneChangedMsg struct{}

// inspectPane is the nested text view the controller opens on inspect.
type inspectPane struct {
	title string
	body  string
	open  bool
	// markdown bodies are rendered as-is instead of as a code block.
	markdown bool
}

func (p *inspectPane) OpenText(title, body string) {
	p.title = title
	p.body = body
	p.open = true
	p.markdown = false
}

func (p *inspectPane) close() {
	p.open = false
	p.title = ""
	p.body = ""
	p.markdown = false
}

// sceneSaver writes the graph back to the store after every mutation.
type sceneSaver struct {
	store store.Store
	graph *scene.Graph
	name  string
	log   *slog.Logger

	mutations int
	err       error
}

func (s *sceneSaver) onMutate(kind browser.ActionKind, snap *browser.Snapshot) {
	s.mutations++
	if s.store.Path == "" || s.graph == nil {
		s.err = nil
		return
	}
	s.err = s.store.Save(context.Background(), s.graph.Model(s.name))
	if s.err != nil {
		s.log.Error("save scene",
			slog.String("path", s.store.Path),
			slog.String("action", kind.String()),
			slog.String("node", snap.Name()),
			slog.Any("error", s.err),
		)
	}
}
