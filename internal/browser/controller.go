// Package browser turns a live scene graph into a numbered, indented,
// filterable list of rows with inspect/destroy/toggle actions.
//
// Every mutation rebuilds the list from scratch. Items handed out before a
// rebuild are stale and must not be reused by the host.
package browser

import (
	"log/slog"
	"slices"

	"objbrowser/internal/scene"
)

type Options struct {
	Criteria   Criteria
	Serializer Serializer
	Viewer     Viewer
	Logger     *slog.Logger

	// OnMutate runs after a destroy or toggle reached the graph and before
	// the list is rebuilt.
	OnMutate func(kind ActionKind, s *Snapshot)
}

func (o *Options) defaults() {
	if o.Serializer == nil {
		o.Serializer = JSONSerializer{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Controller holds the current rows and rebuilds them on demand. It is not
// safe for concurrent use.
type Controller struct {
	graph scene.Provider
	opts  Options
	log   *slog.Logger
	items []*Item
}

// NewController builds the first list right away.
func NewController(graph scene.Provider, opts Options) *Controller {
	opts.defaults()
	c := &Controller{graph: graph, opts: opts, log: opts.Logger}
	c.Refresh()
	return c
}

func (c *Controller) Count() int { return len(c.items) }

// ItemAt returns the row at i, or false when i is out of range.
func (c *Controller) ItemAt(i int) (*Item, bool) {
	if i < 0 || i >= len(c.items) {
		return nil, false
	}
	return c.items[i], true
}

func (c *Controller) Items() []*Item { return slices.Clone(c.items) }

// FindLine returns the retained row showing the given 1-based line number.
func (c *Controller) FindLine(line int) (*Item, bool) {
	for _, it := range c.items {
		if it.snap.Line() == line {
			return it, true
		}
	}
	return nil, false
}

func (c *Controller) Criteria() Criteria { return c.opts.Criteria }

// SetCriteria rebuilds with new filter/order settings. Later refreshes reuse them.
func (c *Controller) SetCriteria(cr Criteria) {
	c.opts.Criteria = cr
	c.Refresh()
}

func (c *Controller) SetViewer(v Viewer) { c.opts.Viewer = v }

func (c *Controller) SetSerializer(s Serializer) {
	if s == nil {
		s = JSONSerializer{}
	}
	c.opts.Serializer = s
}

// Reset points the controller at a different graph (e.g. a reloaded scene)
// and rebuilds.
func (c *Controller) Reset(graph scene.Provider) {
	c.graph = graph
	c.Refresh()
}

// Refresh rebuilds the whole list from the live graph with the current
// criteria and swaps it in.
func (c *Controller) Refresh() {
	snaps := NewBuilder(c.graph).Build(c.opts.Criteria)
	items := make([]*Item, 0, len(snaps))
	for _, s := range snaps {
		items = append(items, c.bind(s))
	}
	c.items = items
	c.log.Debug("object list rebuilt",
		slog.Int("items", len(items)),
		slog.Bool("filtered", c.opts.Criteria.Match != nil),
		slog.Bool("reverse", c.opts.Criteria.Reverse),
	)
}

func (c *Controller) mutated(kind ActionKind, s *Snapshot) {
	c.log.Info("object mutated",
		slog.String("action", kind.String()),
		slog.String("node", s.name),
		slog.Int("line", s.Line()),
	)
	if c.opts.OnMutate != nil {
		c.opts.OnMutate(kind, s)
	}
}
