package browser

import (
	"fmt"
	"log/slog"
	"strings"
)

type ActionKind int

const (
	ActionInspect ActionKind = iota
	ActionDestroy
	ActionToggleActive
)

// Label is the text shown on the action's button.
func (k ActionKind) Label() string {
	switch k {
	case ActionInspect:
		return "Inspect"
	case ActionDestroy:
		return "Destroy"
	case ActionToggleActive:
		return "Toggle active"
	default:
		return "?"
	}
}

func (k ActionKind) String() string {
	switch k {
	case ActionInspect:
		return "inspect"
	case ActionDestroy:
		return "destroy"
	case ActionToggleActive:
		return "toggle"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// actionContext is everything an action needs: the row it belongs to and the
// controller that owns the row.
type actionContext struct {
	snap *Snapshot
	ctrl *Controller
}

type Action struct {
	Label string
	Kind  ActionKind

	ctx actionContext
}

// Invoke runs the action. Acting on a destroyed node does nothing.
func (a Action) Invoke() {
	if a.ctx.snap == nil || a.ctx.ctrl == nil {
		return
	}
	switch a.Kind {
	case ActionInspect:
		inspectNode(a.ctx)
	case ActionDestroy:
		destroyNode(a.ctx)
	case ActionToggleActive:
		toggleNode(a.ctx)
	}
}

// Item is one row handed to the host.
type Item struct {
	snap    *Snapshot
	Actions []Action
}

func (it *Item) Text() string        { return it.snap.Text() }
func (it *Item) Snapshot() *Snapshot { return it.snap }

func (it *Item) Action(kind ActionKind) (Action, bool) {
	for _, a := range it.Actions {
		if a.Kind == kind {
			return a, true
		}
	}
	return Action{}, false
}

func (c *Controller) bind(s *Snapshot) *Item {
	ctx := actionContext{snap: s, ctrl: c}
	kinds := []ActionKind{ActionInspect, ActionDestroy, ActionToggleActive}
	it := &Item{snap: s, Actions: make([]Action, 0, len(kinds))}
	for _, k := range kinds {
		it.Actions = append(it.Actions, Action{Label: k.Label(), Kind: k, ctx: ctx})
	}
	return it
}

// InspectText joins the serialized components of the node, in attachment
// order, one per line. ok is false once the node is gone.
func (c *Controller) InspectText(s *Snapshot) (text string, ok bool) {
	id, alive := s.live()
	if !alive {
		return "", false
	}
	comps := c.graph.Components(id)
	parts := make([]string, 0, len(comps))
	for _, comp := range comps {
		txt, err := c.opts.Serializer.Serialize(comp)
		if err != nil {
			c.log.Warn("serialize component",
				slog.String("node", s.name),
				slog.String("component", comp.Type),
				slog.Any("error", err),
			)
			txt = fmt.Sprintf("<%s: %v>", comp.Type, err)
		}
		parts = append(parts, txt)
	}
	return strings.Join(parts, "\n"), true
}

func inspectNode(ctx actionContext) {
	c := ctx.ctrl
	text, ok := c.InspectText(ctx.snap)
	if !ok {
		return
	}
	if c.opts.Viewer == nil {
		c.log.Debug("inspect without viewer", slog.String("node", ctx.snap.name))
		return
	}
	c.opts.Viewer.OpenText(ctx.snap.name, text)
}

func destroyNode(ctx actionContext) {
	c := ctx.ctrl
	id, ok := ctx.snap.live()
	if !ok {
		return
	}
	if err := c.graph.Destroy(id); err != nil {
		c.log.Warn("destroy node", slog.String("node", ctx.snap.name), slog.Any("error", err))
		return
	}
	ctx.snap.release()
	c.mutated(ActionDestroy, ctx.snap)
	c.Refresh()
}

func toggleNode(ctx actionContext) {
	c := ctx.ctrl
	id, ok := ctx.snap.live()
	if !ok {
		return
	}
	if err := c.graph.SetActive(id, !c.graph.ActiveSelf(id)); err != nil {
		c.log.Warn("toggle node", slog.String("node", ctx.snap.name), slog.Any("error", err))
		return
	}
	c.mutated(ActionToggleActive, ctx.snap)
	c.Refresh()
}
