package cli

import (
	"log/slog"

	"objbrowser/internal/browser"

	"github.com/spf13/cobra"
)

type objectView struct {
	Line  int    `json:"line" yaml:"line"`
	Depth int    `json:"depth" yaml:"depth"`
	Name  string `json:"name" yaml:"name"`
	State string `json:"state" yaml:"state"`
	Text  string `json:"text" yaml:"text"`
}

func viewOf(it *browser.Item) objectView {
	s := it.Snapshot()
	return objectView{
		Line:  s.Line(),
		Depth: s.Depth(),
		Name:  s.Name(),
		State: s.State().String(),
		Text:  it.Text(),
	}
}

// capturedText is the Viewer for non-interactive inspect.
type capturedText struct {
	title  string
	body   string
	opened bool
}

func (c *capturedText) OpenText(title, body string) {
	c.title = title
	c.body = body
	c.opened = true
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the object list (honors --filter and --reverse)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, _, err := loadScene(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctrl := browser.NewController(g, browser.Options{
				Criteria: app.criteria(),
				Logger:   app.logger(),
			})
			out := make([]objectView, 0, ctrl.Count())
			for _, it := range ctrl.Items() {
				out = append(out, viewOf(it))
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}

func newInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <line>",
		Short: "Print the components attached to an object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, app, args[0], browser.ActionInspect)
		},
	}
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <line>",
		Short: "Flip an object's own active flag and save the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, app, args[0], browser.ActionToggleActive)
		},
	}
}

func newDestroyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "destroy <line>",
		Short: "Destroy an object with its children and save the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, app, args[0], browser.ActionDestroy)
		},
	}
}

// runAction builds the list, finds the row showing line and invokes one of
// its actions the same way the TUI does.
func runAction(cmd *cobra.Command, app *App, arg string, kind browser.ActionKind) error {
	line, err := parseLine(arg)
	if err != nil {
		return writeErr(cmd, err)
	}
	sc, g, st, err := loadScene(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}

	viewer := &capturedText{}
	mutated := false
	ctrl := browser.NewController(g, browser.Options{
		Criteria:   app.criteria(),
		Serializer: browser.SerializerFor(app.Format),
		Viewer:     viewer,
		Logger:     app.logger(),
		OnMutate:   func(browser.ActionKind, *browser.Snapshot) { mutated = true },
	})
	it, ok := ctrl.FindLine(line)
	if !ok {
		return writeErr(cmd, errNotFound("object", arg))
	}
	a, ok := it.Action(kind)
	if !ok {
		return writeErr(cmd, errNotFound("action", kind.String()))
	}
	snap := it.Snapshot()
	before := viewOf(it)

	if kind == browser.ActionInspect {
		id, _ := snap.Handle().Node()
		a.Invoke()
		return writeOut(cmd, app, map[string]any{
			"data": map[string]any{
				"object":     before,
				"components": g.Components(id),
				"text":       viewer.body,
			},
		})
	}

	a.Invoke()
	if mutated {
		if err := st.Save(cmd.Context(), g.Model(sc.Name)); err != nil {
			return writeErr(cmd, err)
		}
		app.logger().Info("scene saved",
			slog.String("path", st.Path),
			slog.String("action", kind.String()),
		)
	}
	return writeOut(cmd, app, map[string]any{
		"data": map[string]any{
			"action":  kind.String(),
			"object":  before,
			"state":   snap.State().String(),
			"objects": ctrl.Count(),
		},
	})
}
