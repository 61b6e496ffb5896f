// Package cli wires the object browser to a cobra command tree: the
// interactive TUI by default plus scriptable list/inspect/toggle/destroy.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"objbrowser/internal/browser"
	"objbrowser/internal/format"
	"objbrowser/internal/model"
	"objbrowser/internal/scene"
	"objbrowser/internal/store"
	"objbrowser/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Scene    string
	Format   string
	Pretty   bool
	Filter   string
	Reverse  bool
	LogLevel string
	Watch    bool

	log      *slog.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "objbrowser",
		Short:        "Browse, inspect and edit the objects of a scene file",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Create a sample scene and browse it
  objbrowser init scene.json
  objbrowser --scene scene.json

  # Scriptable commands
  objbrowser --scene scene.json list --filter player
  objbrowser --scene scene.json toggle 0006

  # Direct lookup (shortcut for: objbrowser inspect 0003)
  objbrowser --scene scene.json 0003
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Reject a bad --format before any command touches the scene file.
		f, err := format.Normalize(app.Format)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.Format = f

		log, closeLog, err := newLogger(app.LogLevel)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = log
		app.closeLog = closeLog
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			return app.closeLog()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Scene, "scene", envOr("OBJBROWSER_SCENE", ""), "Scene file (.json, .yaml, .yml, .sqlite or .db)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("OBJBROWSER_FORMAT", "json"), "Output and inspect format (json|yaml)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Filter, "filter", "", "Only keep objects whose row text contains this (case-insensitive)")
	cmd.PersistentFlags().BoolVar(&app.Reverse, "reverse", false, "Show the list in reverse order")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("OBJBROWSER_LOG_LEVEL", "info"), "Log level (debug|info|warn|error); logs go to $OBJBROWSER_DEBUG_LOG")
	cmd.PersistentFlags().BoolVar(&app.Watch, "watch", false, "Reload the scene in the TUI when the file changes")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newInspectCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newDestroyCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	sc, g, st, err := loadScene(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(cmd.Context(), tui.Options{
		Store:     st,
		Graph:     g,
		SceneName: sc.Name,
		Query:     app.Filter,
		Reverse:   app.Reverse,
		Format:    app.Format,
		Watch:     app.Watch,
		Logger:    app.logger(),
	})
}

func sceneStore(app *App) (store.Store, error) {
	path := strings.TrimSpace(app.Scene)
	if path == "" {
		return store.Store{}, errors.New("no scene file; pass --scene or set OBJBROWSER_SCENE (try `objbrowser init scene.json`)")
	}
	if _, err := store.FormatFor(path); err != nil {
		return store.Store{}, err
	}
	return store.Store{Path: path}, nil
}

func loadScene(cmd *cobra.Command, app *App) (*model.Scene, *scene.Graph, store.Store, error) {
	st, err := sceneStore(app)
	if err != nil {
		return nil, nil, st, err
	}
	sc, err := st.Load(cmd.Context())
	if err != nil {
		return nil, nil, st, err
	}
	g, err := scene.FromModel(sc)
	if err != nil {
		return nil, nil, st, fmt.Errorf("scene %s: %w", st.Path, err)
	}
	app.logger().Debug("scene loaded",
		slog.String("path", st.Path),
		slog.Int("nodes", g.Len()),
	)
	return sc, g, st, nil
}

func (app *App) criteria() browser.Criteria {
	return browser.Criteria{Match: browser.MatchText(app.Filter), Reverse: app.Reverse}
}

func (app *App) logger() *slog.Logger {
	if app.log == nil {
		return slog.Default()
	}
	return app.log
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
