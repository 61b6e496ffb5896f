// Package tui is the interactive host for the object browser: a scrollable
// list of scene objects with inspect, destroy and toggle bound to keys.
package tui

import (
	"context"
	"errors"
	"log/slog"

	"objbrowser/internal/format"
	"objbrowser/internal/scene"
	"objbrowser/internal/store"
	"objbrowser/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Store is where mutations are saved and reloads come from. A zero
	// Store keeps everything in memory.
	Store     store.Store
	Graph     *scene.Graph
	SceneName string

	Query   string
	Reverse bool
	// Format picks the inspect serializer (json or yaml).
	Format string
	// Watch reloads the scene when the file changes on disk.
	Watch  bool
	Logger *slog.Logger
}

func Run(ctx context.Context, opts Options) error {
	if opts.Graph == nil {
		return errors.New("tui: no scene loaded")
	}
	f, err := format.Normalize(opts.Format)
	if err != nil {
		return err
	}
	opts.Format = f
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(opts)
	if opts.Watch && opts.Store.Path != "" {
		w, err := watch.New(opts.Store.Path, watch.DefaultDelay, m.log)
		if err != nil {
			return err
		}
		defer w.Close()
		m.watcher = w
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
