package cli

import (
	"fmt"
	"strings"

	"objbrowser/internal/model"
	"objbrowser/internal/store"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample scene (defaults to --scene)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				app.Scene = args[0]
			}
			st, err := sceneStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if st.Exists() && !force {
				return writeErr(cmd, fmt.Errorf("%s already exists (use --force to overwrite)", st.Path))
			}
			sc := model.SampleScene()
			if err := st.Save(cmd.Context(), sc); err != nil {
				return writeErr(cmd, err)
			}
			f, _ := store.FormatFor(st.Path)
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"path":    strings.TrimSpace(st.Path),
					"format":  string(f),
					"objects": len(sc.Nodes),
				},
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing scene file")
	return cmd
}
