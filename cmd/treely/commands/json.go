package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/treely"
	"github.com/viant/treely/jsontree"
	"github.com/viant/treely/render"
)

// json <file>: render a JSON document as a tree.
func jsonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json <file>",
		Short: "Render a JSON document as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := jsontree.Parse(data)
			if err != nil {
				return err
			}
			tree := treely.BuildTree(doc, jsontree.Expand())
			renderer := render.New[*jsontree.Value](jsontree.Label,
				render.WithStyles[*jsontree.Value](render.Styles{Branch: ui.branch, Label: ui.label}))
			fmt.Fprint(cmd.OutOrStdout(), renderer.Render(tree))
			return nil
		},
	}
	return cmd
}
