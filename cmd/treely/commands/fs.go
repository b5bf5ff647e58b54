package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/viant/treely"
	"github.com/viant/treely/fstree"
	"github.com/viant/treely/render"
)

// fs [path]: render a directory tree, current directory by default.
func fsCmd() *cobra.Command {
	var (
		all      bool
		dirsOnly bool
		level    int
		ignore   []string
	)
	cmd := &cobra.Command{
		Use:   "fs [path]",
		Short: "Render a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			var options []fstree.Option
			if all {
				options = append(options, fstree.WithHidden())
			}
			if dirsOnly {
				options = append(options, fstree.WithDirsOnly())
			}
			if level > 0 {
				options = append(options, fstree.WithMaxDepth(level))
			}
			if len(ignore) > 0 {
				options = append(options, fstree.WithIgnore(ignore...))
			}

			builder := fstree.New(afero.NewOsFs(), options...)
			tree, err := builder.Build(cmd.Context(), root)
			if err != nil {
				return err
			}

			renderer := render.New[fstree.Entry](
				func(entry fstree.Entry) string { return entry.Name },
				render.WithStyles[fstree.Entry](render.Styles{Branch: ui.branch, Label: ui.label}),
				render.WithStyleFunc[fstree.Entry](func(entry fstree.Entry) lipgloss.Style {
					if entry.Dir {
						return ui.dir
					}
					return ui.label
				}),
			)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderer.Render(tree))
			dirs, files := summarize(tree)
			fmt.Fprintf(out, "\n%d directories, %d files\n", dirs, files)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include hidden entries")
	cmd.Flags().BoolVarP(&dirsOnly, "dirs-only", "d", false, "list directories only")
	cmd.Flags().IntVarP(&level, "level", "L", 0, "max display depth (0 = unlimited)")
	cmd.Flags().StringArrayVarP(&ignore, "ignore", "I", nil, "exclude entries matching pattern (repeatable)")
	return cmd
}

// summarize counts directories and files the way tree(1) does, the root
// excluded.
func summarize(tree *treely.Node[fstree.Entry]) (int, int) {
	entries := tree.Flatten()[1:]
	dirs := lo.CountBy(entries, func(entry fstree.Entry) bool {
		return entry.Dir
	})
	return dirs, len(entries) - dirs
}
