package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	noColor bool
	ui      *styleSet
)

type styleSet struct {
	branch lipgloss.Style
	dir    lipgloss.Style
	label  lipgloss.Style
}

func newStyleSet(noColor bool) *styleSet {
	ret := &styleSet{
		branch: lipgloss.NewStyle(),
		dir:    lipgloss.NewStyle(),
		label:  lipgloss.NewStyle(),
	}
	if noColor {
		return ret
	}
	ret.branch = ret.branch.Foreground(lipgloss.Color("240"))
	ret.dir = ret.dir.Bold(true).Foreground(lipgloss.Color("33"))
	return ret
}

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "treely",
		Short: "Render filesystem and JSON documents as trees",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ui = newStyleSet(noColor)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(fsCmd(), jsonCmd())
	return root
}
