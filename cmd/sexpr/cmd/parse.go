package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/xiam/sexptree/ast"
	"github.com/xiam/sexptree/internal/render"
)

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file|glob ...]",
		Short: "Print the tree of each input",
		Long: `Parse each input and print its tree. Files are parsed concurrently and
printed in the order given. Reads stdin when no file is given or for "-".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := render.New(a.cfg.Format).WithDelimiters(a.cfg.Delimiters())
			return a.eachTree(cmd, args, func(w io.Writer, root *ast.Node) error {
				return r.Tree(w, root)
			})
		},
	}
}
