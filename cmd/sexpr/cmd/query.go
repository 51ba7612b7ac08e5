package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiam/sexptree/ast"
)

func newHeadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "head [file|glob ...]",
		Short: "Print the leftmost symbol of each input",
		Long: `Print the leftmost symbol of each input, found by following the first
element of every group. Prints "none" when an empty group is found first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachTree(cmd, args, func(w io.Writer, root *ast.Node) error {
				head, ok := root.Head()
				if !ok {
					head = "none"
				}
				_, err := fmt.Fprintln(w, head)
				return err
			})
		},
	}
}

func newFlattenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [file|glob ...]",
		Short: "Print all the symbols of each input, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachTree(cmd, args, func(w io.Writer, root *ast.Node) error {
				_, err := fmt.Fprintln(w, strings.Join(root.Flatten(), " "))
				return err
			})
		},
	}
}
