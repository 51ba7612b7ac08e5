package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/sexptree/internal/render"
	"github.com/xiam/sexptree/lexer"
)

func newTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file|glob ...]",
		Short: "Print the tokens of each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.readAll(cmd, args)
			if err != nil {
				return err
			}

			tz := lexer.New(a.cfg.Open + a.cfg.Close)
			w := cmd.OutOrStdout()
			for _, src := range sources {
				if len(sources) > 1 {
					fmt.Fprintf(w, ";; %s\n", src.name)
				}
				if err := render.Tokens(w, tz.Tokenize(src.text)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
