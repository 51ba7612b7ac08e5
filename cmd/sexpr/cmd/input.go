package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/xiam/sexptree/ast"
	"github.com/xiam/sexptree/parser"
)

const stdinName = "-"

type source struct {
	name string
	text string
}

// sourceError is a parse error together with the input that caused it.
type sourceError struct {
	source
	err error
}

func (e *sourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.name, e.err)
}

func (e *sourceError) Unwrap() error {
	return e.err
}

// expandArgs resolves glob patterns into file names. Without arguments the
// input is read from stdin.
func expandArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinName}, nil
	}

	names := []string{}
	for _, arg := range args {
		if arg == stdinName || !hasMeta(arg) {
			names = append(names, arg)
			continue
		}
		if !doublestar.ValidatePathPattern(arg) {
			return nil, fmt.Errorf("invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		names = append(names, matches...)
	}
	return names, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func readSource(stdin io.Reader, name string) (source, error) {
	var (
		buf []byte
		err error
	)
	if name == stdinName {
		buf, err = io.ReadAll(stdin)
	} else {
		buf, err = os.ReadFile(name)
	}
	if err != nil {
		return source{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return source{name: name, text: string(buf)}, nil
}

// readAll reads every input named by args, in order. Stdin is read once,
// naming it more than once repeats its contents.
func (a *app) readAll(cmd *cobra.Command, args []string) ([]source, error) {
	names, err := expandArgs(args)
	if err != nil {
		return nil, err
	}

	var stdin *source
	sources := make([]source, 0, len(names))
	for _, name := range names {
		if name == stdinName && stdin != nil {
			sources = append(sources, *stdin)
			continue
		}
		src, err := readSource(cmd.InOrStdin(), name)
		if err != nil {
			return nil, err
		}
		if name == stdinName {
			stdin = &src
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// parseAll reads every input named by args and parses them concurrently.
// Results keep the order of the arguments.
func (a *app) parseAll(cmd *cobra.Command, args []string) ([]source, []*ast.Node, error) {
	sources, err := a.readAll(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	trees := make([]*ast.Node, len(sources))

	g := new(errgroup.Group)
	g.SetLimit(a.cfg.Jobs)

	for i := range sources {
		i := i
		g.Go(func() error {
			src := sources[i]

			log := a.log.WithField("file", src.name)
			log.Debug("parsing")

			root, err := parser.Parse(src.text, a.parserOptions(src.name)...)
			if err != nil {
				log.WithError(err).Debug("parse failed")
				return &sourceError{source: src, err: err}
			}
			trees[i] = root
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	a.log.WithField("inputs", len(trees)).Info("parsed")
	return sources, trees, nil
}

// eachTree parses the inputs and calls fn for each tree, writing a header
// before each result when there is more than one input.
func (a *app) eachTree(cmd *cobra.Command, args []string, fn func(w io.Writer, root *ast.Node) error) error {
	sources, trees, err := a.parseAll(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i := range trees {
		if len(trees) > 1 {
			fmt.Fprintf(w, ";; %s\n", sources[i].name)
		}
		if err := fn(w, trees[i]); err != nil {
			return err
		}
	}
	return nil
}
