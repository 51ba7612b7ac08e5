package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xiam/sexptree/internal/config"
	"github.com/xiam/sexptree/internal/report"
	"github.com/xiam/sexptree/parser"
)

type app struct {
	cfgFile string
	flags   config.Config

	cfg *config.Config
	log *logrus.Logger

	logFile io.Closer
}

// Execute runs the sexpr command with the arguments of the process.
func Execute() error {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run runs the sexpr command with the given arguments and streams. Parse
// errors are reported to stderr with the offending source line.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return new(app).run(args, stdin, stdout, stderr)
}

func (a *app) run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	defer a.close()

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return nil
	}

	var srcErr *sourceError
	if errors.As(err, &srcErr) {
		_ = report.Write(stderr, srcErr.name, srcErr.text, srcErr.err)
		return err
	}

	fmt.Fprintf(stderr, "sexpr: %v\n", err)
	return err
}

// NewRootCommand returns the sexpr command and all its subcommands.
func NewRootCommand() *cobra.Command {
	return newRootCommand(new(app))
}

func newRootCommand(a *app) *cobra.Command {
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "sexpr",
		Short: "Parse symbolic expressions",
		Long: `sexpr reads symbolic expressions and prints their tree.

Commands:
  parse    - print the tree of each input
  tokens   - print the tokens of each input
  head     - print the leftmost symbol of each input
  flatten  - print all the symbols of each input`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.StringVarP(&a.flags.Format, "format", "f", defaults.Format, "output format: sexpr, tree, json, yaml or xml")
	flags.StringVar(&a.flags.Open, "open", defaults.Open, "character that opens a group")
	flags.StringVar(&a.flags.Close, "close", defaults.Close, "character that closes a group")
	flags.IntVarP(&a.flags.Jobs, "jobs", "j", defaults.Jobs, "number of inputs parsed at the same time")
	flags.StringVar(&a.flags.LogLevel, "log-level", defaults.LogLevel, "log level")
	flags.StringVar(&a.flags.LogFormat, "log-format", defaults.LogFormat, "log format: text or json")
	flags.StringVar(&a.flags.LogFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(
		newParseCommand(a),
		newTokensCommand(a),
		newHeadCommand(a),
		newFlattenCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		if cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if flags.Changed("open") {
		cfg.Open = a.flags.Open
	}
	if flags.Changed("close") {
		cfg.Close = a.flags.Close
	}
	if flags.Changed("jobs") {
		cfg.Jobs = a.flags.Jobs
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.flags.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := a.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"format":  cfg.Format,
		"jobs":    cfg.Jobs,
	}).Debug("configured")
	return nil
}

// teardown runs only after a successful command, run closes the log file
// on every other path.
func (a *app) teardown(cmd *cobra.Command, args []string) error {
	return a.close()
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func (a *app) newLogger(cfg *config.Config, stderr io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(stderr)

	if cfg.LogFormat == "json" {
		log.SetFormatter(new(logrus.JSONFormatter))
	}

	if cfg.LogFile != "" {
		out := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		log.SetOutput(out)
		a.logFile = out
	}

	return log, nil
}

func (a *app) parserOptions(name string) []parser.Option {
	open, close := a.cfg.Delimiters()
	opts := []parser.Option{
		parser.WithDelimiters(open, close),
	}
	if a.log.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts, parser.WithLogger(a.log.WithField("file", name)))
	}
	return opts
}
