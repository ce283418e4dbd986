package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/infix/internal/config"
)

// errFailed reports that at least one expression failed. Its message has
// already been printed with the results.
var errFailed = errors.New("some expressions failed")

type options struct {
	inname  string
	verb    string
	cfgFile string
	lines   bool
	echo    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "infix [flags] [expression ...]",
		Short: "Evaluate infix arithmetic expressions",
		Long: `Infix evaluates arithmetic expressions made of non-negative decimal numbers,
the operators + - * /, and parentheses.

Each argument is evaluated as one expression. With no arguments, expressions
are read from standard input, one per line.

Examples:
  infix '(6+7)-2*3'
  echo '8 - 3 - 2' | infix --echo
  infix --in exprs.txt --fmt '%.2f'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.inname, "in", "i", "", `input file ("-" for stdin; default stdin if no args given)`)
	f.StringVarP(&opts.verb, "fmt", "f", def.Format, "result formatting verb")
	f.BoolVarP(&opts.lines, "lines", "n", def.Lines, "parse separate input lines as separate expressions")
	f.BoolVar(&opts.echo, "echo", def.Echo, "print each expression with its grouping before the result")
	f.StringVar(&opts.cfgFile, "config", "", "TOML or YAML file with default settings")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "infix:", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)
	cfg, err := settings(cmd, opts)
	if err != nil {
		return err
	}
	log.Debug("settings", "format", cfg.Format, "lines", cfg.Lines, "echo", cfg.Echo)

	ins, err := inputs(opts.inname, args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() {
		for _, in := range ins {
			in.close()
		}
	}()

	c := newCalc(cmd.OutOrStdout(), cfg, log)
	for _, in := range ins {
		if err := c.source(in); err != nil {
			return fmt.Errorf("reading %s: %w", in.name, err)
		}
	}
	log.Debug("done", "evaluated", c.n, "failed", c.failed)
	if c.failed > 0 {
		return errFailed
	}
	return nil
}

// settings merges the config file, if any, with flags set on the command
// line. Flags win.
func settings(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		c, err := config.Load(opts.cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("loading config: %w", err)
		}
		cfg = c
	}
	f := cmd.Flags()
	if f.Changed("fmt") {
		cfg.Format = opts.verb
	}
	if f.Changed("lines") {
		cfg.Lines = opts.lines
	}
	if f.Changed("echo") {
		cfg.Echo = opts.echo
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
