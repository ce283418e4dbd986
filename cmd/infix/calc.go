package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/infix"
	"github.com/zephyrtronium/infix/internal/config"
)

// input is a named source of expressions.
type input struct {
	name string
	r    io.Reader
	// arg marks a command-line argument, which is always one expression.
	arg bool
	c   io.Closer
}

func (in input) close() {
	if in.c != nil {
		in.c.Close()
	}
}

// inputs collects the sources of expressions. Stdin is used when inname is
// "-" or when there is neither an input file nor arguments.
func inputs(inname string, args []string, stdin io.Reader) ([]input, error) {
	var ins []input
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		ins = append(ins, input{name: inname, r: f, c: f})
	case inname == "-", len(args) == 0:
		ins = append(ins, input{name: "stdin", r: stdin})
	}
	for i, arg := range args {
		ins = append(ins, input{name: fmt.Sprintf("arg %d", i+1), r: strings.NewReader(arg), arg: true})
	}
	return ins, nil
}

// calc evaluates expressions and prints their results.
type calc struct {
	out io.Writer
	cfg config.Config
	log *slog.Logger
	ev  *infix.Evaluator
	bad *color.Color
	// n and failed count evaluated and failed expressions.
	n, failed int
}

func newCalc(out io.Writer, cfg config.Config, log *slog.Logger) *calc {
	return &calc{
		out: out,
		cfg: cfg,
		log: log,
		ev:  infix.NewEvaluator(),
		bad: color.New(color.FgRed, color.Bold),
	}
}

// source evaluates every expression in an input.
func (c *calc) source(in input) error {
	if in.arg || !c.cfg.Lines {
		b, err := io.ReadAll(in.r)
		if err != nil {
			return err
		}
		c.expr(in.name, 1, string(b))
		return nil
	}
	sc := bufio.NewScanner(in.r)
	line := 0
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		c.expr(in.name, line, sc.Text())
	}
	return sc.Err()
}

// expr evaluates and prints a single expression.
func (c *calc) expr(name string, line int, src string) {
	c.n++
	log := c.log.With("source", name, "line", line)
	log.Debug("evaluate", "expr", src)
	var (
		r   float64
		err error
	)
	if c.cfg.Echo {
		var e *infix.Expr
		e, err = infix.ParseString(src)
		if err == nil {
			fmt.Fprintf(c.out, "%v : ", e)
			r, err = c.ev.Eval(e)
		}
	} else {
		r, err = c.ev.EvalString(src)
	}
	if err != nil {
		c.failed++
		log.Debug("failed", "err", err)
		c.bad.Fprint(c.out, c.cfg.ErrorPrefix)
		fmt.Fprintln(c.out, err)
		return
	}
	log.Debug("result", "value", r)
	fmt.Fprintf(c.out, c.cfg.Format+"\n", r)
}
