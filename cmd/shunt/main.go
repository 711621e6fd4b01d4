package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/shunt"
)

// errFailed is returned from the root command when an expression given as an
// argument failed. The failure has already been reported.
var errFailed = errors.New("evaluation failed")

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// rootEnv provides the environment for the root command.
type rootEnv struct {
	prec    int32
	echo    bool
	noColor bool
	verbose bool

	in   io.Reader
	out  io.Writer
	errw io.Writer

	log zerolog.Logger
	red *color.Color
}

// newRootCmd returns the definition of the shunt command, reading the REPL
// from in and writing results to out and logs to errw.
func newRootCmd(in io.Reader, out, errw io.Writer) *cobra.Command {
	env := &rootEnv{in: in, out: out, errw: errw}
	cmd := &cobra.Command{
		Use:   "shunt [expr...]",
		Short: "Evaluate arithmetic expressions exactly.",
		Long: `Evaluate arithmetic expressions with decimal arithmetic.

Each argument is evaluated as a separate expression. With no arguments,
expressions are read from standard input one per line until EOF or a line
reading "quit" or "exit".

Expressions may use + - * / ^ %, parentheses, the functions sin, cos, tan,
max, and min, and the constants pi and e, e.g.

	shunt '2 ^ 3 ^ 2' 'max(3, 7) - -1'
`,
		PreRunE:       env.setup,
		RunE:          env.run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errw)

	cmd.Flags().Int32Var(&env.prec, "prec", shunt.DefaultPrec, "decimal places kept by division, fractional powers, and constants")
	cmd.Flags().BoolVar(&env.echo, "echo", false, "also print the normalized expression and its postfix form")
	cmd.Flags().BoolVar(&env.noColor, "no-color", false, "don't color error messages")
	cmd.Flags().BoolVarP(&env.verbose, "verbose", "v", false, "log each step to stderr")

	return cmd
}

// setup validates flags and creates the logger.
func (e *rootEnv) setup(cmd *cobra.Command, args []string) error {
	if e.prec < 0 {
		return fmt.Errorf("precision (%d) must not be negative", e.prec)
	}
	level := zerolog.WarnLevel
	if e.verbose {
		level = zerolog.DebugLevel
	}
	e.log = zerolog.New(zerolog.ConsoleWriter{Out: e.errw, NoColor: e.noColor}).
		With().Timestamp().Logger().
		Level(level)
	e.red = color.New(color.FgRed)
	if e.noColor {
		e.red.DisableColor()
	}
	return nil
}

// run evaluates arguments, or runs the REPL if there are none.
func (e *rootEnv) run(cmd *cobra.Command, args []string) error {
	opts := []shunt.Option{shunt.Prec(e.prec)}
	if len(args) == 0 {
		return e.repl(opts)
	}
	ok := true
	for _, arg := range args {
		ok = e.eval(arg, opts) && ok
	}
	if !ok {
		return errFailed
	}
	return nil
}

// repl evaluates expressions from e.in line by line.
func (e *rootEnv) repl(opts []shunt.Option) error {
	prompt := isTerminal(e.in)
	e.log.Debug().Bool("prompt", prompt).Int32("prec", e.prec).Msg("reading expressions")
	sc := bufio.NewScanner(e.in)
	for {
		if prompt {
			fmt.Fprint(e.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			e.log.Debug().Msg("quit")
			return nil
		}
		e.eval(line, opts)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading expressions: %w", err)
	}
	return nil
}

// eval evaluates one expression and prints its result or error. It reports
// whether evaluation succeeded.
func (e *rootEnv) eval(expr string, opts []shunt.Option) bool {
	q, err := shunt.Parse(expr, opts...)
	if err != nil {
		return e.fail(expr, err)
	}
	p, err := q.Postfix()
	if err != nil {
		return e.fail(expr, err)
	}
	v, err := p.Eval(opts...)
	if err != nil {
		return e.fail(expr, err)
	}
	e.log.Debug().Str("expr", expr).Stringer("infix", q).Stringer("postfix", p).Str("value", v.String()).Msg("evaluated")
	if e.echo {
		fmt.Fprintf(e.out, "%v  =>  %v  =>  %v\n", q, p, v)
		return true
	}
	fmt.Fprintln(e.out, v)
	return true
}

// fail reports an error in an expression.
func (e *rootEnv) fail(expr string, err error) bool {
	ev := e.log.Debug().Str("expr", expr).Err(err)
	var ierr shunt.InputError
	if errors.As(err, &ierr) {
		ev = ev.Int("col", ierr.Pos())
	}
	ev.Msg("failed")
	e.red.Fprintln(e.out, err)
	return false
}

// isTerminal reports whether r is a terminal, so that the REPL knows whether
// to prompt.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
