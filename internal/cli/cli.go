// Package cli implements the tspbb command-line interface: a single Cobra
// root command with one real subcommand, solve, plus the exit-code mapping
// spec.md §6/§7 require. Modeled on the teacher pack's own internal/cli
// layout (matzehuels/stacktower): a CLI struct carrying shared state
// (logger, output writers), a RootCommand() constructor, and an Execute
// entry point that main.go calls with os.Args/os.Stdout/os.Stderr.
package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/coldbrew-labs/tspbb/tsp"
)

// Exit codes, per spec.md §6/§7.
const (
	ExitSuccess           = 0
	ExitUsageError        = 2
	ExitMalformedMatrix   = 3
	ExitResourceExhausted = 4
	exitUnexpected        = 1
)

// usageError marks an error as a CLI usage problem (wrong arg count,
// unreadable file) rather than a solver-domain error.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(msg string) error { return &usageError{err: errors.New(msg)} }

// CLI holds shared state across the command tree.
type CLI struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// New builds a CLI writing results to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer) *CLI {
	return &CLI{
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, log.InfoLevel),
	}
}

// RootCommand builds the root Cobra command with the solve subcommand
// registered. Cobra's own usage-dump-on-error is suppressed: every error
// path this package produces already writes the one line spec.md mandates.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tspbb",
		Short:         "Exact distributed branch-and-bound solver for symmetric TSP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(c.solveCommand())

	return root
}

// Execute parses args and runs the resulting command, returning the process
// exit code spec.md §6/§7 specify for the outcome.
func Execute(args []string, stdout, stderr io.Writer) int {
	c := New(stdout, stderr)
	root := c.RootCommand()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	code := exitCodeFor(err)
	if code != ExitSuccess {
		c.Logger.Error(err.Error())
	}

	return code
}

// exitCodeFor maps an error from the solve pipeline to the taxonomy of
// spec.md §7: UsageError -> 2, MalformedMatrix family -> 3,
// ResourceExhausted -> 4. Anything else is an unexpected failure (e.g. a
// transport I/O error) and exits 1, outside the spec's named taxonomy but
// still clearly a failure.
func exitCodeFor(err error) int {
	var ue *usageError
	switch {
	case errors.As(err, &ue):
		return ExitUsageError
	case errors.Is(err, tsp.ErrMalformedMatrix),
		errors.Is(err, tsp.ErrSizeOutOfRange),
		errors.Is(err, tsp.ErrNegativeWeight):
		return ExitMalformedMatrix
	case errors.Is(err, tsp.ErrResourceExhausted):
		return ExitResourceExhausted
	default:
		return exitUnexpected
	}
}
