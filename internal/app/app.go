// Package app wires shaengine process execution and exit codes.
package app

import (
	"fmt"
	"io"
	"os"

	"shaengine/internal/cli"
	apperrors "shaengine/internal/errors"
)

// App runs the CLI against a pair of output streams.
type App struct {
	stdout io.Writer
	stderr io.Writer
}

// New creates an App bound to the process standard streams.
func New() App {
	return NewWithStreams(os.Stdout, os.Stderr)
}

// NewWithStreams creates an App writing command output to stdout and
// diagnostics to stderr.
func NewWithStreams(stdout, stderr io.Writer) App {
	return App{stdout: stdout, stderr: stderr}
}

// Run executes args and returns the process exit code. Usage errors get a
// pointer to the help output.
func (a App) Run(args []string) int {
	root := cli.NewRootCommand(a.stdout, a.stderr)
	root.SetArgs(args)

	err := root.Execute()
	code := apperrors.ExitCode(err)
	if err == nil {
		return code
	}
	_, _ = fmt.Fprintf(a.stderr, "error: %v\n", err)
	if code == 2 {
		_, _ = fmt.Fprintln(a.stderr, "hint: run `shaengine --help` or `shaengine <command> --help`.")
	}
	return code
}
