// Package cli implements shaengine command-line parsing and commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	apperrors "shaengine/internal/errors"
	"shaengine/internal/logging"
)

// grammar is the kong command model shared by all subcommands.
type grammar struct {
	LogLevel  string `name:"log-level" env:"SHAENGINE_LOG_LEVEL" default:"warn" help:"Log level (debug, info, warn, error)."`
	LogFormat string `name:"log-format" env:"SHAENGINE_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format (text, json)."`

	Sum      sumCmd      `cmd:"" help:"Print the SHA-256 digest of each argument."`
	Selftest selftestCmd `cmd:"" help:"Run known-answer vectors against the engine."`
	Version  versionCmd  `cmd:"" help:"Print version information."`
}

// kongExit carries kong's requested exit code out of the parser.
type kongExit int

// RootCommand handles argument parsing for the shaengine CLI.
type RootCommand struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	args   []string
}

// NewRootCommand creates the shaengine root command.
func NewRootCommand(out io.Writer, errOut io.Writer) *RootCommand {
	return &RootCommand{out: out, errOut: errOut, logger: logging.New(io.Discard, slog.LevelError, "text")}
}

// SetArgs sets command arguments.
func (r *RootCommand) SetArgs(args []string) { r.args = args }

// Execute parses and runs commands. Help output is not an error.
func (r *RootCommand) Execute() (err error) {
	args := r.args
	if len(args) == 0 {
		args = []string{"--help"}
	}

	var g grammar
	parser, err := kong.New(
		&g,
		kong.Name("shaengine"),
		kong.Description("Compute and verify SHA-256 digests."),
		kong.Writers(r.out, r.errOut),
		kong.Exit(func(code int) {
			panic(kongExit(code))
		}),
	)
	if err != nil {
		return fmt.Errorf("initialize command parser: %w", err)
	}
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		code, ok := recovered.(kongExit)
		if !ok {
			panic(recovered)
		}
		if code != 0 {
			err = fmt.Errorf("parser exited with code %d: %w", code, apperrors.ErrUsage)
		}
	}()

	ctx, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("%v: %w", err, apperrors.ErrUsage)
	}
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return fmt.Errorf("%v: %w", err, apperrors.ErrUsage)
	}
	r.logger = logging.New(r.errOut, level, g.LogFormat)

	switch ctx.Command() {
	case "sum", "sum <text>":
		return r.runSum(g.Sum)
	case "selftest":
		return r.runSelftest(g.Selftest)
	case "version":
		return r.runVersion()
	default:
		return fmt.Errorf("unsupported command %q: %w", ctx.Command(), apperrors.ErrUsage)
	}
}
