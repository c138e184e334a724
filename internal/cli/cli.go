// Package cli holds the plumbing shared by the tilepack commands: argument
// parsing with kong, logging with charmbracelet/log and mapping errors to
// exit codes.
//
// Every command prints its table to stdout and nothing else; logs and
// diagnostics go to stderr. Argument errors print the command usage to
// stdout and exit 1, any other failure logs the error and exits 1.
package cli

import (
	"errors"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/voidshard/tilepack"
)

const (
	exitOK   = 0
	exitFail = 1
)

// Globals are flags every command accepts.
type Globals struct {
	Verbose bool `short:"v" help:"enable debug logging (stderr)"`
}

// LogLevel returns the level logging should run at.
func (g *Globals) LogLevel() log.Level {
	if g.Verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// Env is handed to a command once its arguments have been parsed.
type Env struct {
	Stdout io.Writer
	Log    *log.Logger
}

// Command is a kong cli struct that can run itself.
// Embedding Globals provides LogLevel.
type Command interface {
	LogLevel() log.Level
	Run(env *Env) error
}

// NewLogger creates a logger writing to w, with short timestamps.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Run parses args into cmd, runs it and returns the process exit code.
func Run(cmd Command, args []string, stdout, stderr io.Writer, options ...kong.Option) int {
	options = append([]kong.Option{kong.Writers(stdout, stderr)}, options...)

	parser, err := kong.New(cmd, options...)
	if err != nil {
		// a broken cli struct, not a user error
		NewLogger(stderr, log.InfoLevel).Error("bad command definition", "err", err)
		return exitFail
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(false)
		}
		NewLogger(stderr, log.InfoLevel).Error(err)
		return exitFail
	}

	logger := NewLogger(stderr, cmd.LogLevel())
	start := time.Now()

	err = cmd.Run(&Env{Stdout: stdout, Log: logger})
	if err != nil {
		if errors.Is(err, tilepack.ErrUsage) {
			_ = kctx.PrintUsage(false)
		}
		logger.Error(err)
		return exitFail
	}

	logger.Debug("done", "took", time.Since(start).Round(time.Millisecond))
	return exitOK
}
