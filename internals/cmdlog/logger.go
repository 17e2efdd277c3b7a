package cmdlog

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger writes diagnostics to stderr. stdout is reserved for the queried value
type Logger struct {
	zerolog.Logger
}

// Options configure a Logger
type Options struct {
	// Verbose enables debug output
	Verbose bool
	// NoColor disables colored output
	NoColor bool
	// Output defaults to os.Stderr
	Output io.Writer
}

// New returns a new Logger. Only warnings and errors are printed unless Verbose is set
func New(opts Options) *Logger {
	var out io.Writer = os.Stderr
	if opts.Output != nil {
		out = opts.Output
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor || !isTerminal(out),
	}

	return &Logger{Logger: zerolog.New(console).Level(level).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// isTerminal returns true if w is a terminal. CI always counts as no terminal
func isTerminal(w io.Writer) bool {
	if os.Getenv("CI") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
