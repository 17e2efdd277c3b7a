package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text string
	Help string
	Err  error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

// PrintError writes err to w as `Error: <message>`.
// A CliError with help text gets a second `Help:` line
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorPrefix()+err.Error())

	var asCliErr *CliError
	if errors.As(err, &asCliErr) && asCliErr.Help != "" {
		fmt.Fprintln(w, HelpPrefix()+asCliErr.Help)
	}
}
