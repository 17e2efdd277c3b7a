package commands

import (
	"github.com/jwalton/gchalk"
)

var styleErr = gchalk.Stderr.WithBold().WithRed()
var styleHelp = gchalk.Stderr.WithGray()

// DisableColors turns off all colored output
func DisableColors() {
	gchalk.Stderr.SetLevel(gchalk.LevelNone)
}

// ErrorPrefix returns "Error: ", colored if stderr supports it
func ErrorPrefix() string {
	return styleErr.Paint("Error:") + " "
}

// HelpPrefix returns "Help: ", colored if stderr supports it
func HelpPrefix() string {
	return styleHelp.Paint("Help:") + " "
}
