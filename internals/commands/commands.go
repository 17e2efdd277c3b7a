package commands

import (
	"github.com/spf13/cobra"
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wires run into cmd. Errors are not printed here, Execute does that once
// for the whole tree so every failure ends up as a single `Error:` line
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.RunE = run.RunE

	return build
}

// Runner returns the runner that was passed to New
func (c *Command) Runner() Runner {
	return c.runner
}
