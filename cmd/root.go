package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/minepkg/cargo-get/internals/commands"
	"github.com/minepkg/cargo-get/internals/delimiter"
	"github.com/minepkg/cargo-get/internals/query"
	"github.com/spf13/cobra"
)

// set by main (goreleaser)
var (
	Version string
	Commit  string
)

// Execute runs the command tree with the process arguments.
// This is called by main.main()
func Execute() {
	if err := Run(os.Args[1:]); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// Run runs the command tree with args. A leading "get" is dropped, so both
// `cargo get version` and `cargo-get version` work
func Run(args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(stripGet(args))
	return rootCmd.Execute()
}

func stripGet(args []string) []string {
	if len(args) > 0 && args[0] == "get" {
		return args[1:]
	}
	return args
}

// NewRootCmd returns the `cargo-get` command with all subcommands
func NewRootCmd() *cobra.Command {
	a := newApp()
	runner := &rootRunner{app: a}

	cmd := commands.New(&cobra.Command{
		Use:   "cargo-get",
		Short: "Query package info from Cargo.toml in a script-friendly way.",
		Example: `
  cargo get package.version --pretty
  cargo get package.authors --delimiter ","
  cargo get workspace.members --root ../other-project`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}, runner)
	if Version != "" {
		cmd.Version = Version
		if Commit != "" {
			cmd.Version += " (" + Commit + ")"
		}
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.init()
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.root, "root", "", "optional entry point (default is the working directory)")
	pf.String(
		"delimiter",
		"",
		fmt.Sprintf("specify delimiter for values (%s | String)", strings.Join(delimiter.Names(), " | ")),
	)
	pf.Bool("verbose", false, "log what is going on to stderr")
	pf.Bool("no-color", false, "disable color output")
	pf.StringVar(&a.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/cargo-get/config.toml)")
	a.bindFlags(pf)

	runner.addLegacyFlags(cmd.Command)

	cmd.AddCommand(newPackageCmds(a)...)
	cmd.AddCommand(newWorkspaceCmds(a)...)

	return cmd.Command
}

// legacyFlag is one of the hidden `--name` style flags of the root command
type legacyFlag struct {
	name  string
	short string
	query query.Query
	set   bool
}

type rootRunner struct {
	app    *app
	legacy []*legacyFlag
}

func (r *rootRunner) addLegacyFlags(cmd *cobra.Command) {
	r.legacy = legacyFlags()

	names := make([]string, 0, len(r.legacy))
	for _, f := range r.legacy {
		cmd.Flags().BoolVarP(&f.set, f.name, f.short, false, "get "+f.query.Path())
		if err := cmd.Flags().MarkHidden(f.name); err != nil {
			panic(err)
		}
		names = append(names, f.name)
	}
	cmd.MarkFlagsMutuallyExclusive(names...)
}

func (r *rootRunner) RunE(cmd *cobra.Command, args []string) error {
	for _, f := range r.legacy {
		if f.set {
			return r.app.print(cmd, f.query)
		}
	}
	return cmd.Help()
}
