package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/cargo-get/internals/cmdlog"
	"github.com/minepkg/cargo-get/internals/commands"
	"github.com/minepkg/cargo-get/internals/delimiter"
	"github.com/minepkg/cargo-get/internals/query"
	"github.com/minepkg/cargo-get/pkg/manifest"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app is the state of one invocation
type app struct {
	config     *viper.Viper
	logger     *cmdlog.Logger
	root       string
	configFile string
}

func newApp() *app {
	return &app{
		config: viper.New(),
		logger: cmdlog.Nop(),
	}
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	for _, key := range []string{"delimiter", "verbose", "no-color"} {
		if err := a.config.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// init reads the config file and environment and sets up logging
func (a *app) init() error {
	if err := a.initConfig(); err != nil {
		return err
	}

	noColor := a.config.GetBool("no-color") || os.Getenv("CI") != ""
	if noColor {
		commands.DisableColors()
	}

	a.logger = cmdlog.New(cmdlog.Options{
		Verbose: a.config.GetBool("verbose"),
		NoColor: noColor,
	})
	if used := a.config.ConfigFileUsed(); used != "" {
		a.logger.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	v := a.config
	v.SetEnvPrefix("CARGO_GET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		configDir, err := os.UserConfigDir()
		if err != nil {
			// no config dir, flags and env still work
			return nil
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Join(configDir, "cargo-get"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	return nil
}

// delimiter returns the resolved --delimiter value
func (a *app) delimiter() string {
	return delimiter.Resolve(a.config.GetString("delimiter"))
}

// load finds and parses the manifest governing the entry point
func (a *app) load() (*manifest.Manifest, error) {
	entry := a.root
	if entry == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "reading working directory")
		}
		entry = wd
	}

	start, err := manifest.Canonicalize(entry)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("start", start).Msg("searching manifest")

	path, err := manifest.NewLocator().Locate(start)
	if err != nil {
		return nil, &commands.CliError{
			Text: err.Error(),
			Help: fmt.Sprintf("Move into a directory containing a %s file or use --root", manifest.Filename),
			Err:  err,
		}
	}
	a.logger.Debug().Str("manifest", path).Msg("located manifest")

	return manifest.NewFromFile(path)
}

// print answers q and prints the result as a single line to stdout
func (a *app) print(cmd *cobra.Command, q query.Query) error {
	m, err := a.load()
	if err != nil {
		return err
	}

	a.logger.Debug().Stringer("query", q).Msg("resolving")
	out, err := query.Run(m, q, a.delimiter())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
