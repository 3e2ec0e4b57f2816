// Package commands implements the frequent command-line interface.
package commands

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/frequent/config"
)

// Version is reported by --version; release builds set it with
// -ldflags "-X github.com/katalvlaran/frequent/internal/commands.Version=v1.2.3".
var Version = "dev"

// EnvConfig names the environment variable holding the default config path.
const EnvConfig = "FREQUENT_CONFIG"

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	log     *zap.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:     "frequent",
		Version: Version,
		Short:   "Graph fixtures and configuration tooling",
		Long: `frequent builds undirected weighted graphs from common topologies and
manages the dotted key-path configuration shared by its tools.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", os.Getenv(EnvConfig),
		"config file, .yaml/.yml or .json (default $"+EnvConfig+")")

	root.AddCommand(a.newConfigCmd())
	root.AddCommand(a.newGraphCmd())

	return root
}

// setup builds the logger and loads the global configuration.
// A missing config file yields an empty configuration.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.verbose {
		a.log, err = zap.NewDevelopment()
	} else {
		a.log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	err = config.LoadGlobal(a.cfgFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.log.Debug("config file not found, starting empty", zap.String("path", a.cfgFile))
		return config.LoadGlobal("")
	case err != nil:
		return err
	}
	a.log.Debug("config loaded", zap.String("path", a.cfgFile), zap.Int("keys", config.Global().Len()))

	return nil
}
