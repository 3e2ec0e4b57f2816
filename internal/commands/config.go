package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frequent/config"
)

// errNoConfigFile is returned by commands that persist settings without a target file.
var errNoConfigFile = errors.New("no config file: set --config or $" + EnvConfig)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE:  a.runShowConfig,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Print one setting (dotted key path)",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runGetConfig,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a setting and save the config file",
		Long: `Store VALUE under the dotted KEY path and save the config file.
VALUE is parsed as a YAML scalar: 42, 2.5, true and null keep their types,
anything else is stored as a string.`,
		Args: cobra.ExactArgs(2),
		RunE: a.runSetConfig,
	})

	return cmd
}

func (a *app) runShowConfig(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(config.Global().ToMap())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	return nil
}

func (a *app) runGetConfig(cmd *cobra.Command, args []string) error {
	v, err := config.GetGlobal(args[0])
	if err != nil {
		return err
	}

	if sec, ok := v.(*config.Configuration); ok {
		data, err := yaml.Marshal(sec.ToMap())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)

	return nil
}

func (a *app) runSetConfig(cmd *cobra.Command, args []string) error {
	if a.cfgFile == "" {
		return errNoConfigFile
	}

	key, value := args[0], parseScalar(args[1])
	if err := config.SetGlobal(key, value); err != nil {
		return err
	}
	if err := config.Global().Save(a.cfgFile); err != nil {
		return err
	}
	a.log.Info("setting saved", zap.String("key", key), zap.Any("value", value), zap.String("path", a.cfgFile))

	return nil
}

// parseScalar decodes text as a YAML scalar, falling back to the raw string.
func parseScalar(text string) any {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	switch v.(type) {
	case map[string]any, []any:
		return text
	}

	return v
}
