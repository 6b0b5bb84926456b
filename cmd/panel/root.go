package cmd

import (
	"fmt"
	"os"
	"strings"

	// Subcommands
	"github.com/cozy-creator/comfy-panel/cmd/panel/deps"
	"github.com/cozy-creator/comfy-panel/cmd/panel/launcher"
	"github.com/cozy-creator/comfy-panel/cmd/panel/model"
	"github.com/cozy-creator/comfy-panel/cmd/panel/node"
	"github.com/cozy-creator/comfy-panel/cmd/panel/python"
	"github.com/cozy-creator/comfy-panel/cmd/panel/pytorch"
	"github.com/cozy-creator/comfy-panel/cmd/panel/serve"
	"github.com/cozy-creator/comfy-panel/cmd/panel/status"
	"github.com/cozy-creator/comfy-panel/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Cmd = &cobra.Command{
	Use:   "comfy-panel",
	Short: "ComfyUI control panel",
	Long:  "A control panel for a local ComfyUI launcher: check and install PyTorch, Python and dependencies, manage custom nodes, find nodes on GitHub and download models.",

	SilenceUsage:  true,
	SilenceErrors: true,

	// Runs before this command and any subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags of the command being run, e.g. serve --port
		if err := bindFlags(cmd.Flags()); err != nil {
			return err
		}

		return config.LoadEnvAndConfigFiles()
	},
}

// bindFlags maps hyphenated flag names onto the underscored config keys.
func bindFlags(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		}
	})
	return err
}

func Execute() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pflags := Cmd.PersistentFlags()

	pflags.String("panel-home", "", "Path to the panel home directory (default ~/.comfy-panel)")
	pflags.String("config-file", "", "Path to the config file")
	pflags.String("env-file", "", "Path to the env file")
	pflags.String("backend-url", "", "Base URL of the launcher backend")
	pflags.String("language", "", "UI language: en or zh")
	pflags.Duration("request-timeout", 0, "Per-request timeout, 0 for none")
	pflags.BoolP("verbose", "v", false, "Log backend calls to stderr")

	viper.BindPFlag("panel_home", pflags.Lookup("panel-home"))
	viper.BindPFlag("config_file", pflags.Lookup("config-file"))
	viper.BindPFlag("env_file", pflags.Lookup("env-file"))
	viper.BindPFlag("backend_url", pflags.Lookup("backend-url"))
	viper.BindPFlag("language", pflags.Lookup("language"))
	viper.BindPFlag("request_timeout", pflags.Lookup("request-timeout"))
	viper.BindPFlag("verbose", pflags.Lookup("verbose"))

	Cmd.AddCommand(
		serve.Cmd,
		status.Cmd,
		pytorch.Cmd,
		python.Cmd,
		deps.Cmd,
		node.Cmd,
		model.Cmd,
		launcher.Cmd,
	)
	Cmd.CompletionOptions.HiddenDefaultCmd = true
}
