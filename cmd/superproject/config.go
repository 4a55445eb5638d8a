// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"git-superproject/internal/config"
)

// newConfigCommand creates the `git-superproject config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage git-superproject configuration",
		Long: `Manage git-superproject configuration.

Configuration is stored in:
  - Linux: ~/.config/git-superproject/config.cue
  - macOS: ~/Library/Application Support/git-superproject/config.cue
  - Windows: %APPDATA%\git-superproject\config.cue

Every key can be overridden with a SUPERPROJECT_ environment variable,
for example SUPERPROJECT_STORE=file or SUPERPROJECT_UI_VERBOSE=true.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			return app.showConfig(cfg)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(app.loadOptions())
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Fprintln(app.stdout, "(using defaults)")
				return nil
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long: `Create the default configuration file. An existing file is kept
unless --force is given, which overwrites it with the defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path string
				err  error
			)
			if force {
				path, err = config.Save(config.DefaultConfig(), app.loadOptions())
			} else {
				path, err = config.CreateDefaultConfig(app.loadOptions())
			}
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(app.stdout, "Configuration at %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file with the defaults")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func (a *App) showConfig(cfg *config.Config) error {
	keyStyle, valueStyle := CmdStyle, SubtitleStyle
	if !a.Interactive(a.stdout) {
		keyStyle, valueStyle = keyStyle.UnsetForeground(), valueStyle.UnsetForeground()
	}

	path, err := config.ResolvePath(a.loadOptions())
	if err != nil {
		return err
	}
	if path == "" {
		path = "(using defaults)"
	}

	rows := []struct{ key, value string }{
		{"config file", path},
		{"registry_file", cfg.RegistryFile},
		{"store", cfg.Store.String()},
		{"git_binary", cfg.GitBinary},
		{"finder", cfg.Finder},
		{"backup_suffix", cfg.BackupSuffix},
		{"ui.color_scheme", cfg.UI.ColorScheme.String()},
		{"ui.verbose", strconv.FormatBool(cfg.UI.Verbose)},
	}
	for _, row := range rows {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render(row.key), valueStyle.Render(row.value))
	}
	return nil
}
