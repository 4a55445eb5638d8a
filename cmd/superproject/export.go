// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"git-superproject/internal/registry"
)

func newExportCommand(app *App) *cobra.Command {
	var format string

	exportCmd := &cobra.Command{
		Use:   "export [NAME...]",
		Short: "Write the registry in another format",
		Long: `Write every superproject, or only the named ones, to stdout.

Formats:
  json    {"<name>": ["<owner/repo>", ...]}
  yaml    a mapping of names to repository lists
  toml    one array per name
  config  superproject.<name>.repo=<owner/repo> lines, as listed by git config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := registry.ExportFormat(format)
			if !slices.Contains(registry.ExportFormats(), f) {
				return &ExitError{Code: exitUsage, Err: fmt.Errorf("unknown format %q (valid: json, yaml, toml, config)", format)}
			}

			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			r, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			return r.Encode(cmd.Context(), app.stdout, f, args...)
		},
	}

	exportCmd.Flags().StringVarP(&format, "format", "f", registry.FormatJSON.String(), "output format: json, yaml, toml or config")

	return exportCmd
}
