// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

func newAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME REPO...",
		Short: "Add repositories to a superproject",
		Long: `Add one or more owner/repo identifiers to superproject NAME, creating it
when needed. Nothing is written if any identifier is invalid.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			r, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			repos, err := r.Add(args[0], args[1:]...)
			if err != nil {
				return invalidInput(err)
			}
			if err := s.save(cmd.Context(), r); err != nil {
				return err
			}

			if s.interactive {
				s.printMembers(app.stdout, args[0], repos)
			}
			return nil
		},
	}
}

func newRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME REPO...",
		Aliases: []string{"rm"},
		Short:   "Remove repositories from a superproject",
		Long: `Remove repositories from superproject NAME. Repositories that are not
members are ignored. A superproject left empty disappears from the file.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			r, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			repos := r.Remove(args[0], args[1:]...)
			if err := s.save(cmd.Context(), r); err != nil {
				return err
			}

			if s.interactive {
				s.printMembers(app.stdout, args[0], repos)
			}
			return nil
		},
	}
}
