// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"git-superproject/internal/issue"
	"git-superproject/internal/registry"
)

func newEditCommand(app *App) *cobra.Command {
	var (
		finderTemplate string
		candidatesFile string
	)

	editCmd := &cobra.Command{
		Use:   "edit NAME [CANDIDATE...]",
		Short: "Toggle superproject members with a fuzzy finder",
		Long: `Offer every known repository to the finder and toggle the membership of
each selection in superproject NAME. The finder runs again until it returns
nothing. Extra candidates come from the arguments and from --candidates,
one owner/repo per line.

The finder command is run by an embedded POSIX shell with the candidates
on stdin and must print its selection separated by NUL bytes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := app.newSession(ctx)
			if err != nil {
				return err
			}
			r, err := s.load(ctx)
			if err != nil {
				return err
			}

			extra := args[1:]
			if candidatesFile != "" {
				lines, err := readCandidates(candidatesFile)
				if err != nil {
					return err
				}
				extra = append(extra, lines...)
			}
			for _, c := range extra {
				if err := registry.RepoIdentifier(c).Validate(); err != nil {
					return invalidInput(err)
				}
			}

			template := s.cfg.Finder
			if finderTemplate != "" {
				template = finderTemplate
			}
			f, err := app.NewFinder(template, app.stderr, s.logger)
			if err != nil {
				return &ExitError{Code: exitUsage, Err: newServiceError(issue.NewErrorContext().
					WithOperation("prepare finder").
					WithResource(template).
					WithSuggestion("Set finder in the config file or pass --finder").
					Wrap(err).
					BuildError(), issue.FinderFailedId)}
			}

			result, editErr := r.Edit(ctx, registry.EditOptions{
				Name:        args[0],
				Candidates:  append(r.Repos(), extra...),
				Finder:      f,
				Out:         app.stdout,
				Interactive: s.interactive,
				Logger:      s.logger,
				Styles: &registry.EditStyles{
					Header:   s.palette.Title,
					Adding:   s.palette.Success,
					Removing: s.palette.Warning,
					Empty:    s.palette.Subtle,
				},
			})
			if errors.Is(editErr, registry.ErrInvalidSuperprojectName) {
				return invalidInput(editErr)
			}
			s.logger.Debug("edit finished", "superproject", args[0],
				"invocations", result.Invocations, "added", len(result.Added), "removed", len(result.Removed))

			// Toggles applied before a finder failure are kept.
			if len(result.Added) > 0 || len(result.Removed) > 0 {
				if err := s.save(ctx, r); err != nil {
					return err
				}
			}

			if editErr != nil {
				return newServiceError(issue.NewErrorContext().
					WithOperation("edit "+args[0]).
					WithResource(template).
					WithSuggestions("Check that the finder is installed", "Pass another command with --finder").
					Wrap(editErr).
					BuildError(), issue.FinderFailedId)
			}
			return nil
		},
	}

	editCmd.Flags().StringVar(&finderTemplate, "finder", "", "finder command (overrides the config)")
	editCmd.Flags().StringVar(&candidatesFile, "candidates", "", "file with extra candidates, one per line")

	return editCmd
}

// readCandidates returns the non-blank lines of path.
func readCandidates(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	var lines []string
	for line := range strings.Lines(string(data)) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
