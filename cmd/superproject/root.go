// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"git-superproject/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the git-superproject command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-superproject",
		Short: "Group repositories into named superprojects",
		Long: TitleStyle.Render("git-superproject") + SubtitleStyle.Render(" - Group repositories into named superprojects") + `

A superproject is a named set of GitHub-style repositories (owner/repo).
The registry lives in a git config file, one superproject.<name>.repo
entry per member, so it can be read and edited with plain git config.

` + SubtitleStyle.Render("Examples:") + `
  git superproject list                  List all superprojects
  git superproject list tools            List the repositories of 'tools'
  git superproject add tools me/dotfiles Add a repository
  git superproject edit tools            Toggle members with a fuzzy finder
  git superproject export --format yaml  Dump the registry as YAML`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/git-superproject/config.cue)")
	flags.BoolVar(&app.flags.lenient, "lenient", false, "skip malformed registry entries instead of failing")
	flags.StringVar(&app.flags.store, "store", "", "registry store: git or file (overrides the config)")
	flags.StringVar(&app.flags.file, "file", "", "registry file (overrides the config)")

	rootCmd.AddCommand(
		newListCommand(app),
		newAddCommand(app),
		newRemoveCommand(app),
		newEditCommand(app),
		newExportCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.printError(w, err)
		}),
	); err != nil {
		os.Exit(int(exitCode(err)))
	}
}

// printError writes err for the user. In verbose mode the issue guide
// attached to a ServiceError follows the message; otherwise only its links do.
func (a *App) printError(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("Error:"), formatErrorForDisplay(err, a.verbose))

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID == 0 {
		return
	}
	if a.verbose {
		renderIssue(w, svcErr.IssueID, a.issueStyle, a.logger)
		return
	}
	if guide := issue.Get(svcErr.IssueID); guide != nil {
		for _, link := range guide.Links() {
			fmt.Fprintln(w, "  see", link)
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
