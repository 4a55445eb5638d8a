// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type (
	// Finder is the external selection tool. Find offers candidates and returns
	// the raw selection: zero or more identifiers separated by NUL bytes.
	// An empty result ends the edit loop.
	Finder interface {
		Find(ctx context.Context, candidates []string) ([]byte, error)
	}

	// EditOptions configures Edit.
	EditOptions struct {
		// Name is the superproject being edited.
		Name string
		// Candidates are offered to the finder on every round.
		Candidates []string
		// Finder picks identifiers to toggle.
		Finder Finder
		// Out receives the membership dumps and the adding/removing notifications.
		Out io.Writer
		// Interactive enables output to Out. When false nothing is written.
		Interactive bool
		// Logger receives debug and warning output (optional).
		Logger *log.Logger
		// Styles renders the output to Out. Nil prints plain text.
		Styles *EditStyles
	}

	// EditStyles holds the lipgloss styles of the edit output.
	EditStyles struct {
		// Header styles the "<name>:" line of a membership dump.
		Header lipgloss.Style
		// Adding and Removing style the toggle notifications.
		Adding   lipgloss.Style
		Removing lipgloss.Style
		// Empty styles the placeholder of a superproject without members.
		Empty lipgloss.Style
	}

	// EditResult summarizes an edit session.
	EditResult struct {
		// Invocations counts finder calls, including the one that ended the loop.
		Invocations int
		// Added and Removed list every toggle in the order it was applied.
		// A repository toggled twice appears in both.
		Added   []string
		Removed []string
	}
)

// Edit runs the interactive reconciliation loop for one superproject.
//
// The finder is invoked repeatedly with the candidates. Every identifier it
// returns toggles membership: members are removed, non-members are added. The
// loop ends when the finder returns no selection at all. Tokens that are not
// valid identifiers are skipped without touching the registry.
//
// When the finder fails, the error is returned as a CollaboratorFailureError;
// toggles applied in earlier rounds stay applied.
func (r *Registry) Edit(ctx context.Context, opts EditOptions) (EditResult, error) {
	var result EditResult

	name := SuperprojectName(opts.Name)
	if err := name.Validate(); err != nil {
		return result, err
	}
	if opts.Finder == nil {
		return result, fmt.Errorf("edit %s: no finder configured", name)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := opts.Out
	if !opts.Interactive || out == nil {
		out = io.Discard
	}

	styles := opts.Styles
	if styles == nil {
		plain := lipgloss.NewStyle()
		styles = &EditStyles{Header: plain, Adding: plain, Removing: plain, Empty: plain}
	}

	candidates := slices.Clone(opts.Candidates)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	r.printMembers(out, name, styles)

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Invocations++
		logger.Debug("invoking finder", "superproject", name, "round", result.Invocations, "candidates", len(candidates))
		raw, err := opts.Finder.Find(ctx, candidates)
		if err != nil {
			return result, &CollaboratorFailureError{Collaborator: "finder", Operation: "select repositories", Err: err}
		}

		selection := splitSelection(raw)
		if len(selection) == 0 {
			break
		}

		for _, token := range selection {
			repo := RepoIdentifier(token)
			if err := repo.Validate(); err != nil {
				logger.Warn("skipping finder selection", "value", token, "error", err)
				continue
			}
			if r.toggle(name, repo) {
				result.Added = append(result.Added, token)
				fmt.Fprintln(out, styles.Adding.Render("adding "+token))
			} else {
				result.Removed = append(result.Removed, token)
				fmt.Fprintln(out, styles.Removing.Render("removing "+token))
			}
		}
	}

	r.printMembers(out, name, styles)
	return result, nil
}

// printMembers writes the current membership of name to w.
func (r *Registry) printMembers(w io.Writer, name SuperprojectName, styles *EditStyles) {
	fmt.Fprintln(w, styles.Header.Render(string(name)+":"))
	repos := r.List(string(name))
	if len(repos) == 0 {
		fmt.Fprintln(w, "  "+styles.Empty.Render("(no repositories)"))
		return
	}
	for _, repo := range repos {
		fmt.Fprintln(w, "  "+repo)
	}
}

// splitSelection splits NUL-delimited finder output into tokens, trimming
// surrounding whitespace and dropping empty tokens.
func splitSelection(raw []byte) []string {
	var tokens []string
	for _, field := range bytes.Split(raw, []byte{0}) {
		if token := string(bytes.TrimSpace(field)); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
