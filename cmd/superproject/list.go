// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"git-superproject/internal/registry"
)

func newListCommand(app *App) *cobra.Command {
	var asJSON bool

	listCmd := &cobra.Command{
		Use:   "list [NAME]",
		Short: "List superprojects or the repositories of one",
		Long: `List every superproject with its repository count, or the repositories
of NAME one per line. Unknown names list as empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			r, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			switch {
			case asJSON:
				return r.Encode(cmd.Context(), app.stdout, registry.FormatJSON, args...)
			case len(args) == 0:
				s.printNames(app.stdout, r)
			default:
				for _, repo := range r.List(args[0]) {
					fmt.Fprintln(app.stdout, repo)
				}
			}
			return nil
		},
	}

	listCmd.Flags().BoolVar(&asJSON, "json", false, "print the registry as JSON")

	return listCmd
}

// printNames writes one "name<TAB>count" line per superproject.
func (s *session) printNames(w io.Writer, r *registry.Registry) {
	names := r.Names()
	if len(names) == 0 && s.interactive {
		fmt.Fprintln(w, s.palette.Subtle.Render("no superprojects in "+s.path))
		return
	}
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", s.palette.Name.Render(name), s.palette.Count.Render(strconv.Itoa(len(r.List(name)))))
	}
}

// printMembers writes the repositories of name under a title line.
func (s *session) printMembers(w io.Writer, name string, repos []string) {
	fmt.Fprintln(w, s.palette.Title.Render(name+":"))
	if len(repos) == 0 {
		fmt.Fprintln(w, "  "+s.palette.Subtle.Render("(no repositories)"))
		return
	}
	for _, repo := range repos {
		fmt.Fprintln(w, "  "+repo)
	}
}
