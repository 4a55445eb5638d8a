// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"slices"
	"strings"
)

type (
	// Registry maps superproject names to their repository sets.
	// The zero value is not usable; construct with New, Parse or Load.
	Registry struct {
		superprojects map[SuperprojectName]RepoSet
	}

	// Lister is the read half of the config store: every key=value pair in the file.
	Lister interface {
		List(ctx context.Context) ([]string, error)
	}

	// Appender is the write half of the config store: one more value for a key.
	Appender interface {
		Append(ctx context.Context, key, value string) error
	}

	// Store is a config store that can be both listed and appended to.
	Store interface {
		Lister
		Appender
	}

	// parseOptions holds configuration for Parse.
	parseOptions struct {
		onSkip func(error)
	}

	// ParseOption configures Parse and Load.
	ParseOption func(*parseOptions)
)

// SkipInvalid makes parsing lenient: pairs with a malformed key or an invalid
// identifier are passed to onSkip and ignored instead of aborting the parse.
func SkipInvalid(onSkip func(error)) ParseOption {
	return func(o *parseOptions) {
		o.onSkip = onSkip
	}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{superprojects: make(map[SuperprojectName]RepoSet)}
}

// Parse builds a Registry from raw key=value pairs as listed by a store.
//
// Each pair is split at the first '='. Parsing stops at the first pair whose key
// is not superproject.<name>.repo (MalformedKeyError) or whose value is not an
// owner/repo identifier (InvalidRepoIdentifierError), and no Registry is returned.
// Blank lines are ignored.
func Parse(pairs []string, opts ...ParseOption) (*Registry, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := New()
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, repo, err := parsePair(pair)
		if err != nil {
			if o.onSkip != nil {
				o.onSkip(err)
				continue
			}
			return nil, err
		}
		r.reposFor(name)[repo] = struct{}{}
	}
	return r, nil
}

// Load lists every pair in store and parses it.
func Load(ctx context.Context, store Lister, opts ...ParseOption) (*Registry, error) {
	pairs, err := store.List(ctx)
	if err != nil {
		return nil, &CollaboratorFailureError{Collaborator: "store", Operation: "list keys", Err: err}
	}
	return Parse(pairs, opts...)
}

func parsePair(pair string) (SuperprojectName, RepoIdentifier, error) {
	key, value, _ := strings.Cut(pair, "=")
	name, err := ParseKey(key)
	if err != nil {
		return "", "", err
	}
	repo := RepoIdentifier(value)
	if err := repo.Validate(); err != nil {
		return "", "", err
	}
	return name, repo, nil
}

// reposFor returns the set for name, creating an empty one on first use.
func (r *Registry) reposFor(name SuperprojectName) RepoSet {
	repos, ok := r.superprojects[name]
	if !ok {
		repos = make(RepoSet)
		r.superprojects[name] = repos
	}
	return repos
}

// Has reports whether a set exists for name, even an empty one.
func (r *Registry) Has(name string) bool {
	_, ok := r.superprojects[SuperprojectName(name)]
	return ok
}

// Names returns every superproject name with a set, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.superprojects))
	for name := range r.superprojects {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// List returns the sorted repositories of name. Unknown names yield an empty slice.
func (r *Registry) List(name string) []string {
	return r.superprojects[SuperprojectName(name)].Sorted()
}

// Contains reports whether repo is registered under name.
func (r *Registry) Contains(name, repo string) bool {
	return r.superprojects[SuperprojectName(name)].Contains(RepoIdentifier(repo))
}

// Repos returns every repository registered under any superproject, sorted and
// without duplicates.
func (r *Registry) Repos() []string {
	all := make(RepoSet)
	for _, repos := range r.superprojects {
		for repo := range repos {
			all[repo] = struct{}{}
		}
	}
	return all.Sorted()
}

// Add registers repos under name and returns the resulting sorted list.
//
// The batch is atomic: the name and every identifier are validated before
// anything is inserted, so an invalid identifier leaves the registry untouched.
// Adding an identifier that is already present is a no-op.
func (r *Registry) Add(name string, repos ...string) ([]string, error) {
	n := SuperprojectName(name)
	if err := n.Validate(); err != nil {
		return nil, err
	}
	for _, repo := range repos {
		if err := RepoIdentifier(repo).Validate(); err != nil {
			return nil, err
		}
	}

	set := r.reposFor(n)
	for _, repo := range repos {
		set[RepoIdentifier(repo)] = struct{}{}
	}
	return set.Sorted(), nil
}

// Remove unregisters repos from name and returns the resulting sorted list.
// Repositories that are not registered, and unknown names, are silently ignored.
func (r *Registry) Remove(name string, repos ...string) []string {
	set := r.reposFor(SuperprojectName(name))
	for _, repo := range repos {
		delete(set, RepoIdentifier(repo))
	}
	return set.Sorted()
}

// toggle removes repo from name if present and adds it otherwise.
// It reports whether repo is a member afterwards.
func (r *Registry) toggle(name SuperprojectName, repo RepoIdentifier) bool {
	set := r.reposFor(name)
	if set.Contains(repo) {
		delete(set, repo)
		return false
	}
	set[repo] = struct{}{}
	return true
}
