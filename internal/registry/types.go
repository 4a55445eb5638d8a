// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

const (
	// keyPrefix and keySuffix frame the superproject name in a store key.
	keyPrefix = "superproject."
	keySuffix = ".repo"
)

var (
	// ErrMalformedKey is returned when a store key does not match superproject.<name>.repo.
	ErrMalformedKey = errors.New("malformed superproject key")
	// ErrInvalidRepoIdentifier is returned when a value is not an owner/repo identifier.
	ErrInvalidRepoIdentifier = errors.New("invalid repo identifier")
	// ErrInvalidSuperprojectName is returned when a superproject name cannot be stored in a key.
	ErrInvalidSuperprojectName = errors.New("invalid superproject name")
	// ErrCollaboratorFailure is returned when the store or the finder fails.
	ErrCollaboratorFailure = errors.New("collaborator failure")

	repoIdentifierPattern = regexp.MustCompile(`^[-.\w]+/[-.\w]+$`)
	keyPattern            = regexp.MustCompile(`^superproject\.(?P<name>.+)\.repo$`)
)

type (
	// RepoIdentifier names a repository as exactly two segments of [-.\w]+
	// joined by a slash, e.g. "acme/cli".
	RepoIdentifier string

	// SuperprojectName names a superproject. It may contain dots but must be
	// non-empty and free of '=' and line breaks, which the key=value wire format
	// cannot carry.
	SuperprojectName string

	// RepoSet is the set of repository identifiers of one superproject.
	RepoSet map[RepoIdentifier]struct{}

	// MalformedKeyError is returned when a key does not match superproject.<name>.repo.
	// It wraps ErrMalformedKey for errors.Is() compatibility.
	MalformedKeyError struct {
		Key string
	}

	// InvalidRepoIdentifierError is returned when a value fails the owner/repo syntax check.
	// It wraps ErrInvalidRepoIdentifier for errors.Is() compatibility.
	InvalidRepoIdentifierError struct {
		Value RepoIdentifier
	}

	// InvalidSuperprojectNameError is returned when a name cannot be encoded in a key.
	// It wraps ErrInvalidSuperprojectName for errors.Is() compatibility.
	InvalidSuperprojectNameError struct {
		Value SuperprojectName
	}

	// CollaboratorFailureError is returned when an external collaborator (the
	// config store or the finder) fails. It wraps ErrCollaboratorFailure and
	// exposes the underlying cause through errors.As.
	CollaboratorFailureError struct {
		// Collaborator is "store" or "finder".
		Collaborator string
		// Operation is what was being asked of the collaborator.
		Operation string
		Err       error
	}
)

// Error implements the error interface for MalformedKeyError.
func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("invalid superproject key %q (expected superproject.<name>.repo)", e.Key)
}

// Unwrap returns ErrMalformedKey for errors.Is() compatibility.
func (e *MalformedKeyError) Unwrap() error { return ErrMalformedKey }

// Error implements the error interface for InvalidRepoIdentifierError.
func (e *InvalidRepoIdentifierError) Error() string {
	return fmt.Sprintf("invalid repo name %q (expected owner/repo)", e.Value)
}

// Unwrap returns ErrInvalidRepoIdentifier for errors.Is() compatibility.
func (e *InvalidRepoIdentifierError) Unwrap() error { return ErrInvalidRepoIdentifier }

// Error implements the error interface for InvalidSuperprojectNameError.
func (e *InvalidSuperprojectNameError) Error() string {
	return fmt.Sprintf("invalid superproject name %q: must be non-empty and must not contain '=' or line breaks", e.Value)
}

// Unwrap returns ErrInvalidSuperprojectName for errors.Is() compatibility.
func (e *InvalidSuperprojectNameError) Unwrap() error { return ErrInvalidSuperprojectName }

// Error implements the error interface for CollaboratorFailureError.
func (e *CollaboratorFailureError) Error() string {
	return fmt.Sprintf("%s failed to %s: %v", e.Collaborator, e.Operation, e.Err)
}

// Unwrap returns both the sentinel and the cause, so errors.Is matches
// ErrCollaboratorFailure and errors.As still reaches the cause.
func (e *CollaboratorFailureError) Unwrap() []error {
	return []error{ErrCollaboratorFailure, e.Err}
}

// String returns the string representation of the RepoIdentifier.
func (r RepoIdentifier) String() string { return string(r) }

// Validate returns an InvalidRepoIdentifierError if r is not an owner/repo identifier.
func (r RepoIdentifier) Validate() error {
	if !repoIdentifierPattern.MatchString(string(r)) {
		return &InvalidRepoIdentifierError{Value: r}
	}
	return nil
}

// String returns the string representation of the SuperprojectName.
func (n SuperprojectName) String() string { return string(n) }

// Validate returns an InvalidSuperprojectNameError if n cannot be stored in a key.
func (n SuperprojectName) Validate() error {
	if n == "" || strings.ContainsAny(string(n), "=\r\n") {
		return &InvalidSuperprojectNameError{Value: n}
	}
	return nil
}

// Key returns the store key holding the repositories of n.
func (n SuperprojectName) Key() string {
	return keyPrefix + string(n) + keySuffix
}

// ParseKey extracts the superproject name from a store key. The name is
// captured greedily, so "superproject.a.b.repo" yields "a.b".
func ParseKey(key string) (SuperprojectName, error) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return "", &MalformedKeyError{Key: key}
	}
	return SuperprojectName(m[keyPattern.SubexpIndex("name")]), nil
}

// Sorted returns the members of s in lexicographic order. The result is never nil.
func (s RepoSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for repo := range s {
		out = append(out, string(repo))
	}
	slices.Sort(out)
	return out
}

// Contains reports whether repo is a member of s.
func (s RepoSet) Contains(repo RepoIdentifier) bool {
	_, ok := s[repo]
	return ok
}
