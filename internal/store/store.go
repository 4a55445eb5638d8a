// SPDX-License-Identifier: MPL-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// KindGit selects the Git store.
	KindGit Kind = "git"
	// KindFile selects the in-process File store.
	KindFile Kind = "file"
)

var (
	// ErrInvalidKind is returned when a Kind value is not recognized.
	ErrInvalidKind = errors.New("invalid store kind")
	// ErrInvalidKey is returned when a key has no section or no variable name.
	ErrInvalidKey = errors.New("invalid config key")
)

type (
	// Kind names a store implementation.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}

	// Store lists every key=value pair of a config file and appends new values.
	Store interface {
		List(ctx context.Context) ([]string, error)
		Append(ctx context.Context, key, value string) error
	}

	// Options configures New.
	Options struct {
		// Kind selects the implementation.
		Kind Kind
		// Path is the config file.
		Path string
		// GitBinary is the git executable used by KindGit. Defaults to "git".
		GitBinary string
		// Logger receives debug output (optional).
		Logger *log.Logger
	}

	// key is a config key split into its parts.
	key struct {
		section    string
		subsection string
		name       string
	}
)

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid store %q (valid: git, file)", e.Value)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// IsValid returns whether the Kind is one of the defined store kinds,
// and a list of validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	switch k {
	case KindGit, KindFile:
		return true, nil
	default:
		return false, []error{&InvalidKindError{Value: k}}
	}
}

// New creates the store selected by opts.Kind.
func New(opts Options) (Store, error) {
	if valid, errs := opts.Kind.IsValid(); !valid {
		return nil, errs[0]
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Kind == KindFile {
		return &File{Path: opts.Path, logger: logger}, nil
	}
	return &Git{Binary: opts.GitBinary, Path: opts.Path, logger: logger}, nil
}

// splitKey splits "section.sub.section.name" into its parts the way git does:
// the section ends at the first dot and the variable name starts after the last.
func splitKey(k string) (key, error) {
	first := strings.Index(k, ".")
	last := strings.LastIndex(k, ".")
	if first <= 0 || last == len(k)-1 {
		return key{}, fmt.Errorf("%w: %q", ErrInvalidKey, k)
	}
	parsed := key{section: k[:first], name: k[last+1:]}
	if last > first {
		parsed.subsection = k[first+1 : last]
	}
	return parsed, nil
}

// String returns the key in git's --list notation.
func (k key) String() string {
	if k.subsection == "" {
		return strings.ToLower(k.section) + "." + strings.ToLower(k.name)
	}
	return strings.ToLower(k.section) + "." + k.subsection + "." + strings.ToLower(k.name)
}
