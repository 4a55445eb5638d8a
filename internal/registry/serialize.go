// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultBackupSuffix is appended to the registry file path to name the backup
// written by Rebuild.
const DefaultBackupSuffix = "~"

// RebuildOptions configures Rebuild.
type RebuildOptions struct {
	// Path is the registry file the store writes to.
	Path string
	// BackupSuffix names the backup file (Path + BackupSuffix). Defaults to DefaultBackupSuffix.
	BackupSuffix string
	// Logger receives debug output about the rebuild steps (optional).
	Logger *log.Logger
}

// Serialize appends one superproject.<name>.repo key per registered repository
// to w, names and repositories in sorted order. When names are given, only those
// superprojects are written. The store is never asked to delete anything.
func (r *Registry) Serialize(ctx context.Context, w Appender, names ...string) error {
	if len(names) == 0 {
		names = r.Names()
	}
	for _, name := range names {
		key := SuperprojectName(name).Key()
		for _, repo := range r.List(name) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := w.Append(ctx, key, repo); err != nil {
				return &CollaboratorFailureError{
					Collaborator: "store",
					Operation:    fmt.Sprintf("add %s %s", key, repo),
					Err:          err,
				}
			}
		}
	}
	return nil
}

// Rebuild replaces the content of the registry file with the current state of r.
//
// The existing file is renamed to its backup path so the store starts from an
// empty file, every entry is replayed through store, and finally every comment
// line of the backup is appended to the new file after all keys. The backup is
// left in place. Nothing is touched when ctx is already canceled.
func Rebuild(ctx context.Context, r *Registry, store Appender, opts RebuildOptions) error {
	if opts.Path == "" {
		return errors.New("rebuild: registry file path is empty")
	}
	suffix := opts.BackupSuffix
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	backup := opts.Path + suffix
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	hasBackup := false
	if _, err := os.Stat(opts.Path); err == nil {
		if err := os.Rename(opts.Path, backup); err != nil {
			return fmt.Errorf("failed to back up %s: %w", opts.Path, err)
		}
		hasBackup = true
		logger.Debug("backed up registry file", "path", opts.Path, "backup", backup)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", opts.Path, err)
	}

	if err := r.Serialize(ctx, store); err != nil {
		return err
	}
	logger.Debug("wrote registry entries", "path", opts.Path, "superprojects", len(r.Names()))

	if !hasBackup {
		return nil
	}
	n, err := copyComments(backup, opts.Path)
	if err != nil {
		return err
	}
	logger.Debug("restored comments", "path", opts.Path, "lines", n)
	return nil
}

// copyComments appends every line of src that starts with '#' to dst and
// returns the number of lines copied.
func copyComments(src, dst string) (int, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to read backup %s: %w", src, err)
	}
	defer in.Close()

	var comments []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "#") {
			comments = append(comments, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read backup %s: %w", src, err)
	}
	if len(comments) == 0 {
		return 0, nil
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", dst, err)
	}
	if _, err := io.WriteString(out, strings.Join(comments, "\n")+"\n"); err != nil {
		out.Close()
		return 0, fmt.Errorf("failed to write comments to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return len(comments), nil
}
