// SPDX-License-Identifier: MPL-2.0

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"
)

// File is a Store that reads and writes the git config format in-process.
//
// Every Append decodes the file, adds the option and encodes it back, so comment
// lines inside the file are not retained across writes. The registry rebuild
// restores comments from its backup after the last write.
type File struct {
	// Path is the config file.
	Path string

	logger *log.Logger
}

// NewFile creates a File store for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// List decodes the file and returns every option in --list notation, in file
// order. A missing file lists as empty.
func (f *File) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := f.load()
	if err != nil {
		return nil, err
	}

	var pairs []string
	for _, section := range cfg.Sections {
		for _, opt := range section.Options {
			pairs = append(pairs, key{section: section.Name, name: opt.Key}.String()+"="+opt.Value)
		}
		for _, sub := range section.Subsections {
			for _, opt := range sub.Options {
				k := key{section: section.Name, subsection: sub.Name, name: opt.Key}
				pairs = append(pairs, k.String()+"="+opt.Value)
			}
		}
	}
	return pairs, nil
}

// Append adds one more value for k, keeping every existing value.
func (f *File) Append(ctx context.Context, k, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	parsed, err := splitKey(k)
	if err != nil {
		return err
	}
	cfg, err := f.load()
	if err != nil {
		return err
	}

	cfg.AddOption(parsed.section, parsed.subsection, parsed.name, value)

	var buf bytes.Buffer
	if err := gitconfig.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.Path, err)
	}
	if err := os.WriteFile(f.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	if f.logger != nil {
		f.logger.Debug("appended config value", "path", f.Path, "key", k, "value", value)
	}
	return nil
}

func (f *File) load() (*gitconfig.Config, error) {
	cfg := gitconfig.New()
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	if err := gitconfig.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.Path, err)
	}
	return cfg, nil
}
