// SPDX-License-Identifier: MPL-2.0

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Git is a Store backed by `git config --file`.
type Git struct {
	// Binary is the git executable. Defaults to "git".
	Binary string
	// Path is the config file passed to --file.
	Path string

	logger *log.Logger
}

// NewGit creates a Git store for path.
func NewGit(binary, path string) *Git {
	return &Git{Binary: binary, Path: path}
}

// List runs `git config --file <path> --list`. A missing file lists as empty.
func (g *Git) List(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(g.Path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	out, err := g.run(ctx, "--list")
	if err != nil {
		return nil, err
	}

	var pairs []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			pairs = append(pairs, line)
		}
	}
	return pairs, nil
}

// Append runs `git config --file <path> --add <key> <value>`.
func (g *Git) Append(ctx context.Context, key, value string) error {
	_, err := g.run(ctx, "--add", key, value)
	return err
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	args = append([]string{"config", "--file", g.Path}, args...)

	if g.logger != nil {
		g.logger.Debug("running git", "args", args)
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%s %s: %s: %w", binary, strings.Join(args, " "), msg, err)
	}
	return stdout.String(), nil
}
