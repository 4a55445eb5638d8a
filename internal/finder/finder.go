// SPDX-License-Identifier: MPL-2.0

// Package finder runs the external selection tool used by the edit loop.
//
// The finder is configured as a shell command template such as
// "fzf --multi --print0". The template is parsed and run by the embedded
// mvdan/sh interpreter, so quoting, environment expansion and pipelines behave
// the same on every platform, while the programs it names are executed from PATH.
package finder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"git-superproject/pkg/types"
)

// DefaultTemplate is the finder used when none is configured.
const DefaultTemplate = "fzf --multi --print0"

// ErrEmptyTemplate is returned when the command template is blank.
var ErrEmptyTemplate = errors.New("finder command is empty")

// Command is a finder backed by a shell command template.
type Command struct {
	// Template is the shell command to run.
	Template string
	// Dir is the working directory (optional, defaults to the current one).
	Dir string
	// Env is the environment as KEY=VALUE pairs (optional, defaults to os.Environ()).
	Env []string
	// Stderr receives the finder's stderr. Defaults to os.Stderr.
	Stderr io.Writer
	// QuietExitCodes are exit statuses treated as an empty selection.
	// fzf exits with 1 when nothing matched and 130 when interrupted.
	QuietExitCodes []types.ExitCode
	// Logger receives debug output (optional).
	Logger *log.Logger
}

// New creates a Command finder for template with fzf's quiet exit codes.
func New(template string) *Command {
	return &Command{Template: template, QuietExitCodes: []types.ExitCode{types.ExitNoMatch, types.ExitInterrupted}}
}

// Validate parses the template without running it.
func (c *Command) Validate() error {
	_, err := c.parse()
	return err
}

// Find runs the template with candidates on stdin, one per line, and returns
// whatever the command wrote to stdout.
func (c *Command) Find(ctx context.Context, candidates []string) ([]byte, error) {
	prog, err := c.parse()
	if err != nil {
		return nil, err
	}

	var stdin bytes.Buffer
	for _, candidate := range candidates {
		stdin.WriteString(candidate)
		stdin.WriteByte('\n')
	}

	env := c.Env
	if env == nil {
		env = os.Environ()
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdout bytes.Buffer
	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(&stdin, &stdout, stderr),
	}
	if c.Dir != "" {
		opts = append(opts, interp.Dir(c.Dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if c.Logger != nil {
		c.Logger.Debug("running finder", "command", c.Template, "candidates", len(candidates))
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			code := types.ExitCode(exitStatus)
			if slices.Contains(c.QuietExitCodes, code) {
				if c.Logger != nil {
					c.Logger.Debug("finder returned no selection", "status", code, "interrupted", code.IsInterrupt())
				}
				return nil, nil
			}
			return nil, fmt.Errorf("finder %q exited with status %s", c.Template, code)
		}
		return nil, fmt.Errorf("finder %q failed: %w", c.Template, err)
	}
	return stdout.Bytes(), nil
}

func (c *Command) parse() (*syntax.File, error) {
	if strings.TrimSpace(c.Template) == "" {
		return nil, ErrEmptyTemplate
	}
	prog, err := syntax.NewParser().Parse(strings.NewReader(c.Template), "finder")
	if err != nil {
		return nil, fmt.Errorf("failed to parse finder command %q: %w", c.Template, err)
	}
	return prog, nil
}
