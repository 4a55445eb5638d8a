// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"git-superproject/internal/config"
	"git-superproject/internal/issue"
	"git-superproject/internal/registry"
	"git-superproject/internal/store"
	"git-superproject/internal/tui"
)

// session is the state of one command invocation: resolved configuration,
// logger and the opened registry store.
type session struct {
	app         *App
	cfg         *config.Config
	logger      *log.Logger
	store       store.Store
	path        string
	interactive bool
	palette     tui.Palette
}

// loadConfig loads the configuration honoring --config and resolves verbosity,
// the logger and the issue guide style.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return nil, newServiceError(err, issue.ConfigLoadFailedId)
	}

	a.verbose = a.flags.verbose || cfg.UI.Verbose
	a.logger = newLogger(a.stderr, a.verbose)
	a.issueStyle = tui.GlamourStyle(cfg.UI.ColorScheme, a.Interactive(a.stderr))
	return cfg, nil
}

// newSession loads the configuration and opens the store, applying the
// --store and --file overrides.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	kind := cfg.Store
	if a.flags.store != "" {
		kind = store.Kind(a.flags.store)
	}
	rawPath := cfg.RegistryFile
	if a.flags.file != "" {
		rawPath = a.flags.file
	}
	path, err := config.ExpandPath(rawPath)
	if err != nil {
		return nil, err
	}

	st, err := a.NewStore(store.Options{
		Kind:      kind,
		Path:      path,
		GitBinary: cfg.GitBinary,
		Logger:    a.logger,
	})
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Err: issue.NewErrorContext().
			WithOperation("open registry store").
			WithResource(path).
			WithSuggestion("Use --store git or --store file").
			Wrap(err).
			BuildError()}
	}

	interactive := a.Interactive(a.stdout)
	a.logger.Debug("session ready", "store", kind, "path", path, "interactive", interactive)

	return &session{
		app:         a,
		cfg:         cfg,
		logger:      a.logger,
		store:       st,
		path:        path,
		interactive: interactive,
		palette:     tui.NewPalette(cfg.UI.ColorScheme, interactive),
	}, nil
}

// load reads the registry file. With --lenient, malformed entries are logged
// and skipped.
func (s *session) load(ctx context.Context) (*registry.Registry, error) {
	var opts []registry.ParseOption
	if s.app.flags.lenient {
		opts = append(opts, registry.SkipInvalid(func(err error) {
			s.logger.Warn("skipping registry entry", "path", s.path, "err", err)
		}))
	}

	r, err := registry.Load(ctx, s.store, opts...)
	if err == nil {
		return r, nil
	}

	id := issue.RegistryParseFailedId
	suggestions := []string{"Run with --lenient to skip malformed entries"}
	if errors.Is(err, registry.ErrCollaboratorFailure) {
		id = issue.StoreFailedId
		suggestions = []string{"Check that " + s.cfg.GitBinary + " is installed", "Try --store file"}
	}
	return nil, newServiceError(issue.NewErrorContext().
		WithOperation("load registry").
		WithResource(s.path).
		WithSuggestions(suggestions...).
		Wrap(err).
		BuildError(), id)
}

// save rebuilds the registry file from r, keeping a backup and its comments.
func (s *session) save(ctx context.Context, r *registry.Registry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return newServiceError(fmt.Errorf("failed to create %s: %w", filepath.Dir(s.path), err), issue.StoreFailedId)
	}

	err := registry.Rebuild(ctx, r, s.store, registry.RebuildOptions{
		Path:         s.path,
		BackupSuffix: s.cfg.BackupSuffix,
		Logger:       s.logger,
	})
	if err != nil {
		return newServiceError(issue.NewErrorContext().
			WithOperation("save registry").
			WithResource(s.path).
			WithSuggestion("The previous content is kept in "+s.path+s.cfg.BackupSuffix).
			Wrap(err).
			BuildError(), issue.StoreFailedId)
	}
	return nil
}

// invalidInput wraps a validation error from the registry with its issue guide
// and the usage exit code.
func invalidInput(err error) error {
	id := issue.InvalidRepoIdentifierId
	if errors.Is(err, registry.ErrInvalidSuperprojectName) {
		id = issue.InvalidSuperprojectNameId
	}
	return &ExitError{Code: exitUsage, Err: newServiceError(err, id)}
}
