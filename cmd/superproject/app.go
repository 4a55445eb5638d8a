// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"git-superproject/internal/config"
	"git-superproject/internal/finder"
	"git-superproject/internal/registry"
	"git-superproject/internal/store"
	"git-superproject/internal/tui"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// StoreFactory opens the registry store.
	StoreFactory func(opts store.Options) (store.Store, error)

	// FinderFactory builds the finder used by edit from a command template.
	FinderFactory func(template string, stderr io.Writer, logger *log.Logger) (registry.Finder, error)

	// App wires CLI services and shared dependencies. All Cobra command
	// handlers receive an App reference.
	App struct {
		Config      ConfigProvider
		NewStore    StoreFactory
		NewFinder   FinderFactory
		Interactive func(io.Writer) bool
		stdout      io.Writer
		stderr      io.Writer
		configDir   string

		flags rootFlags
		// verbose is resolved from --verbose and ui.verbose once a session starts.
		verbose bool
		// issueStyle is the glamour style for issue guides.
		issueStyle string
		logger     *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config      ConfigProvider
		NewStore    StoreFactory
		NewFinder   FinderFactory
		Interactive func(io.Writer) bool
		Stdout      io.Writer
		Stderr      io.Writer
		// ConfigDir overrides the platform config directory.
		ConfigDir string
	}

	// rootFlags holds the persistent flags of the root command.
	rootFlags struct {
		verbose    bool
		configPath string
		lenient    bool
		store      string
		file       string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.NewStore == nil {
		deps.NewStore = store.New
	}
	if deps.NewFinder == nil {
		deps.NewFinder = newCommandFinder
	}
	if deps.Interactive == nil {
		deps.Interactive = tui.IsInteractive
	}

	return &App{
		Config:      deps.Config,
		NewStore:    deps.NewStore,
		NewFinder:   deps.NewFinder,
		Interactive: deps.Interactive,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		configDir:   deps.ConfigDir,
		issueStyle:  tui.GlamourStyle(config.ColorSchemeAuto, deps.Interactive(deps.Stderr)),
		logger:      newLogger(deps.Stderr, false),
	}
}

// loadOptions returns the config load options for the --config flag.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.flags.configPath, ConfigDirPath: a.configDir}
}

// newLogger creates the CLI logger: warnings only, debug output when verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// newCommandFinder runs template through the embedded shell interpreter.
func newCommandFinder(template string, stderr io.Writer, logger *log.Logger) (registry.Finder, error) {
	f := finder.New(template)
	f.Stderr = stderr
	f.Logger = logger
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
