// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"git-superproject/internal/store"
)

const (
	// ColorSchemeAuto picks dark on a terminal and plain text otherwise.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrEmptySetting is returned when a required string setting is blank.
	ErrEmptySetting = errors.New("setting must not be empty")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// EmptySettingError is returned when a required string setting is blank.
	EmptySettingError struct {
		Key string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// RegistryFile is the superproject registry. A leading ~/ is expanded.
		RegistryFile string `json:"registry_file" mapstructure:"registry_file"`
		// Store selects how the registry file is accessed.
		Store store.Kind `json:"store" mapstructure:"store"`
		// GitBinary is the git executable used by the git store.
		GitBinary string `json:"git_binary" mapstructure:"git_binary"`
		// Finder is the shell command used by the edit loop.
		Finder string `json:"finder" mapstructure:"finder"`
		// BackupSuffix names the backup file kept by rebuilds.
		BackupSuffix string `json:"backup_suffix" mapstructure:"backup_suffix"`
		// UI configures output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures output.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light").
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (e *EmptySettingError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Key)
}

func (e *EmptySettingError) Unwrap() error { return ErrEmptySetting }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the sentinel and any field-level sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes,
// and a list of validation errors if it is not.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// IsValid returns whether every field of the Config is valid,
// and a list of validation errors if any are not.
func (c *Config) IsValid() (bool, []error) {
	var errs []error

	for _, setting := range []struct{ key, value string }{
		{"registry_file", c.RegistryFile},
		{"git_binary", c.GitBinary},
		{"finder", c.Finder},
		{"backup_suffix", c.BackupSuffix},
	} {
		if strings.TrimSpace(setting.value) == "" {
			errs = append(errs, &EmptySettingError{Key: setting.key})
		}
	}
	if valid, fieldErrs := c.Store.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		RegistryFile: "~/.git/multi/superprojects.config",
		Store:        store.KindGit,
		GitBinary:    "git",
		Finder:       "fzf --multi --print0",
		BackupSuffix: "~",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}
