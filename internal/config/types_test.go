// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"git-superproject/internal/store"
)

func runtimeIsWindowsOrDarwin() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if valid, errs := c.IsValid(); !valid {
			t.Errorf("ColorScheme(%q).IsValid() = false, %v", c, errs)
		}
	}

	valid, errs := ColorScheme("neon").IsValid()
	if valid || len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorScheme) {
		t.Errorf("ColorScheme(neon).IsValid() = %v, %v", valid, errs)
	}
	var csErr *InvalidColorSchemeError
	if !errors.As(errs[0], &csErr) || csErr.Value != "neon" {
		t.Errorf("error = %v, want *InvalidColorSchemeError{neon}", errs[0])
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Store = store.Kind("sqlite")
	cfg.Finder = "  "
	cfg.UI.ColorScheme = "neon"

	valid, errs := cfg.IsValid()
	if valid || len(errs) != 1 {
		t.Fatalf("IsValid() = %v, %v, want one InvalidConfigError", valid, errs)
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("error = %T, want *InvalidConfigError", errs[0])
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("FieldErrors = %v, want 3", cfgErr.FieldErrors)
	}
	for _, sentinel := range []error{ErrInvalidConfig, ErrEmptySetting, store.ErrInvalidKind, ErrInvalidColorScheme} {
		if !errors.Is(errs[0], sentinel) {
			t.Errorf("errors.Is(%v, %v) = false", errs[0], sentinel)
		}
	}

	var settingErr *EmptySettingError
	if !errors.As(errs[0], &settingErr) || settingErr.Key != "finder" {
		t.Errorf("EmptySettingError = %v, want key finder", settingErr)
	}
}

func TestGenerateCUE(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UI.Verbose = true
	got := GenerateCUE(cfg)

	for _, want := range []string{
		`registry_file: "~/.git/multi/superprojects.config"`,
		`store:         "git"`,
		`finder:        "fzf --multi --print0"`,
		"\tcolor_scheme: \"auto\"\n",
		"\tverbose:      true\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateCUE() = %q, missing %q", got, want)
		}
	}
}
