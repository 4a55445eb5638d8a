// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the platform configuration directory
// ($XDG_CONFIG_HOME/git-superproject on Linux, ~/Library/Application Support/git-superproject
// on macOS, %APPDATA%\git-superproject on Windows), or from the current directory when
// none exists there. Every key can be overridden with a SUPERPROJECT_ environment variable,
// dots replaced by underscores (SUPERPROJECT_UI_VERBOSE=true).
//
// Files are validated against the embedded config_schema.cue before they are merged
// over the defaults.
package config
