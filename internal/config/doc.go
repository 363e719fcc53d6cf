// SPDX-License-Identifier: MPL-2.0

// Package config handles bemwalk configuration using Viper with CUE as the file format.
//
// Configuration is read from <config dir>/bemwalk/config.cue ($XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support on macOS, %APPDATA% on Windows), falling back to
// ./bemwalk.cue in the working directory. Files are validated against the embedded
// config_schema.cue before they are merged. BEMWALK_* environment variables, optionally
// seeded from a .env file, override file values.
package config
