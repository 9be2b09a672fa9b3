// Package config loads, normalizes, and validates the gavel configuration
// file. Configuration lives in TOML at ~/.config/gavel/config.toml (or a
// gavel.toml beside the working directory), with repository defaults applied
// for anything the file omits, including the standard encoder roster.
package config
