// Package config loads, normalizes, and validates leadstage configuration.
//
// Configuration lives in a TOML file (default ~/.config/leadstage/config.toml,
// with a project-local leadstage.toml fallback for development). Load layers
// the file over Default(), expands tilde paths, fills missing values, and
// rejects configurations the daemon cannot run with. A sample config with
// commented defaults is embedded for 'leadstage config init'.
package config
