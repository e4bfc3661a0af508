// Package config loads and watches the editor configuration.
//
// Configuration lives in a single TOML or YAML file; the format is picked
// by extension. A missing file is not an error, it just yields defaults.
// Environment variables prefixed VIMDOWN_ overlay whatever the file
// provides, and a Watcher can reload the file on change for live tuning.
package config
