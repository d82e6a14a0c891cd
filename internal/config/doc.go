// Package config loads the ptable TOML configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ptable/config.toml
//  3. If the file doesn't exist, fall back to Default
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	theme = "Kanagawa"
//	catalog_path = "~/data/elements.toml"
//	log_path = "~/.local/state/ptable/ptable.log"
//	mouse = true
//
// Every field is optional. Tilde expansion is performed on paths. Setting
// log_path to "-" disables the log file.
//
// Missing config files are not an error.
package config
