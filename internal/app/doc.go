// Package app is the composition root for ptable.
//
// Load reads the config file, applies command-line overrides, loads the
// element catalog (embedded, or the file named by catalog_path) and builds the
// grid. Run does the same, points the standard logger at the log file and
// starts the TUI. The CLI subcommands call Load and Filter directly so they
// share the exact filtering the TUI uses.
//
// Records that cannot be placed on the grid are logged at startup and
// otherwise ignored.
package app
