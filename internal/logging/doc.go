// Package logging owns the ptable debug log file.
//
// The terminal belongs to the TUI while it runs, so diagnostics go to a file
// opened through tea.LogToFile. Setup rotates the file once it grows past
// MaxSize, keeping a single ".old" copy next to it. Tail reads the last lines
// back for the logs subcommand.
//
// Tail returns nil, nil for files that do not exist yet.
package logging
