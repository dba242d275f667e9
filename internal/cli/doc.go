// Package cli implements the interactive terminal front end of the tracker:
// a REPL that dispatches to the user directory, the session manager, the
// observance grid, the resource catalog, and the admin panel.
package cli
