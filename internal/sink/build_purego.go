//go:build !sqlite_cgo
// +build !sqlite_cgo

package sink

// Compiled by default: a pure Go SQLite implementation, no C compiler
// required, cross-compiles everywhere.
//
// Driver used: modernc.org/sqlite

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite"

	// BuildMode describes the current build configuration
	BuildMode = "purego"
)
