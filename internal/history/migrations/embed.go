package migrations

import "embed"

// FS contains the embedded SQLite migrations for the history database.
//
//go:embed *.sql
var FS embed.FS
