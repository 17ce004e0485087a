// Package migrations embeds the SQL migration files so the binary can run
// them without shipping the directory alongside it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
