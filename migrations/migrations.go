// Package migrations embeds the goose migration files so the binary can
// bring the schema up on startup without shipping loose SQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
