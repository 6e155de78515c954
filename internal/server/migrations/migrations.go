// Package migrations embeds the goose migrations of the hosted archive
// table.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
