// Package migrations embeds the goose SQL migrations applied to the
// volcano database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
