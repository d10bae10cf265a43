// Package migrations embeds the goose SQL migrations for the slot store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
