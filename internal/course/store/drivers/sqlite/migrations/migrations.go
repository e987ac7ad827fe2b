// Package migrations embeds the course service schema migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
