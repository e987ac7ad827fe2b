// Package migrations embeds the identity service schema migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
