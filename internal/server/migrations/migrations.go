// Package migrations embeds the goose migrations that create and seed the
// demo record set on SQL-backed stores.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
