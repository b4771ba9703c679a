// Package migrations embeds the SQL schema migrations so the binary can
// bring a fresh database up to date on boot.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
