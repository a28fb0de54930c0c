// Package migrations embeds the schema files applied at startup and by
// the e2e harness.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
