// Package migrations embeds the goose SQL migrations so that the binary and
// integration tests apply the same schema without touching the filesystem.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
