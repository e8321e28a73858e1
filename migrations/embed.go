// Package migrations embeds the goose SQL migration files so the service
// can migrate on startup without a copy of the source tree.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
