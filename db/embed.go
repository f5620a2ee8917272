// Package db embeds the SQL migrations so binaries can run them without a checkout.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
