// Package db embeds the SQL migrations so the binary and the tests apply
// exactly the same schema.
package db

import "embed"

// Migrations holds the *.up.sql and *.down.sql files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
