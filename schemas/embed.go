// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the SQL migrations for the MySQL cache backend.
//
//go:embed migrations/*.sql
var Migrations embed.FS
