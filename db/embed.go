// Package db embute as migrações SQL do esquema.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
