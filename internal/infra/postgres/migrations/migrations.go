package migrations

import "github.com/uptrace/bun/migrate"

// Migrations holds every schema migration; each file registers itself by name.
var Migrations = migrate.NewMigrations()
