package migrations

import "embed"

// FS embeds SQL migration files for every supported database, one
// directory per dialect. The golang-migrate library reads them via the
// iofs driver when applying migrations.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const Version = 1

// Dialect directories inside FS.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)
