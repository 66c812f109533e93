package coffee

import (
	"embed"

	"github.com/klwxsrx/random-coffee-bot/pkg/sql"
)

var Migrations = sql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
