package configs

import (
	"fmt"
	"strings"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store selects where economy state lives. The memory driver loses all
// state on exit; sqlite keeps it in a single file at SQLitePath.
type Store struct {
	Driver     string `env:"DRIVER" envDefault:"memory"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"coinloop.db"`
}

// NormalizedDriver validates Driver and returns it in lower case.
func (c Store) NormalizedDriver() (string, error) {
	switch d := strings.ToLower(strings.TrimSpace(c.Driver)); d {
	case DriverMemory, DriverPostgres, DriverSQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unknown store driver %q", c.Driver)
	}
}
