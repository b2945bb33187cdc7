package configs

import "time"

// Economy holds tunables of the economy engine.
type Economy struct {
	// NotificationTTL is the auto-dismiss interval attached to every
	// notification.
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL" envDefault:"3s"`
	// SeedFile points to a TOML or YAML file with demo users, tasks and
	// campaigns. Empty uses the built-in demo data.
	SeedFile string `env:"SEED_FILE"`
	// SeedOnStart seeds the store when the server starts.
	SeedOnStart bool `env:"SEED_ON_START" envDefault:"false"`
}
