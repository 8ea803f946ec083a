package configs

import "time"

// Redis configures the campaign cache. An empty Address disables it and
// every match reads the campaign set from PostgreSQL.
type Redis struct {
	Address  string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	Key      string        `env:"KEY" envDefault:"movo-ads:campaigns"`
	TTL      time.Duration `env:"TTL" envDefault:"30s"`
}

// Enabled reports whether a cache server was configured.
func (c Redis) Enabled() bool { return c.Address != "" }
