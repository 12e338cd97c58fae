package configs

import "time"

// Redis configures the shared reference-data cache. When Enabled is false a
// process local cache is used instead.
type Redis struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Addr     string        `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	PoolSize int           `env:"POOL_SIZE" envDefault:"20"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}
