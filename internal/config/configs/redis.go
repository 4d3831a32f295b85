package configs

// Redis holds configuration for the local override cache. Addr accepts a
// redis:// URL or a bare host:port. The instance should run with
// persistence enabled so overrides survive restarts.
type Redis struct {
	// Addr is the Redis connection target. Defaults to a local instance.
	Addr string `env:"ADDRESS" envDefault:"redis://localhost:6379/0"`
}
