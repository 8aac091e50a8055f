package configs

// Redis holds configuration for the fraud signal store. The store is best
// effort; an unreachable Redis degrades fraud signals rather than failing
// interaction writes.
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	// Password authenticates against the server when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical database.
	DB int `env:"DB" envDefault:"0"`
}
