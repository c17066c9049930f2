// Package config handles configuration for the mock record store,
// including defaults, environment, JSON overlay and command-line flags.
package config

// Config holds runtime settings for the record store.
//
// Fields:
//   - EndpointAddr: bind address of the REST endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps records in memory.
//   - SeedFile: optional JSON array of {name,email,password} loaded at start.
type Config struct {
	EndpointAddr string `env:"AUTHDEMO_ENDPOINT_ADDR"`
	DatabaseDSN  string `env:"AUTHDEMO_DATABASE_DSN"`
	SeedFile     string `env:"AUTHDEMO_SEED_FILE"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3001"
	c.DatabaseDSN = ""
	c.SeedFile = ""
}

// LoadConfig applies defaults, then environment variables, then an optional
// JSON file and finally command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
