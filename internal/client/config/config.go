package config

import "time"

// Config holds runtime settings for the authdemo client front ends.
//
// Fields:
//   - RecordStoreURL: base URL of the record store REST API.
//   - LocalDSN: SQLite file holding the persisted session.
//   - SigningKey: HS256 key for session tokens. Empty means a random key
//     generated once and kept in local storage.
//   - WebAddr: listen address of the web front end.
//   - RequestTimeout: per-request cap for record store calls; zero is none.
//   - OnlineCheckInterval: how often the REPL checks record store reachability.
type Config struct {
	RecordStoreURL      string
	LocalDSN            string
	SigningKey          string
	WebAddr             string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.RecordStoreURL = "http://localhost:3001"
	c.LocalDSN = "session.db"
	c.SigningKey = ""
	c.WebAddr = "127.0.0.1:3000"
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig applies defaults, then JSON (if -c/-config is given), then
// command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
