package config

import "time"

// TestConfig returns a config suitable for tests: short timeouts and no
// logging or real database path.
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Database.Path = "feeds.json"
	cfg.Feed.HTTPTimeout = 5 * time.Second
	cfg.Feed.UserAgent = "feedterm-test/1.0"
	return cfg
}
