package config

import "time"

// Config holds the runtime settings of the health server.
// The service takes no input at startup, so every value is fixed;
// tests build their own Config to bind an ephemeral port.
type Config struct {
	// Server
	BindAddr          string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

const (
	DefaultBindAddr = "0.0.0.0:8080"
)

func Default() *Config {
	return &Config{
		BindAddr:          DefaultBindAddr,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
