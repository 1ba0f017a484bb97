package config_test

import (
	"testing"
	"time"

	"github.com/psylines/psy-lines-backend/internal/config"
)

func TestDefault_BindsAllInterfacesOn8080(t *testing.T) {
	cfg := config.Default()
	if cfg.BindAddr != "0.0.0.0:8080" {
		t.Fatalf("expected bind addr 0.0.0.0:8080, got %s", cfg.BindAddr)
	}
}

func TestDefault_TimeoutsArePositive(t *testing.T) {
	cfg := config.Default()
	for name, d := range map[string]time.Duration{
		"ReadHeaderTimeout": cfg.ReadHeaderTimeout,
		"ReadTimeout":       cfg.ReadTimeout,
		"WriteTimeout":      cfg.WriteTimeout,
		"IdleTimeout":       cfg.IdleTimeout,
	} {
		if d <= 0 {
			t.Fatalf("%s must be positive, got %v", name, d)
		}
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := config.Default()
	a.BindAddr = "127.0.0.1:0"
	if b := config.Default(); b.BindAddr != config.DefaultBindAddr {
		t.Fatalf("mutating one Config leaked into another: %s", b.BindAddr)
	}
}
