package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("server port: got %s, want 8080", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 72*time.Hour {
		t.Errorf("jwt expiry: got %s, want 72h", cfg.JWTExpiry)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("allowed origins default must be nil (allow-all), got %v", cfg.AllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("MAX_DB_CONNS", "not-a-number")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("server port: got %s, want 9090", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 2*time.Hour {
		t.Errorf("jwt expiry: got %s, want 2h", cfg.JWTExpiry)
	}
	if cfg.MaxDBConns != 16 {
		t.Errorf("bad int must fall back to default, got %d", cfg.MaxDBConns)
	}
}

func TestParseOrigins(t *testing.T) {
	if got := parseOrigins(""); got != nil {
		t.Errorf("empty input: got %v, want nil", got)
	}

	got := parseOrigins(" https://app.example.com , https://admin.example.com ,")
	want := []string{"https://app.example.com", "https://admin.example.com"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("origin %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
