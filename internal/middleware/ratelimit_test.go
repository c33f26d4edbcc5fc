package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterConsumesTokens(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("request over the limit should be blocked")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if !rl.allow("10.0.0.2") {
		t.Fatal("second client has its own bucket")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("first client is out of tokens")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.allow("10.0.0.1") {
		t.Fatal("bucket should have refilled")
	}
}
