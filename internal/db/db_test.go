package db

import (
	"context"
	"testing"
	"time"
)

// TestNew_PingError ensures that ping failures are propagated
// even when closing the connection succeeds.
func TestNew_PingError(t *testing.T) {
	cfg := MariaDbConfig{
		DSN:             "invalid:invalid@tcp(127.0.0.1:0)/dbname",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Second,
	}
	db, err := New(context.Background(), cfg)
	if err == nil {
		if db != nil {
			db.Close()
		}
		t.Fatalf("expected error, got nil")
	}
}

func TestNew_EmptyDSN(t *testing.T) {
	if _, err := New(context.Background(), MariaDbConfig{}); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}
