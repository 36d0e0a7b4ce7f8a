package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(newViper())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != "postgres" {
		t.Fatalf("expected postgres driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Redis.AvailabilityTTL != 5*time.Second {
		t.Fatalf("expected 5s availability ttl, got %v", cfg.Redis.AvailabilityTTL)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "localhost:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.Kafka.Brokers)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("ARCHIVE_INTERVAL", "0s")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")

	cfg, err := load(newViper())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %q", cfg.Storage.Driver)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.Kafka.Brokers)
	}
	if cfg.Archive.Interval != 0 {
		t.Fatalf("expected archiver disabled, got %v", cfg.Archive.Interval)
	}
	if cfg.Postgres.MaxOpenConns != 25 {
		t.Fatalf("expected 25 open conns, got %d", cfg.Postgres.MaxOpenConns)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.yaml")
	if err := os.WriteFile(path, []byte("HTTP_ADDR: \":9999\"\nDOCUMENTS_DRIVER: s3\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := load(newViper())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.HTTPAddr != ":9999" {
		t.Fatalf("expected :9999, got %q", cfg.Server.HTTPAddr)
	}
	if cfg.Documents.Driver != "s3" {
		t.Fatalf("expected s3 documents driver, got %q", cfg.Documents.Driver)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := load(newViper()); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
