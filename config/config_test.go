package config

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Jordo960/VibePulse/storage"
)

func TestParseEnvDefaults(t *testing.T) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Store != StoreBolt {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.SyncDelay != 1500*time.Millisecond || cfg.ToastTTL != 3*time.Second {
		t.Fatalf("expected 1.5s sync delay and 3s toasts, got %v/%v", cfg.SyncDelay, cfg.ToastTTL)
	}
	if cfg.PersistLog {
		t.Fatal("expected log persistence off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("VIBEPULSE_STORE", "memory")
	t.Setenv("VIBEPULSE_PERSIST_LOG", "true")
	t.Setenv("VIBEPULSE_SYNC_DELAY", "10ms")
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Store != StoreMemory || !cfg.PersistLog || cfg.SyncDelay != 10*time.Millisecond {
		t.Fatalf("expected overrides applied, got %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("VIBEPULSE_TOAST_TTL", "soon")
	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	bad := cfg
	bad.Store = "redis"
	if bad.Validate() == nil {
		t.Fatal("expected unknown store to fail")
	}
	bad = cfg
	bad.SyncFailureRate = 2
	if bad.Validate() == nil {
		t.Fatal("expected failure rate above 1 to fail")
	}
	bad = cfg
	bad.DefaultTheme = "sepia"
	if bad.Validate() == nil {
		t.Fatal("expected unknown theme to fail")
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5432"}
	want := "host=db user=u password=p dbname=n port=5432 sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	store, err := OpenStore(ctx, Config{Store: StoreMemory})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := store.(*storage.Memory); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}

	store, err = OpenStore(ctx, Config{Store: StoreBolt, BoltPath: filepath.Join(t.TempDir(), "vp.db")})
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	defer store.Close()

	if s, err := OpenStore(ctx, Config{Store: StoreBolt, BoltPath: ""}); err == nil || s != nil {
		t.Fatalf("expected bolt without a path to fail with a nil store, got %v %v", s, err)
	}
	if _, err := OpenStore(ctx, Config{Store: StoreS3}); err == nil {
		t.Fatal("expected s3 without a region to fail")
	}
}
