package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":2888" || cfg.MoveLimit != 1000 || cfg.Strategy != "random" || !cfg.OpenBrowser {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DRAUGHTS_ADDR", "127.0.0.1:9000")
	t.Setenv("DRAUGHTS_MOVE_LIMIT", "50")
	t.Setenv("DRAUGHTS_OPEN_BROWSER", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.MoveLimit != 50 || cfg.OpenBrowser {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DRAUGHTS_MOVE_LIMIT", "lots")
	if _, err := Load(); err == nil {
		t.Fatalf("non-numeric limit should fail")
	}
	t.Setenv("DRAUGHTS_MOVE_LIMIT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("zero limit should fail")
	}
}
