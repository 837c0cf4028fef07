package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "DATABASE_DSN", "SQLITE_PATH", "APP_LANG", "OUTPUT_DIR", "NOTIFICATION_BUFFER", "DEV"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Fatalf("expected loopback addr got %s", cfg.Server.Addr())
	}
	if cfg.Database.DSN != "" || cfg.Database.SQLitePath != "invoice-studio.db" {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	if cfg.App.Lang != "en" || cfg.App.OutputDir != "exports" || cfg.App.NotificationBuffer != 50 || cfg.App.Dev {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_LANG", "FR")
	t.Setenv("NOTIFICATION_BUFFER", "not-a-number")
	t.Setenv("DEV", "yes")
	t.Setenv("SERVER_WRITE_TIMEOUT", "5")
	cfg := Load()
	if cfg.Server.Port != "9090" || cfg.Server.WriteTimeout != 5 {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.App.Lang != "fr" {
		t.Fatalf("expected lowercased lang got %s", cfg.App.Lang)
	}
	if cfg.App.NotificationBuffer != 50 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.App.NotificationBuffer)
	}
	if !cfg.App.Dev {
		t.Fatalf("expected dev mode")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"no", false},
		{"0", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FLAG", tt.value)
			if got := getEnvBool("FLAG", false); got != tt.want {
				t.Errorf("getEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
