package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("db driver = %q, want %q", cfg.Database.Driver, "mysql")
	}
	if cfg.JWT.ExpireTime != 24*time.Hour {
		t.Errorf("jwt expire = %v, want 24h", cfg.JWT.ExpireTime)
	}
	if cfg.WebSocket.PingInterval <= 0 || cfg.WebSocket.ReadTimeout <= cfg.WebSocket.PingInterval {
		t.Errorf("websocket timeouts invalid: ping=%v read=%v",
			cfg.WebSocket.PingInterval, cfg.WebSocket.ReadTimeout)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRE_TIME", "2h")
	t.Setenv("REDIS_DB", "3")

	cfg := getDefaultConfig()
	overrideWithEnvVars(cfg)

	if cfg.Server.Port != "9090" {
		t.Errorf("server port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("db host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("jwt secret = %q, want %q", cfg.JWT.Secret, "env-secret")
	}
	if cfg.JWT.ExpireTime != 2*time.Hour {
		t.Errorf("jwt expire = %v, want 2h", cfg.JWT.ExpireTime)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("redis db = %d, want 3", cfg.Redis.DB)
	}
}

func TestEnvOverrideIgnoresInvalid(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_EXPIRE_TIME", "soon")

	cfg := getDefaultConfig()
	overrideWithEnvVars(cfg)

	if cfg.Database.Port != 3306 {
		t.Errorf("db port = %d, want default 3306", cfg.Database.Port)
	}
	if cfg.JWT.ExpireTime != 24*time.Hour {
		t.Errorf("jwt expire = %v, want default 24h", cfg.JWT.ExpireTime)
	}
}
