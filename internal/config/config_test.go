package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load([]string{"-d", "postgres://localhost/loandesk"}, noEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("run address = %q", cfg.RunAddress)
	}
	if cfg.AuthScheme != "jwt" {
		t.Errorf("auth scheme = %q", cfg.AuthScheme)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Errorf("token ttl = %s", cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("shutdown timeout = %s", cfg.ShutdownTimeout)
	}
	if cfg.AdminLogin != "" || cfg.AdminPassword != "" {
		t.Error("admin bootstrap must be off by default")
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, noEnv); err == nil {
		t.Fatal("expected error when database URI is missing")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"RUN_ADDRESS":      ":9999",
		"DATABASE_URI":     "postgres://env/db",
		"JWT_SECRET":       "env-secret",
		"AUTH_SCHEME":      "hmac",
		"TOKEN_TTL":        "2h",
		"SHUTDOWN_TIMEOUT": "30s",
		"ADMIN_LOGIN":      "root",
		"ADMIN_PASSWORD":   "rootpw",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != ":9999" || cfg.DatabaseURI != "postgres://env/db" {
		t.Errorf("unexpected addresses %+v", cfg)
	}
	if cfg.JWTSecret != "env-secret" || cfg.AuthScheme != "hmac" {
		t.Errorf("unexpected auth config %+v", cfg)
	}
	if cfg.TokenTTL != 2*time.Hour || cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("unexpected durations %+v", cfg)
	}
	if cfg.AdminLogin != "root" || cfg.AdminPassword != "rootpw" {
		t.Errorf("unexpected admin bootstrap %+v", cfg)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	args := []string{
		"-a", ":7070",
		"-d", "postgres://flag/db",
		"-jwt-secret", "flag-secret",
		"-auth-scheme", "hmac",
		"-token-ttl", "45m",
		"-shutdown-timeout", "5s",
		"-admin-login", "boss",
		"-admin-password", "bosspw",
	}
	cfg, err := load(args, envMap(map[string]string{
		"RUN_ADDRESS":  ":9999",
		"DATABASE_URI": "postgres://env/db",
		"AUTH_SCHEME":  "jwt",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != ":7070" || cfg.DatabaseURI != "postgres://flag/db" {
		t.Errorf("flags must win over env, got %+v", cfg)
	}
	if cfg.JWTSecret != "flag-secret" || cfg.AuthScheme != "hmac" {
		t.Errorf("unexpected auth config %+v", cfg)
	}
	if cfg.TokenTTL != 45*time.Minute || cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected durations %+v", cfg)
	}
	if cfg.AdminLogin != "boss" || cfg.AdminPassword != "bosspw" {
		t.Errorf("unexpected admin bootstrap %+v", cfg)
	}
}

func TestLoadSecretFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":    "postgres://env/db",
		"JWT_SECRET":      "env-secret",
		"JWT_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("secret = %q, want file content", cfg.JWTSecret)
	}
}

func TestLoadSecretFileMissing(t *testing.T) {
	if _, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":    "postgres://env/db",
		"JWT_SECRET_FILE": "/nonexistent/secret",
	})); err == nil {
		t.Fatal("expected error for unreadable secret file")
	}
}

func TestLoadRejectsUnknownAuthScheme(t *testing.T) {
	if _, err := load([]string{"-d", "postgres://x", "-auth-scheme", "paseto"}, noEnv); err == nil {
		t.Fatal("expected error for unknown auth scheme")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	if _, err := load([]string{"-d", "postgres://x", "-token-ttl", "soon"}, noEnv); err == nil {
		t.Fatal("expected error for invalid token ttl")
	}
}

func TestLoadNonPositiveDurationsFallBack(t *testing.T) {
	cfg, err := load([]string{"-d", "postgres://x", "-token-ttl", "-1h", "-shutdown-timeout", "0s"}, noEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != defaultTokenTTL || cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("durations = %s/%s, want defaults", cfg.TokenTTL, cfg.ShutdownTimeout)
	}
}
