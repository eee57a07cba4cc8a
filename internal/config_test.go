package internal

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestSQLiteConfig_EmptyPath(t *testing.T) {
	cfg := SQLiteConfig{Path: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("empty sqlite path should fail validation")
	}
}

func TestCORSConfig_EmptyOrigins(t *testing.T) {
	cfg := CORSConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty origin list should fail validation")
	}
}

func TestCORSConfig_BlankOriginRejected(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"http://localhost", ""}}
	if err := cfg.Validate(); err == nil {
		t.Error("blank origin entry should fail validation")
	}
}

func TestFullConfig_ValidationPropagates(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SQLite.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch sqlite error")
	}
}
