// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"log/slog"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE", "FACILITY_COSTS_FILE",
		"VOTER_HASH_SALT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("FACILITY_COSTS_FILE", "/etc/civic/costs.yaml")
	t.Setenv("VOTER_HASH_SALT", "pepper")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.FacilityCostsFile != "/etc/civic/costs.yaml" {
		t.Errorf("unexpected costs file %q", cfg.FacilityCostsFile)
	}
	if cfg.VoterHashSalt != "pepper" {
		t.Errorf("unexpected salt %q", cfg.VoterHashSalt)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected log settings %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-log-format", "text", "-voter-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("CLI should override env: expected text, got %q", cfg.LogFormat)
	}
	if cfg.VoterHashSalt != "s1" {
		t.Errorf("expected salt s1, got %q", cfg.VoterHashSalt)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file:civic.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log defaults %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.FacilityCostsFile != "" || cfg.VoterHashSalt != "" {
		t.Errorf("optional settings should stay empty, got %+v", cfg)
	}

	level, err := cfg.SlogLevel()
	if err != nil || level != slog.LevelInfo {
		t.Errorf("expected info level, got %v (%v)", level, err)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database url", nil, nil},
		{"invalid port env", map[string]string{"PORT": "abc"}, []string{"-d", "x"}},
		{"port out of range", nil, []string{"-d", "x", "-p", "70000"}},
		{"invalid log level", nil, []string{"-d", "x", "-log-level", "loud"}},
		{"invalid log format", map[string]string{"LOG_FORMAT": "xml"}, []string{"-d", "x"}},
		{"unknown flag", nil, []string{"-d", "x", "-admin-salt", "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
