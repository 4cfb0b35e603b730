package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "reports" {
		t.Fatalf("output default: got %q", cfg.Output)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Fatalf("log defaults: %+v", cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RFM_DSN", "mysql://u:p@db:3306/pos")
	t.Setenv("RFM_COMPANY_ID", "co-42")
	t.Setenv("RFM_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DSN != "mysql://u:p@db:3306/pos" {
		t.Fatalf("dsn: got %q", cfg.DSN)
	}
	if cfg.CompanyID != "co-42" {
		t.Fatalf("company id: got %q", cfg.CompanyID)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level: got %q", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing dsn")
	}

	cfg.DSN = "mysql://u:p@db:3306/pos"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing company id")
	}

	cfg.CompanyID = "co-1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Cutoff = "30-06-2024"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for malformed cutoff")
	}
}

func TestCutoffTime_Explicit(t *testing.T) {
	cfg := &Config{Cutoff: "2024-06-30"}
	got, err := cfg.CutoffTime(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCutoffTime_DefaultsToToday(t *testing.T) {
	cfg := &Config{}
	now := time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC)
	got, err := cfg.CutoffTime(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
