package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with defaults: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected default env to be dev")
	}
	if cfg.WhatsApp.Phone != "254700060496" {
		t.Fatalf("unexpected default destination %q", cfg.WhatsApp.Phone)
	}
	if cfg.WhatsApp.PayBillNumber != "247247" {
		t.Fatalf("unexpected default pay bill %q", cfg.WhatsApp.PayBillNumber)
	}
}

func TestLoadRejectsNonNumericPhone(t *testing.T) {
	t.Setenv("ADORNETS_WHATSAPP_PHONE", "+254 700 060 496")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric destination phone")
	}
}

func TestSessionDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.IdleTTL <= 0 || cfg.Session.SweepInterval <= 0 {
		t.Fatalf("session durations must be positive: %+v", cfg.Session)
	}
	if cfg.Session.CookieName == "" {
		t.Fatalf("cookie name must not be empty")
	}
}
