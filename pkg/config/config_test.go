package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "ENCRYPTION_KEY",
		"DEFAULT_IMAP_HOST", "DEFAULT_IMAP_PORT", "DEFAULT_IMAP_SECURE",
		"MAX_EMAILS_PER_SYNC", "SYNC_LOOKBACK_DAYS", "SYNC_INTERVAL_MINUTES", "SYNC_USER_DELAY_MS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.IMAPHost != "mail.titan.email" {
		t.Errorf("IMAPHost = %q", cfg.IMAPHost)
	}
	if cfg.IMAPPort != 993 {
		t.Errorf("IMAPPort = %d", cfg.IMAPPort)
	}
	if !cfg.IMAPSecure {
		t.Error("IMAPSecure = false, want true by default")
	}
	if cfg.MaxEmailsPerSync != 50 {
		t.Errorf("MaxEmailsPerSync = %d", cfg.MaxEmailsPerSync)
	}
	if cfg.SyncLookbackDays != 30 {
		t.Errorf("SyncLookbackDays = %d", cfg.SyncLookbackDays)
	}
	if cfg.SyncIntervalMinutes != 5 {
		t.Errorf("SyncIntervalMinutes = %d", cfg.SyncIntervalMinutes)
	}
	if cfg.SyncUserDelay != time.Second {
		t.Errorf("SyncUserDelay = %v", cfg.SyncUserDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_IMAP_SECURE", "false")
	t.Setenv("MAX_EMAILS_PER_SYNC", "10")
	t.Setenv("SYNC_USER_DELAY_MS", "250")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.IMAPSecure {
		t.Error("IMAPSecure = true, want false")
	}
	if cfg.MaxEmailsPerSync != 10 {
		t.Errorf("MaxEmailsPerSync = %d", cfg.MaxEmailsPerSync)
	}
	if cfg.SyncUserDelay != 250*time.Millisecond {
		t.Errorf("SyncUserDelay = %v", cfg.SyncUserDelay)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_EMAILS_PER_SYNC", "lots")

	cfg := Load()

	if cfg.MaxEmailsPerSync != 50 {
		t.Errorf("MaxEmailsPerSync = %d, want default 50", cfg.MaxEmailsPerSync)
	}
}
