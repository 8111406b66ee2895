package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PRICE_BRACKET", "DATA_SOURCE", "REPORT_CHAT_ID", "TOKEN", "DB_PORT", "DB_NAME", "AUTO_MIGRATE"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.Bracket != "High" {
		t.Errorf("Report.Bracket = %q, want High", cfg.Report.Bracket)
	}
	if cfg.Report.Source != SourceStatic {
		t.Errorf("Report.Source = %q, want %q", cfg.Report.Source, SourceStatic)
	}
	if cfg.DB.Port != 5432 {
		t.Errorf("DB.Port = %d, want 5432", cfg.DB.Port)
	}
	if cfg.Telegram.Enabled() {
		t.Error("Telegram should be disabled without token and chat id")
	}
	if cfg.DB.AutoMigrate {
		t.Error("AutoMigrate should be off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRICE_BRACKET", "Low")
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("TOKEN", "123:abc")
	t.Setenv("REPORT_CHAT_ID", "-100200300")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("AUTO_MIGRATE", "TRUE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.Bracket != "Low" || cfg.Report.Source != SourcePostgres {
		t.Errorf("Report = %+v", cfg.Report)
	}
	if cfg.Telegram.ReportChatID != -100200300 {
		t.Errorf("ReportChatID = %d, want -100200300", cfg.Telegram.ReportChatID)
	}
	if !cfg.Telegram.Enabled() {
		t.Error("Telegram should be enabled")
	}
	if cfg.DB.Port != 6543 {
		t.Errorf("DB.Port = %d, want 6543", cfg.DB.Port)
	}
	if !cfg.DB.AutoMigrate {
		t.Error("AUTO_MIGRATE=TRUE should enable AutoMigrate")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad chat id", "REPORT_CHAT_ID", "not-a-number"},
		{"unknown source", "DATA_SOURCE", "mysql"},
		{"bad db port", "DB_PORT", "54x2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REPORT_CHAT_ID", "")
			t.Setenv("DATA_SOURCE", "")
			t.Setenv("DB_PORT", "")
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load with %s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}
