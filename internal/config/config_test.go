package config

import (
	"os"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "GOOGLE_SHEET_RANGE", "GOOGLE_APPLICATION_CREDENTIALS", "SUBMISSION_LOG_PATH"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := New()
	if cfg.Port != 3000 {
		t.Errorf("default port: got %d, want 3000", cfg.Port)
	}
	if cfg.SheetRange != "Sheet1!A:D" {
		t.Errorf("default range: got %q", cfg.SheetRange)
	}
	if cfg.CredentialsFilePath != "credentials.json" {
		t.Errorf("default credentials path: got %q", cfg.CredentialsFilePath)
	}
	if cfg.SubmissionLogPath != "" {
		t.Errorf("submission log should be disabled by default, got %q", cfg.SubmissionLogPath)
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GOOGLE_SHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_SHEET_RANGE", "回應!A:D")

	cfg := New()
	if cfg.Port != 8080 {
		t.Errorf("port: got %d, want 8080", cfg.Port)
	}
	if cfg.SpreadsheetID != "sheet-123" {
		t.Errorf("spreadsheet id: got %q", cfg.SpreadsheetID)
	}
	if cfg.SheetRange != "回應!A:D" {
		t.Errorf("range: got %q", cfg.SheetRange)
	}
}
