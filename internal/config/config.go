package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	// Target spreadsheet. An empty id is not fatal at startup: the first
	// append simply fails against the remote API.
	SpreadsheetID string `env:"GOOGLE_SHEET_ID"`
	SheetRange    string `env:"GOOGLE_SHEET_RANGE" envDefault:"Sheet1!A:D"`

	// Discrete service account fields. All six must be set together,
	// otherwise the key file below is used instead.
	SAType         string `env:"GOOGLE_SA_TYPE"`
	SAProjectID    string `env:"GOOGLE_SA_PROJECT_ID"`
	SAPrivateKeyID string `env:"GOOGLE_SA_PRIVATE_KEY_ID"`
	SAPrivateKey   string `env:"GOOGLE_SA_PRIVATE_KEY"`
	SAClientEmail  string `env:"GOOGLE_SA_CLIENT_EMAIL"`
	SAClientID     string `env:"GOOGLE_SA_CLIENT_ID"`

	CredentialsFilePath string `env:"GOOGLE_APPLICATION_CREDENTIALS" envDefault:"credentials.json"`

	// Storage
	SubmissionLogPath string `env:"SUBMISSION_LOG_PATH"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
