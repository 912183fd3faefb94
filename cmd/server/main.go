package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"story-wall/internal/config"
	"story-wall/internal/server"
	"story-wall/internal/sheets"
	"story-wall/internal/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	creds := sheets.ResolveCredentials(cfg)
	if creds.FromEnv() {
		log.Printf("using service account credentials from environment")
	} else {
		log.Printf("using service account key file: %s", cfg.CredentialsFilePath)
	}

	client := sheets.NewClient(creds, cfg.SpreadsheetID)

	var rec storage.Recorder
	if cfg.SubmissionLogPath != "" {
		fr, err := storage.NewFileRecorder(cfg.SubmissionLogPath)
		if err != nil {
			log.Printf("failed to init submission log: %v", err)
		} else {
			rec = fr
		}
	}

	srv := server.New(client, cfg.SheetRange, rec, cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("server failed: %v", err)
	case sig := <-stop:
		log.Printf("received %v, shutting down", sig)
		if err := srv.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
