package main

import (
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/app"
)

func TestSetupLogger(t *testing.T) {
	prevFormatter := log.StandardLogger().Formatter
	prevLevel := log.GetLevel()
	t.Cleanup(func() {
		log.SetFormatter(prevFormatter)
		log.SetLevel(prevLevel)
	})

	cfg := app.DefaultConfig()
	cfg.LogFormat = app.LogFormatJSON
	cfg.LogLevel = "debug"
	if err := setupLogger(cfg); err != nil {
		t.Fatalf("setupLogger failed: %v", err)
	}
	if _, ok := log.StandardLogger().Formatter.(*log.JSONFormatter); !ok {
		t.Fatalf("expected json formatter, got %T", log.StandardLogger().Formatter)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %s", log.GetLevel())
	}

	cfg.LogFormat = app.LogFormatText
	cfg.LogLevel = "loud"
	if err := setupLogger(cfg); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, ok := log.StandardLogger().Formatter.(*log.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", log.StandardLogger().Formatter)
	}
	if log.GetLevel() != log.InfoLevel {
		t.Fatalf("expected fallback to info level, got %s", log.GetLevel())
	}
}
