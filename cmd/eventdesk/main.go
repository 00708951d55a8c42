package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ghiac/eventdesk"
	"github.com/ghiac/eventdesk/config"
	"github.com/ghiac/eventdesk/log"
	"github.com/ghiac/eventdesk/server"
	"github.com/ghiac/eventdesk/store"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", os.Getenv("EVENTDESK_CONFIG"), "Path to a YAML config file (default: EVENTDESK_CONFIG)")
	databaseURL := flag.String("database-url", "", "Database URL (default: DATABASE_URL or sqlite:///events.db)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if *databaseURL != "" {
		cfg.DatabaseURL = *databaseURL
	}

	log.Log.SetLevel(log.ParseLevel(cfg.LogLevel))
	if cfg.Features.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Log.Infof("=== Event Desk %s ===", eventdesk.Version())
	log.Log.Infof("Database: %s", store.Redact(cfg.DatabaseURL))
	log.Log.Infof("Stats page enabled: %v", cfg.Features.StatsEnabled)
	if cfg.UsesDefaultSecret() {
		log.Log.Warnf("SECRET_KEY is not set; sessions are signed with the development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Log.Errorf("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	ed := eventdesk.New(cfg, st)
	srv := server.NewServer(cfg, ed.Handler())
	if err := srv.Run(ctx); err != nil {
		log.Log.Errorf("HTTP server failed: %v", err)
		os.Exit(1)
	}
}
