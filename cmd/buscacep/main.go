package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/buscacep/internal/config"
	"github.com/jask/buscacep/internal/database"
	"github.com/jask/buscacep/internal/database/repository"
	"github.com/jask/buscacep/internal/logging"
	"github.com/jask/buscacep/internal/service"
	"github.com/jask/buscacep/internal/telemetry"
	"github.com/jask/buscacep/internal/testdata"
	"github.com/jask/buscacep/internal/tui"
	"github.com/jask/buscacep/internal/viacep"
)

func main() {
	seed := flag.Int("seed", 0, "insert N sample lookups into the history and exit")
	startupCheck := flag.Bool("startup-check", false, "print startup status and exit")
	flag.Parse()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logFile, err := logging.Open(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()

	shutdown, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	lookups := &service.LookupService{
		Client: viacep.New(cfg.API.BaseURL, viacep.WithTimeout(cfg.API.Timeout)),
		Log:    logger,
	}
	services := tui.Services{Lookup: lookups}

	if cfg.HistoryEnabled() {
		db := openHistory(cfg.Database.Path)
		defer db.Close()
		lookups.History = repository.NewLookupRepo(db)
		services.Maintenance = &service.MaintenanceService{DB: db}
	}

	if *startupCheck {
		if err := runStartupCheck(ctx, os.Stdout, cfg, lookups); err != nil {
			os.Exit(1)
		}
		return
	}
	if *seed > 0 {
		if lookups.History == nil {
			fmt.Fprintln(os.Stderr, "history is disabled")
			os.Exit(2)
		}
		if _, err := testdata.Seed(ctx, lookups.History, *seed, time.Now().UnixNano(), database.Now()); err != nil {
			log.Fatalf("seed: %v", err)
		}
		fmt.Printf("inserted %d sample lookups\n", *seed)
		return
	}

	logger.Info("starting", "base_url", cfg.API.BaseURL, "history", cfg.HistoryEnabled())

	p := tea.NewProgram(tui.New(ctx, cfg, services, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openHistory(path string) *sql.DB {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := database.RunMigrations(path); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return db
}

func runStartupCheck(ctx context.Context, w io.Writer, cfg config.Config, lookups *service.LookupService) error {
	fmt.Fprintf(w, "api:      %s\n", cfg.API.BaseURL)
	fmt.Fprintf(w, "log:      %s (%s)\n", cfg.Log.Path, cfg.Log.Level)
	if !cfg.HistoryEnabled() {
		fmt.Fprintln(w, "history:  disabled")
		return nil
	}
	n, err := lookups.HistorySize(ctx)
	if err != nil {
		fmt.Fprintf(w, "history:  %s (error: %v)\n", cfg.Database.Path, err)
		return err
	}
	fmt.Fprintf(w, "history:  %s (%d lookups)\n", cfg.Database.Path, n)
	return nil
}
