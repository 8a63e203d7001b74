package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpapi "github.com/erenfn/climate-compare/internal/api/http"
	"github.com/erenfn/climate-compare/internal/climate"
	"github.com/erenfn/climate-compare/internal/scheduler"
	"github.com/erenfn/climate-compare/internal/store"
)

var serveFlags struct {
	port string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve comparisons and map colors over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.port, "port", "", "Listen port (default PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cities := climate.Cities(cfg.DatasetDir)

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxYears, cfg.StoreMaxAge)

	// Serve mode has no presenters; results go to the store.
	service := climate.NewService()

	// Scheduler that periodically re-runs the batch and stores the results.
	sched := scheduler.New(cities, cfg.DefaultYear, cfg.RefreshInterval, service, memStore)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	app := httpapi.NewApp()
	httpapi.RegisterRoutes(app, service, memStore, cities)

	port := firstNonEmpty(serveFlags.port, cfg.Port)
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()
	log.Printf("INFO: listening on :%s", port)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	return nil
}
