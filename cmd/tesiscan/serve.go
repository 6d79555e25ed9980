package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmorales/tesiscan/internal/analyzer"
	"github.com/dmorales/tesiscan/internal/api"
	"github.com/dmorales/tesiscan/internal/config"
	"github.com/dmorales/tesiscan/internal/pipeline"
	"github.com/dmorales/tesiscan/internal/schema"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the tesiscan HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}

			sch, err := loadSchema(cfg.SchemaFile)
			if err != nil {
				return err
			}
			an := analyzer.New(sch, cfg.MinIntroWords)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			orch := pipeline.NewOrchestrator(cfg, an, log)
			orch.Start(ctx)

			srv := api.NewServer(orch, an, log, cfg)
			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				orch.Stop()

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting tesiscan", "port", cfg.Port, "schema_file", cfg.SchemaFile)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}

func loadSchema(path string) (schema.Schema, error) {
	if path == "" {
		return schema.Default(), nil
	}
	return schema.Load(path)
}
