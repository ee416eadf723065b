// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ariebrainware/geresapi/certificate"
	"github.com/ariebrainware/geresapi/config"
	"github.com/ariebrainware/geresapi/database"
	"github.com/ariebrainware/geresapi/util"
)

const shutdownTimeout = 10 * time.Second

// @title       GERESAPI
// @version     1.0.0
// @description API para consultas a la base de datos de GERESA.
// @BasePath    /
func main() {
	rootCmd := &cobra.Command{
		Use:          "geresapi",
		Short:        "Patient and visit lookups over the GERESA database, plus certificate rendering",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(pingCmd())
	rootCmd.AddCommand(certificadoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	logger, err := util.NewLogger(cfg.LogLevel, cfg.AppEnv, cfg.AppName)
	if err != nil {
		log.Printf("failed to build logger, falling back to nop: %v", err)
		return zap.NewNop()
	}
	return logger
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDatabase()
	provider := database.NewProvider(ctx, db, err, logger)
	defer func() {
		if err := provider.Close(); err != nil {
			logger.Warn("failed to close database engine", zap.Error(err))
		}
	}()

	if _, err := config.ConnectRedis(); err != nil {
		logger.Warn("redis unavailable, certificate rate limit disabled", zap.Error(err))
	}

	renderer := certificate.NewRenderer(cfg.CertTemplatePath, cfg.CertCity)
	router := setupRouter(cfg, provider, renderer, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured database is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDatabase()
			if err != nil {
				return fmt.Errorf("failed to create database engine: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := database.Probe(cmd.Context(), db); err != nil {
				return fmt.Errorf("database probe failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "database reachable (%s)\n", db.Dialector.Name())
			return nil
		},
	}
}

func certificadoCmd() *cobra.Command {
	var (
		req    certificate.Request
		output string
	)
	cmd := &cobra.Command{
		Use:   "certificado",
		Short: "Render a certificate to a file using the configured template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			renderer := certificate.NewRenderer(cfg.CertTemplatePath, cfg.CertCity)

			pdf, err := renderer.Render(req)
			if err != nil {
				return err
			}
			if output == "" {
				output = req.Normalize().Filename()
			}
			if err := os.WriteFile(output, pdf, 0o644); err != nil {
				return fmt.Errorf("write certificate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "certificate written to %s\n", output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Nombre, "nombre", "", "recipient name")
	flags.StringVar(&req.Calidad, "calidad", "", "participation capacity")
	flags.StringVar(&req.Fecha, "fecha", "", "event date, dd-mm-yyyy")
	flags.StringVar(&req.Folio, "folio", "", "registry folio")
	flags.StringVar(&req.Numero, "numero", "", "registry number")
	flags.StringVarP(&output, "output", "o", "", "output file (default certificado_<calidad>_<numero>.pdf)")
	for _, name := range []string{"nombre", "calidad", "fecha", "folio", "numero"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
