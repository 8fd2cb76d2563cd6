package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Coderush2004/railway-desk/internal/config"
	transporthttp "github.com/Coderush2004/railway-desk/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command: the booking API over HTTP.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the booking API over HTTP",
		Long: `Serve the in-memory catalog and booking ledger as a JSON API.

The catalog is seeded at startup and lives only for the lifetime of the
process. PORT and CORS_ORIGINS are read from the environment (or a .env
file in the working directory or a parent).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, rootOpts)
		},
	}
	return cmd
}

func runServer(cmd *cobra.Command, rootOpts *RootOptions) error {
	logger := newLogger(rootOpts.Verbose)
	cfg := config.Load(logger)

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	catalog, bookings, err := buildServices(startupCtx, rootOpts.SeedPath)
	if err != nil {
		return err
	}

	handler := transporthttp.NewHandler(catalog, bookings, cfg.CORSOrigins, logger)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("api listening", "port", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	stopCtx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
	return nil
}
