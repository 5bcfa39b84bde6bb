package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/pricediff/config"
	"github.com/guttosm/pricediff/internal/app"
	"github.com/guttosm/pricediff/internal/logger"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API over the comparison view.

Unless LOAD_ON_START=false the comparison is fetched once while the server
starts. SIGINT or SIGTERM shut the server down gracefully.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port for the API server (default: SERVER_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	if port == "" {
		port = config.AppConfig.Server.Port
	}

	logger.L().Info().Msg("starting API server")

	router, svc, cleanup, err := app.InitializeApp()
	if err != nil {
		return err
	}

	var load func(ctx context.Context)
	if config.AppConfig.Backend.LoadOnStart {
		load = func(ctx context.Context) { svc.Reload(ctx) }
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, newServer(router, port), load, cleanup)
}

// newServer builds the HTTP server for the given router and port.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
//
// Behavior:
//   - Listens in one goroutine; a listen failure cancels the group.
//   - Runs load (if any) alongside, so the first request may see loading=true.
//   - On cancellation, shuts the server down with a 10s deadline and calls cleanup.
func run(ctx context.Context, server *http.Server, load func(ctx context.Context), cleanup func()) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if load != nil {
		g.Go(func() error {
			load(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return gracefulShutdown(server, cleanup)
	})

	return g.Wait()
}

// gracefulShutdown terminates the HTTP server and releases resources.
//
// Parameters:
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., the Redis pool).
func gracefulShutdown(server *http.Server, cleanup func()) error {
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	if cleanup != nil {
		cleanup()
	}
	logger.L().Info().Msg("server exited gracefully")
	return err
}
