package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"catalogview/internal/config"
	"catalogview/internal/repositories"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the product listing pages and the view API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), config.Load(v))
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen address, e.g. :8080 (env APP_PORT)")
	serveCmd.Flags().Duration("view-ttl", 0, "discard views idle for longer than this (env VIEW_TTL)")
	if err := v.BindPFlag(config.KeyAppPort, serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag(config.KeyViewTTL, serveCmd.Flags().Lookup("view-ttl")); err != nil {
		panic(err)
	}
}

// serve runs the HTTP server and the idle view sweeper until ctx is done or a signal arrives.
func serve(ctx context.Context, cfg config.Config) error {
	catalog := repositories.NewHTTPProductRepository(repositories.HTTPConfig{
		BaseURL: cfg.CatalogBaseURL,
		Timeout: cfg.FetchTimeout,
	})
	app, viewService := NewApp(cfg, catalog)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting server on port %s (catalog %s)", cfg.AppPort, catalog.ProductsURL())
		return app.Listen(cfg.AppPort)
	})
	g.Go(func() error {
		return viewService.RunSweeper(gctx, cfg.ViewTTL, cfg.SweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Printf("Error during server run: %v", err)
		return err
	}
	log.Println("Server gracefully stopped")
	return nil
}
