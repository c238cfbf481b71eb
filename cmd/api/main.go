package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"museumsouk/internal/config"
	"museumsouk/internal/httpserver"
	"museumsouk/internal/seed"
	catalogsvc "museumsouk/internal/service/catalog"
	cartsvc "museumsouk/internal/service/cart"
	"museumsouk/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	st := store.New()
	seed.Apply(st)
	if cfg.CatalogFile != "" {
		if err := seed.LoadFile(st, cfg.CatalogFile); err != nil {
			logger.Fatalf("load catalog file: %v", err)
		}
		logger.Printf("loaded catalog file %s", cfg.CatalogFile)
	}
	logger.Printf("store seeded: %d museums, %d categories, %d products",
		len(st.Museums()), len(st.Categories()), len(st.Products()))

	catalogService := catalogsvc.New(st)
	cartService := cartsvc.New(st, catalogService)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog: catalogService,
		Cart:    cartService,
	}, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
