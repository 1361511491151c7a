package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"bookscout/config"
	"bookscout/handlers"
	"bookscout/internal/database"
	"bookscout/services/search"
	"bookscout/utils"
)

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}))
	}

	// The query cache is optional: without a usable database every request
	// behaves as a cache miss.
	var cache search.QueryCache = search.NopCache{}
	if cfg.DatabasePath == "" {
		log.Printf("[main] no database path configured, query caching disabled")
	} else if db, err := database.NewDB(database.Config{DatabasePath: cfg.DatabasePath}); err != nil {
		log.Printf("[main] cache database unavailable, continuing without caching: %v", err)
	} else {
		defer db.Close()
		cache = database.NewSearchCacheRepository(db.Connection())
		log.Printf("[main] query cache backed by %s", cfg.DatabasePath)
	}

	svc := search.NewService(cache)

	router := utils.NewRouter()
	handlers.NewSearchHandler(svc).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[main] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("[main] shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("[main] server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown error: %v", err)
	}
}
