package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nzyazin/fincalc/internal/core/logger"
	"github.com/Nzyazin/fincalc/internal/server"
	"github.com/Nzyazin/fincalc/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, cleanup, err := logger.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	srv, err := server.NewServer(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to create server", logger.ErrorField("error", err))
		return
	}

	go func() {
		log.Info("Starting server",
			logger.StringField("addr", cfg.HTTP.Addr),
			logger.BoolField("tls", cfg.HTTP.TLSEnabled()),
			logger.StringField("cache", cfg.Cache.Backend),
		)

		var err error
		if cfg.HTTP.TLSEnabled() {
			err = srv.RunTLS()
		} else {
			err = srv.Run()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", logger.ErrorField("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", logger.ErrorField("error", err))
	}

	log.Info("Server exited properly")
}
