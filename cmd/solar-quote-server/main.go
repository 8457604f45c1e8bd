package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/solar-quote/internal/logging"
	"github.com/iwvelando/solar-quote/internal/server"
	"github.com/iwvelando/solar-quote/pkg/constants"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override, e.g. :8080")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	maxUpload := flag.String("max-upload-size", "", "upload size override, e.g. 512K or 2M")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}
	if *maxUpload != "" {
		size, err := server.ParseSize(*maxUpload)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid max-upload-size %s\", \"error\": \"%v\"}\n", *maxUpload, err)
			os.Exit(1)
		}
		cfg.SetUploadSizeBytes(size)
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg.UploadSizeBytes(), version, nil),
		ReadHeaderTimeout: cfg.ReadHeaderTimeoutDuration(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.String("version", version),
		)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
