package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"osg-reconciler/internal/config"
	"osg-reconciler/internal/gateway"
	"osg-reconciler/internal/httpapi"
	"osg-reconciler/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// --- Dependency Injection ---
	sheetRepo := gateway.NewSheetRepository()

	var storeRepo usecase.StoreRepository
	if cfg.StoreFile != "" {
		storeRepo = sheetRepo
	}

	handler := &httpapi.Handler{
		Reconciler: usecase.NewReconciliationUseCase(sheetRepo, storeRepo, cfg.StoreFile, logger),
		Writer:     gateway.NewWorkbookWriter(),
		Logger:     logger,
	}
	if cfg.CustomerFile != "" {
		customers := usecase.NewCustomerDirectory(sheetRepo, cfg.CustomerFile, logger)
		handler.Customers = customers
		handler.Claims = usecase.NewClaimUseCase(
			customers,
			gateway.NewSMTPNotifier(cfg.SMTP, logger),
			gateway.NewTrackingClient(cfg.Tracking.URL, cfg.Tracking.Timeout),
			logger,
		)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.NewRouter(handler, cfg.HTTP, cfg.IsProduction()),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	logger.WithFields(logrus.Fields{
		"addr":          cfg.HTTP.Addr,
		"env":           cfg.Env,
		"customer_file": cfg.CustomerFile,
		"store_file":    cfg.StoreFile,
	}).Info("server started")

	select {
	case <-sigCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			config.LogError(logger, "server", "main", "shutdown", nil, err)
		}
		logger.Info("server stopped")
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.LogError(logger, "server", "main", "listen", cfg.HTTP.Addr, err)
			os.Exit(1)
		}
	}
}
