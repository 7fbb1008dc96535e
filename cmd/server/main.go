package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/ai"
	"github.com/seguro/quotes-service/internal/application/dispatcher"
	"github.com/seguro/quotes-service/internal/application/service"
	"github.com/seguro/quotes-service/internal/config"
	"github.com/seguro/quotes-service/internal/httpapi"
	openaiclient "github.com/seguro/quotes-service/internal/infrastructure/external/openai"
	"github.com/seguro/quotes-service/internal/notification"
	"github.com/seguro/quotes-service/internal/observability"
	"github.com/seguro/quotes-service/internal/repository"
	"github.com/seguro/quotes-service/internal/worker"
	"github.com/seguro/quotes-service/pkg/utils"
)

func main() {
	gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting insurance quotes service",
		zap.Int("port", cfg.Server.Port),
		zap.String("risk_model", cfg.OpenAI.Model))

	registry := prometheus.NewRegistry()
	metrics := observability.New(registry)

	// Stores
	quoteRepo := repository.NewQuoteRepository(logger)
	policyRepo := repository.NewPolicyRepository(logger)

	// Risk assessment gateway: one permit process-wide in production
	riskClient := openaiclient.NewRiskClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.Temperature,
		logger,
	)
	riskGateway := ai.NewGateway(
		riskClient,
		ai.NewSlotPool(cfg.Risk.MaxConcurrentCalls),
		metrics,
		logger,
	)

	// Events
	publisher := dispatcher.NewPublisher(logger)
	notification.RegisterListeners(publisher, logger)

	// Background pipeline runs
	runner := worker.NewSupervised(logger)

	quoteService := service.NewQuoteService(
		quoteRepo,
		riskGateway,
		ai.NewDocumentEstimator(),
		publisher,
		runner,
		metrics,
		logger,
	)
	policyService := service.NewPolicyService(policyRepo, quoteRepo, publisher, metrics, logger)

	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "quotes-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handler := httpapi.NewHandler(quoteService, policyService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight background pipeline runs drain before exit.
	done := make(chan struct{})
	go func() {
		runner.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn("Timed out waiting for background tasks")
	}

	logger.Info("Server exited")
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}
