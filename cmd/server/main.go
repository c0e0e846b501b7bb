package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kilat-Pet-Delivery/service-voucher/internal/application"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/config"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/database"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/events"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/health"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/logger"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/middleware"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "service-voucher"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting service-voucher",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&repository.VoucherModel{}); err != nil {
		zapLogger.Fatal("failed to auto-migrate", zap.Error(err))
	}
	zapLogger.Info("database migration completed")

	// Initialize Kafka publisher
	publisher := events.NewKafkaPublisher(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.VoucherTopic, serviceName, zapLogger)
	defer publisher.Close()

	// Initialize voucher service and handler
	voucherRepo := repository.NewGormVoucherRepository(db)
	voucherService := application.NewVoucherService(voucherRepo, zapLogger,
		application.WithPublisher(publisher),
		application.WithMinAmount(cfg.VoucherMinAmount),
	)
	voucherHandler := handler.NewVoucherHandler(voucherService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(zapLogger))

	healthHandler := health.NewHandler(db, serviceName)
	healthHandler.RegisterRoutes(router)

	apiV1 := router.Group("/api/v1")
	voucherHandler.RegisterRoutes(apiV1)

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down service-voucher...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("service-voucher stopped")
}
