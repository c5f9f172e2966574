package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/adapter/handler"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/adapter/receipt"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/adapter/repository/postgres"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/config"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/services"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/platform/database"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Environment)
	defer log.Sync()

	db, err := database.NewPostgresDB(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}, log)
	if err != nil {
		log.Fatal("failed to connect to db after retries", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db, cfg.MigrationsDir, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	log.Info("redis connected", zap.String("addr", cfg.RedisAddr))

	bookingRepo := postgres.NewBookingRepository(db)
	kosRepo := postgres.NewKosRepository(db)
	userRepo := postgres.NewUserRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	renderer := receipt.NewPDFRenderer()

	bookingService := services.NewBookingService(bookingRepo, kosRepo, userRepo, renderer, cfg.ReceiptsDir, log)
	kosService := services.NewKosService(kosRepo, redisClient, log)
	reviewService := services.NewReviewService(reviewRepo, kosRepo, log)

	bookingHandler := handler.NewBookingHandler(bookingService)
	kosHandler := handler.NewKosHandler(kosService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	handler.SetupRoutes(engine, []byte(cfg.JWTSecret), bookingHandler, kosHandler, reviewHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      engine,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}
