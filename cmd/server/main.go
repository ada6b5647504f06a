package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cryptodash/internal/config"
	"cryptodash/internal/database"
	"cryptodash/internal/handlers"
	"cryptodash/internal/market"
	"cryptodash/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}
	if err := setupLogger(logger, cfg.LogLevel, cfg.LogFile); err != nil {
		logger.Warnf("log file disabled: %v", err)
	}

	db, err := initDB(cfg.PostgresURL)
	if err != nil {
		logger.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	repo := database.New(db, logger)
	client := market.NewClient(cfg.MarketAPIURL, cfg.MarketAPIKey, cfg.MarketTimeout, cfg.MarketMaxRetries, logger)
	priceSvc := service.NewPriceService(repo, client, cfg.PriceMaxAge, logger)
	portfolioSvc := service.NewPortfolioService(repo, priceSvc, logger)
	profileSvc := service.NewProfileService(repo, repo, portfolioSvc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	priceSvc.Start(ctx, cfg.PriceUpdateInterval)

	h := handlers.NewHandler(client, portfolioSvc, profileSvc, cfg.MarketTopLimit, logger)

	rg := gin.New()
	rg.Use(gin.Recovery(), requestLogger(logger))
	h.Routes(rg)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: rg}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown failed: %v", err)
	}
}

func initDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

// setupLogger sends log output to stdout and a rotating file.
func setupLogger(logger *logrus.Logger, level, filename string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	logWriter := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, logWriter))
	return nil
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
