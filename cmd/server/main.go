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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Deondre2002/Market/internal/config"
	"github.com/Deondre2002/Market/internal/db"
	"github.com/Deondre2002/Market/internal/es"
	"github.com/Deondre2002/Market/internal/httpserver"
	"github.com/Deondre2002/Market/internal/logging"
	authmw "github.com/Deondre2002/Market/internal/middleware/auth"
	loggingmw "github.com/Deondre2002/Market/internal/middleware/logging"
	"github.com/Deondre2002/Market/internal/mykafka"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/search"
	"github.com/Deondre2002/Market/internal/service"
	"github.com/Deondre2002/Market/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	gormDB, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	var producer *mykafka.Producer
	if cfg.KafkaAddress != "" {
		producer = mykafka.NewProducer([]string{cfg.KafkaAddress})
	}

	var searchSvc *search.Service
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch error: %v", err)
		}
		searchSvc = search.New(esClient, "products")
	}

	r := repo.New(gormDB)
	issuer := token.NewIssuer([]byte(cfg.JWTSecret), token.DefaultTTL)

	authSvc := &service.AuthService{Repo: r, Tokens: issuer}
	catalogSvc := &service.CatalogService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		UserHandler:    &httpserver.UserHTTP{Svc: authSvc, Events: producer},
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc, Search: searchSvc, Events: producer},
		OrderHandler:   &httpserver.OrderHTTP{Orders: orderSvc, Catalog: catalogSvc, Events: producer},
		Gate:           &authmw.Gate{Tokens: issuer},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
