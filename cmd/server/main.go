package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gamepoint-mx/storefront/internal/catalog"
	"github.com/gamepoint-mx/storefront/internal/config"
	"github.com/gamepoint-mx/storefront/internal/db"
	"github.com/gamepoint-mx/storefront/internal/events"
	"github.com/gamepoint-mx/storefront/internal/handlers"
	"github.com/gamepoint-mx/storefront/internal/httpserver"
	"github.com/gamepoint-mx/storefront/internal/logging"
	loggingmw "github.com/gamepoint-mx/storefront/internal/middleware/logging"
	"github.com/gamepoint-mx/storefront/internal/orders"
	"github.com/gamepoint-mx/storefront/internal/search"
	"github.com/gamepoint-mx/storefront/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.ServiceName, cfg.LogLevel)

	ctx := context.Background()
	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var searchHandler *handlers.SearchHandler
	var indexer *search.Indexer
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler = handlers.NewSearchHandler(esClient)
		indexer = search.NewIndexer(esClient)
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	renderer, err := httpserver.NewRenderer(cfg.WebDir)
	if err != nil {
		log.Fatalf("renderer init error: %v", err)
	}
	e.Renderer = renderer

	catalogSvc := &catalog.Service{Repo: &catalog.GormRepo{DB: store}}
	orderSvc := &orders.Service{
		Repo:         &orders.GormRepo{DB: store},
		Rates:        cfg.Rates,
		Destinations: cfg.Destinations,
	}

	deps := httpserver.Deps{
		DB:             store,
		WebDir:         cfg.WebDir,
		PageHandler:    &handlers.PageHandler{},
		ProductHandler: &handlers.ProductHandler{Svc: catalogSvc, Producer: producer, Indexer: indexer},
		OrderHandler:   &handlers.OrderHandler{Svc: orderSvc, Producer: producer},
		StatsHandler:   &handlers.StatsHandler{Svc: &stats.Service{DB: store}},
		SearchHandler:  searchHandler,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := store.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
