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

	"github.com/Skotchmaster/inventory_service/internal/config"
	"github.com/Skotchmaster/inventory_service/internal/es"
	"github.com/Skotchmaster/inventory_service/internal/httpserver"
	"github.com/Skotchmaster/inventory_service/internal/mykafka"
	"github.com/Skotchmaster/inventory_service/internal/repo"
	"github.com/Skotchmaster/inventory_service/internal/service"
	"github.com/Skotchmaster/inventory_service/pkg/logging"
	loggingmw "github.com/Skotchmaster/inventory_service/pkg/middleware/logging"

	"github.com/elastic/go-elasticsearch/v9"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(context.Background(), configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	topics := []string{"product_events", "order_events"}
	prod, err := mykafka.NewProducer(configuration.KAFKA_BROKERS, topics)
	if err != nil {
		log.Fatal(err)
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("ES_URL not set, product search disabled")
	}

	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{
			Svc:      &service.ProductService{Repo: gormRepo},
			Producer: prod,
			ES:       esClient,
			Index:    configuration.ES_INDEX,
		},
		OrderHandler: &httpserver.OrderHTTP{
			Svc:      &service.OrderService{Repo: gormRepo},
			Producer: prod,
		},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.SERVER_PORT),
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
