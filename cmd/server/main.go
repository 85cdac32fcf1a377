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
	"gorm.io/gorm"

	"github.com/gifthub/gifthub/internal/config"
	"github.com/gifthub/gifthub/internal/es"
	"github.com/gifthub/gifthub/internal/events"
	"github.com/gifthub/gifthub/internal/handlers"
	"github.com/gifthub/gifthub/internal/logging"
	loggingmw "github.com/gifthub/gifthub/internal/middleware/logging"
	"github.com/gifthub/gifthub/internal/service"
	"github.com/gifthub/gifthub/internal/session"
	httpserver "github.com/gifthub/gifthub/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	sessions := session.NewRedisStore(config.InitRedis(cfg))

	var producer *events.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = events.NewProducer(cfg.KAFKA_ADDRESS)
	}

	tokens := &service.TokenService{Secret: []byte(cfg.JWT_SECRET)}

	deps := &httpserver.Deps{
		AuthHandler: &handlers.AuthHandler{
			Auth:     &service.AuthService{DB: db},
			Tokens:   tokens,
			Sessions: sessions,
			Producer: producer,
		},
		CartHandler:    &handlers.CartHandler{DB: db},
		ProductHandler: &handlers.ProductHandler{DB: db, Producer: producer},
		Sessions:       sessions,
		Tokens:         tokens,
	}

	if cfg.ES_URL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search disabled", "error", err)
		} else {
			deps.SearchHandler = handlers.NewSearchHandler(esClient, "products")
		}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         cfg.HTTP_ADDR,
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
	shutdown(srv, db, producer)
	log.Println("shutdown complete")
}

func shutdown(srv *http.Server, db *gorm.DB, producer *events.Producer) {
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

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}
}
