package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcstore-be/internal/ai"
	"pcstore-be/internal/api"
	"pcstore-be/internal/appointment"
	"pcstore-be/internal/auth"
	"pcstore-be/internal/config"
	"pcstore-be/internal/db"
	"pcstore-be/internal/events"
	"pcstore-be/internal/faq"
	"pcstore-be/internal/inquiry"
	"pcstore-be/internal/logger"
	"pcstore-be/internal/middleware"
	"pcstore-be/internal/order"
	"pcstore-be/internal/prebuild"
	"pcstore-be/internal/product"
	"pcstore-be/internal/upload"
	"pcstore-be/internal/user"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

// server is the assembled HTTP stack plus the background pieces that share
// its lifetime.
type server struct {
	handler   http.Handler
	limiter   *middleware.RateLimiter
	publisher events.Publisher
	purge     *cron.Cron
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	srv, err := newServer(cfg, database)
	if err != nil {
		return err
	}
	defer srv.publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go srv.limiter.Run(ctx)

	if srv.purge != nil {
		srv.purge.Start()
		defer srv.purge.Stop()
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("server starting",
			zap.String("port", cfg.AppPort),
			zap.String("env", cfg.AppEnv),
		)
		errCh <- startServerFunc(httpServer)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func newServer(cfg *config.Config, database *sql.DB) (*server, error) {
	tokens := auth.NewTokens(cfg.JWTSecret)

	productSvc := product.NewService(product.NewRepository(database))
	prebuildSvc := prebuild.NewService(prebuild.NewRepository(database), productSvc)
	inquirySvc := inquiry.NewService(inquiry.NewRepository(database))

	publisher := newPublisher(cfg)
	orderSvc := order.NewService(order.NewRepository(database), productSvc, publisher)

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}

	h := &api.Handler{
		ProductSvc:     productSvc,
		PrebuildSvc:    prebuildSvc,
		InquirySvc:     inquirySvc,
		OrderSvc:       orderSvc,
		UserSvc:        user.NewService(user.NewRepository(database), tokens),
		AppointmentSvc: appointment.NewService(appointment.NewRepository(database)),
		FAQSvc:         faq.NewService(faq.NewRepository(database)),
		AI:             ai.NewClient(cfg.AIAPIURL, cfg.AIAPIKey, cfg.AIModel),
		Uploads:        uploads,
		TokenTTL:       tokens.TTL(),
		SecureCookie:   cfg.AppEnv == "production",
	}

	var purge *cron.Cron
	if cfg.InquiryPurgeSchedule != "" {
		purge, err = inquiry.NewPurgeScheduler(inquirySvc, cfg.InquiryPurgeSchedule)
		if err != nil {
			return nil, err
		}
	}

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)

	return &server{
		handler:   setupRouter(h, tokens, limiter, cfg.CORSOrigin),
		limiter:   limiter,
		publisher: publisher,
		purge:     purge,
	}, nil
}

// setupRouter wraps the REST router in the global middleware chain.
// Auth runs before the limiter so buckets are keyed by user when possible.
func setupRouter(h *api.Handler, tokens *auth.Tokens, limiter *middleware.RateLimiter, corsOrigin string) http.Handler {
	var handler http.Handler = api.NewRouter(h)
	handler = limiter.Middleware(handler)
	handler = middleware.AuthMiddleware(tokens)(handler)
	handler = middleware.CORS(corsOrigin)(handler)
	handler = middleware.Recover(handler)
	handler = logger.LoggingMiddleware(handler)
	return logger.RequestIDMiddleware(handler)
}

func newPublisher(cfg *config.Config) events.Publisher {
	brokers := events.ParseBrokers(cfg.KafkaBrokers)
	if len(brokers) == 0 {
		return events.NopPublisher{}
	}

	producer, err := events.NewKafkaProducer(brokers, cfg.KafkaTopic)
	if err != nil {
		logger.L().Warn("kafka unavailable, order events disabled",
			zap.Strings("brokers", brokers),
			zap.Error(err),
		)
		return events.NopPublisher{}
	}
	return producer
}
