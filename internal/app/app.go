package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mashfiq/seatly/internal/config"
	"github.com/mashfiq/seatly/internal/postgres"
	redisx "github.com/mashfiq/seatly/internal/redis"
	postgresrepo "github.com/mashfiq/seatly/internal/repository/postgres"
	redisrepo "github.com/mashfiq/seatly/internal/repository/redis"
	"github.com/mashfiq/seatly/internal/service"
	"github.com/mashfiq/seatly/internal/service/assignment"
	httpgin "github.com/mashfiq/seatly/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pubsub     *redisx.SeatsPubSub
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redisx.New(context.Background(), redisx.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisx.NewSeatsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(
		rdb,
		"rl",
		cfg.Booking.RateLimit,
		time.Duration(cfg.Booking.RateWindowSec)*time.Second,
	)
	idempotencyStore := redisrepo.NewIdempotencyStore(
		rdb,
		time.Duration(cfg.Booking.IdemTTLMinutes)*time.Minute,
	)

	// Initialize services
	services := service.NewServices(store, cache, pubsub, limiter, service.Config{
		Assignment: assignment.Config{
			PeriodDays: cfg.Booking.PeriodDays,
			DueInDays:  cfg.Booking.DueInDays,
		},
	})

	// Initialize Gin router
	router := httpgin.NewRouter(services, idempotencyStore, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		pubsub: pubsub,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Seat-change feed, for operators tailing the logs
	g.Go(func() error {
		err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, propertyID int64) {
			a.logger.Info("seats changed", "property_id", propertyID)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("seats subscription: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
