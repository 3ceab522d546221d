package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/restexample/shop-service/internal/command"
	"github.com/restexample/shop-service/internal/config"
	"github.com/restexample/shop-service/internal/events"
	"github.com/restexample/shop-service/internal/handler"
	"github.com/restexample/shop-service/internal/logger"
	"github.com/restexample/shop-service/internal/models"
	"github.com/restexample/shop-service/internal/query"
	redisClient "github.com/restexample/shop-service/internal/redis"
	"github.com/restexample/shop-service/internal/repository"
	"github.com/restexample/shop-service/internal/validation"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logrus.WithError(err).Fatal("shop service stopped")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	// Event publishing is optional; without Redis mutations are not announced.
	var publisher command.EventPublisher = events.NoopPublisher{}
	if cfg.EventsEnabled() {
		redis, err := redisClient.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client, cfg.EventsStream)
		log.WithFields(logrus.Fields{"addr": cfg.RedisAddr, "stream": cfg.EventsStream}).Info("publishing shop events to redis")
	}

	repo := repository.NewShopRepository(models.SeedShops()...)

	var opts []command.Option
	if cfg.ValidateOnUpdate {
		opts = append(opts, command.WithUpdateValidation(validation.ValidateShop))
	}
	commandSvc := command.NewShopCommandService(repo, publisher, log, opts...)
	querySvc := query.NewShopQueryService(repo)

	router := handler.NewRouter(handler.NewShopHandler(commandSvc, querySvc), log)

	srv := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddress).WithField("shops", repo.Count()).Info("shop service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
