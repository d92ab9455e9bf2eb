package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/payments"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/notify"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.Open(cfg.DBUrl)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	var locker lock.Locker = lock.NewLocalLocker()
	hub := notify.NewHub()
	sinks := []notify.Sink{
		notify.NewInAppSink(infraRepo.NewNotificationGormRepository(db)),
		hub,
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("parse REDIS_URL", zap.Error(err))
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("connect redis", zap.Error(err))
		}

		locker = lock.NewRedisLocker(rdb, cfg.StaffLockTTL, log)
		sinks = append(sinks, notify.NewRedisStreamSink(rdb, cfg.NotifyStream))
		log.Info("redis enabled", zap.String("stream", cfg.NotifyStream))
	}

	var storage media.Storage
	if cfg.S3Bucket != "" {
		storage = media.NewS3Storage(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}

	var gateway payment.Gateway
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
		if err != nil {
			log.Fatal("mercadopago", zap.Error(err))
		}
		gateway = mp
	}

	dispatcher := notify.NewDispatcher(
		infraRepo.NewNotificationGormRepository(db),
		log.Named("notify"),
		notify.Options{
			PollInterval: cfg.NotifyPollInterval,
			MaxAttempts:  cfg.NotifyMaxAttempts,
		},
		sinks...,
	)
	dispatcher.Start()

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Locker:  locker,
		Waker:   dispatcher,
		Hub:     hub,
		Storage: storage,
		Gateway: gateway,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := new(errgroup.Group)
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-shutdownCtx.Done()
		log.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
	}

	dispatcher.Stop()

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("bye")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
