// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/templates/campus-api/internal/admin"
	"github.com/carterperez-dev/templates/campus-api/internal/auth"
	"github.com/carterperez-dev/templates/campus-api/internal/config"
	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/course"
	"github.com/carterperez-dev/templates/campus-api/internal/enrollment"
	"github.com/carterperez-dev/templates/campus-api/internal/health"
	"github.com/carterperez-dev/templates/campus-api/internal/middleware"
	"github.com/carterperez-dev/templates/campus-api/internal/product"
	"github.com/carterperez-dev/templates/campus-api/internal/server"
	"github.com/carterperez-dev/templates/campus-api/internal/student"
	"github.com/carterperez-dev/templates/campus-api/internal/user"
)

type options struct {
	configPath  string
	migrateOnly bool
	genKeys     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.yaml", "path to config file")
	flag.BoolVar(&opts.migrateOnly, "migrate-only", false, "apply migrations and exit")
	flag.BoolVar(&opts.genKeys, "genkeys", false, "write a new ES256 key pair and exit")
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(opts options) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	if opts.genKeys {
		if err := auth.GenerateKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath); err != nil {
			return err
		}
		logger.Info("key pair written",
			"private_key", cfg.JWT.PrivateKeyPath,
			"public_key", cfg.JWT.PublicKeyPath,
		)
		return nil
	}

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var tracer trace.Tracer = otel.Tracer(cfg.Otel.ServiceName)
	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else {
		tracer = telemetry.Tracer
		if cfg.Otel.Enabled {
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeWith(logger, "database", db.Close)
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate || opts.migrateOnly {
		if err := core.Migrate(ctx, db.DB.DB); err != nil {
			return err
		}
	}
	if opts.migrateOnly {
		return nil
	}

	var rdb *core.Redis
	denylist := auth.Denylist(auth.NewMemoryDenylist())
	if cfg.Redis.Enabled() {
		rdb, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer closeWith(logger, "redis", rdb.Close)
		denylist = auth.NewRedisDenylist(rdb.Client)
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis not configured, using in-memory token denylist and rate limits")
	}

	tokens, err := auth.NewTokenManager(cfg.JWT, denylist)
	if err != nil {
		return fmt.Errorf("%w (generate keys with -genkeys)", err)
	}
	logger.Info("token manager initialized",
		"algorithm", "ES256",
		"key_id", tokens.KeyID(),
		"lifetime", tokens.TokenLifetime(),
	)

	userSvc := user.NewService(user.NewRepository(db.DB))
	authSvc := auth.NewService(tokens, userSvc)
	authHandler := auth.NewHandler(authSvc)

	productHandler := product.NewHandler(product.NewService(product.NewRepository(db.DB)))
	courseHandler := course.NewHandler(course.NewService(course.NewRepository(db.DB)))
	studentHandler := student.NewHandler(student.NewService(student.NewRepository(db.DB)))
	enrollmentHandler := enrollment.NewHandler(
		enrollment.NewService(enrollment.NewRepository(db.DB)),
	)

	healthHandler := health.NewHandler(db)
	adminCfg := admin.HandlerConfig{
		Counter: db,
		DBStats: db.Stats,
		DBPing:  db.Ping,
	}
	if rdb != nil {
		healthHandler.AddCheck("redis", rdb)
		adminCfg.RedisStats = rdb.Client.PoolStats
		adminCfg.RedisPing = rdb.Ping
	}
	adminHandler := admin.NewHandler(adminCfg)

	var redisClient *redis.Client
	if rdb != nil {
		redisClient = rdb.Client
	}

	globalLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Name: "global",
		Limit: middleware.Limit(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
			cfg.RateLimit.Window,
		),
		FailOpen: true,
	})
	defer globalLimiter.Close()

	authLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Name: "auth",
		Limit: middleware.Limit(
			cfg.RateLimit.AuthRequests,
			cfg.RateLimit.AuthRequests,
			cfg.RateLimit.AuthWindow,
		),
		FailOpen: true,
	})
	defer authLimiter.Close()

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.Tracing(tracer))
	router.Use(middleware.Metrics)
	router.Use(middleware.Logger(logger))
	router.Use(globalLimiter.Handler)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/.well-known/jwks.json", tokens.JWKSHandler())

	authenticator := middleware.Authenticator(authSvc)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, authLimiter.Handler)
		productHandler.RegisterRoutes(r, authenticator, adminOnly)
		courseHandler.RegisterRoutes(r, authenticator, adminOnly)
		studentHandler.RegisterRoutes(r, authenticator, adminOnly)
		enrollmentHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	adminHandler.RegisterRoutes(router, authenticator, adminOnly)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	drainDelay := cfg.Server.DrainDelay
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

func closeWith(logger *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error(name+" close error", "error", err)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
