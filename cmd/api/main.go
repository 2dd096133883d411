package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"loan-marketplace/internal/adapter/filestore"
	httpadp "loan-marketplace/internal/adapter/http"
	"loan-marketplace/internal/adapter/middleware"
	"loan-marketplace/internal/adapter/repository/mysql"
	"loan-marketplace/internal/config"
	"loan-marketplace/internal/infrastructure/cache"
	"loan-marketplace/internal/infrastructure/db"
	"loan-marketplace/internal/infrastructure/metrics"
	"loan-marketplace/internal/logger"
	ucDocument "loan-marketplace/internal/usecase/document"
	ucLoan "loan-marketplace/internal/usecase/loan"
	ucProfile "loan-marketplace/internal/usecase/profile"
	ucReview "loan-marketplace/internal/usecase/review"
	ucVendor "loan-marketplace/internal/usecase/vendors"
	"loan-marketplace/pkg/id"
)

func main() {
	envFile := flag.String("env", "", "env file to load instead of ./.env")
	flag.Parse()

	var (
		cfg    *config.Config
		cfgErr error
	)
	if *envFile != "" {
		cfg, cfgErr = config.LoadFile(*envFile)
	} else {
		cfg = config.Load()
	}
	if cfgErr != nil {
		// still need a logger to report it
		cfg = config.FromEnv()
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()

	if cfgErr != nil {
		log.Fatal("load env file", zap.String("path", *envFile), zap.Error(cfgErr))
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	// amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.Options{
		Log:      log,
		LogLevel: db.LogLevelFor(logger.ParseLevel(cfg.LogLevel)),
	})
	if err != nil {
		log.Fatal("connect mysql", zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("mysql pool", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := mysql.AutoMigrate(gdb); err != nil {
			log.Fatal("auto migrate", zap.Error(err))
		}
		log.Info("schema migrated")
	}

	rdb, err := cache.OpenRedis(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	if err != nil {
		log.Fatal("connect redis", zap.Error(err))
	}
	defer rdb.Close()

	var files ucDocument.FileStore
	if cfg.GCSBucket != "" {
		gcs, err := filestore.NewGCSStore(ctx, cfg.GCSBucket, log.Named("gcs"))
		if err != nil {
			log.Fatal("gcs client", zap.Error(err))
		}
		defer gcs.Close()
		files = gcs
	} else {
		log.Warn("GCS_BUCKET not set, document uploads disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		log.Fatal("metrics", zap.Error(err))
	}

	policy := ucLoan.DefaultPolicy()
	policy.IncomeDocType = cfg.IncomeDocType
	policy.IDDocType = cfg.IDDocType
	policy.TxTimeout = cfg.TxTimeout()

	tx := mysql.NewGormUoW(gdb)
	repos := mysql.NewRepos(gdb)

	loanUC := ucLoan.NewUsecase(tx, repos, policy, log.Named("loan"), m)
	reviewUC := ucReview.NewUsecase(tx, repos, cfg.TxTimeout(), log.Named("review"), m)
	vendorUC := ucVendor.NewUsecase(tx, repos.Vendors, log.Named("vendor"))
	profileUC := ucProfile.NewUsecase(tx, repos.Profiles)
	documentUC := ucDocument.NewUsecase(repos.Documents, files, cfg.AllowedDocTypes, log.Named("document"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.Recover(),
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewRequestID}),
		requestLogger(log.Named("http")),
		m.Middleware(),
	)

	httpadp.Register(e, httpadp.Routes{
		Health: httpadp.NewHandler(map[string]httpadp.Check{
			"mysql": sqlDB.PingContext,
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		Loans:          httpadp.NewLoanHandler(loanUC, log),
		Reviews:        httpadp.NewReviewHandler(reviewUC, log),
		Profiles:       httpadp.NewProfileHandler(profileUC, log),
		Documents:      httpadp.NewDocumentHandler(documentUC, log),
		Vendors:        httpadp.NewVendorHandler(vendorUC, log),
		JWTSecret:      []byte(cfg.JWTSecret),
		Idempotency:    middleware.Idempotency(rdb, cfg.IdempTTL(), log.Named("idempotency")),
		UploadsEnabled: files != nil,
		Metrics:        m.Handler(),
	})

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
