package db

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	Log      *zap.Logger
	LogLevel logger.LogLevel
}

func OpenGorm(dsn string, opts Options) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), opts)
}

// OpenGormWithDialector opens the pool, applies the pool limits and pings once.
func OpenGormWithDialector(dial gorm.Dialector, opts Options) (*gorm.DB, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	lvl := opts.LogLevel
	if lvl == 0 {
		lvl = logger.Warn
	}
	cfg := &gorm.Config{
		Logger: logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  lvl,
			IgnoreRecordNotFoundError: true,
		}),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Info("gorm: connected")
	return db, nil
}

// LogLevelFor maps the service log level onto gorm's; SQL is only traced at debug.
func LogLevelFor(l zapcore.Level) logger.LogLevel {
	switch {
	case l <= zapcore.DebugLevel:
		return logger.Info
	case l <= zapcore.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
