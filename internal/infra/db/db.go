package db

import (
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hoteltrack/internal/pkg/config"
	"hoteltrack/internal/pkg/errs"
)

var ErrUnknownDriver = errs.New("unknown database driver")

// Connect opens the configured gorm backend. The sqlite driver is pure Go,
// so tests and local runs need no external database.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	opts := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}

	switch cfg.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.BuildDSN()), opts)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), opts)
	default:
		return nil, errs.Wrap(ErrUnknownDriver, cfg.Driver)
	}
}
