package bootstrap

import (
	"context"

	"hoteltrack/internal/infra/db"
	"hoteltrack/internal/infra/gormstore"
	"hoteltrack/internal/pkg/config"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewStore,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*gorm.DB, error) {
	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return gdb, nil
}

// NewStore wraps the connection and brings the schema up to date.
func NewStore(gdb *gorm.DB) (*gormstore.Store, error) {
	store := gormstore.New(gdb)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}
