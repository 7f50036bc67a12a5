package db_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"lumen/internal/config"
	"lumen/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDatabase),
	fx.Invoke(migrate),
)

func provideDatabase(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

func migrate(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
