package main

import (
	"log/slog"
	"os"

	"gusto/config"
	logs "gusto/internal/infra/log"
	"gusto/internal/infra/persistence/model"
	"gusto/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// migrate creates or alters every table the service reads.
func migrate(db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.AutoMigrate(models...); err != nil {
		return err
	}

	logger.Info("Schema migrated", slog.Int("models", len(models)))

	return nil
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)
	if err := app.Err(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}
