package migrate

import (
	"context"
	"fmt"

	"github.com/stocktrak/stocktrak-backend/pkg/config"
	"github.com/stocktrak/stocktrak-backend/pkg/db"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/logger"
)

// MaybeRunDev executes migrations automatically when the app is running in dev mode and
// the feature flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	meta := map[string]any{"env": cfg.App.Env, "dir": DefaultDir}
	ctx = logg.WithFields(ctx, meta)

	// The SQL migrations target Postgres; the SQLite dev flag falls back
	// to GORM's schema sync instead.
	if cfg.FeatureFlags.UseSQLite {
		logg.Info(ctx, "syncing SQLite schema (dev auto-run)")
		if err := client.DB().WithContext(ctx).AutoMigrate(
			&models.Customer{},
			&models.Supplier{},
			&models.Product{},
			&models.InventoryItem{},
			&models.Order{},
			&models.OrderDetail{},
			&models.Shipment{},
			&models.ShipmentDetail{},
			&models.Payment{},
		); err != nil {
			return fmt.Errorf("sqlite auto-migrate: %w", err)
		}
		return nil
	}

	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, DialectFor(false), "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}
