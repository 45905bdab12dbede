package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/pitwall/pitwallapi/config"
	"github.com/pitwall/pitwallapi/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order. Uniqueness (slugs,
// user email, one standing row per season/entrant/class) lives in the table
// definitions so concurrent writers cannot bypass the pre-checks done in the
// services.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Series)(nil),
		(*models.Season)(nil),
		(*models.Circuit)(nil),
		(*models.Event)(nil),
		(*models.Session)(nil),
		(*models.Team)(nil),
		(*models.Driver)(nil),
		(*models.Result)(nil),
		(*models.DriverStanding)(nil),
		(*models.ConstructorStanding)(nil),
		(*models.LapTelemetry)(nil),
		(*models.FeedItem)(nil),
		(*models.User)(nil),
		(*models.UserPreference)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	return nil
}
