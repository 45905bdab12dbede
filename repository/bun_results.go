package repository

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pitwall/pitwallapi/models"
)

type resultRepo struct {
	db *bun.DB
}

func NewResultRepository(db *bun.DB) ResultRepository {
	return &resultRepo{db: db}
}

// resultSelect loads the driver (and its optional team) for DTO mapping.
func (r *resultRepo) resultSelect(results *[]models.Result) *bun.SelectQuery {
	return r.db.NewSelect().Model(results).
		Relation("Driver").
		Relation("Driver.Team")
}

func (r *resultRepo) FindBySession(ctx context.Context, sessionID int64) ([]models.Result, error) {
	var results []models.Result
	err := r.resultSelect(&results).
		Where("r.session_id = ?", sessionID).
		OrderExpr("r.position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select results by session: %w", err)
	}
	return results, nil
}

func (r *resultRepo) FindBySessionAndClass(ctx context.Context, sessionID int64, className string) ([]models.Result, error) {
	var results []models.Result
	err := r.resultSelect(&results).
		Where("r.session_id = ?", sessionID).
		Where("r.class_name = ?", className).
		OrderExpr("r.position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select results by session and class: %w", err)
	}
	return results, nil
}

func (r *resultRepo) DistinctClassNames(ctx context.Context, sessionID int64) ([]string, error) {
	var names []string
	err := r.db.NewSelect().
		Model((*models.Result)(nil)).
		ColumnExpr("DISTINCT COALESCE(r.class_name, '')").
		Where("r.session_id = ?", sessionID).
		OrderExpr("1 ASC").
		Scan(ctx, &names)
	if err != nil {
		return nil, fmt.Errorf("select result class names: %w", err)
	}
	return names, nil
}

func (r *resultRepo) FindRaceResultsByDriver(ctx context.Context, driverSlug string) ([]models.Result, error) {
	var results []models.Result
	err := r.raceResultSelect(&results, driverSlug).
		OrderExpr("session.start_time DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select race results by driver: %w", err)
	}
	return results, nil
}

func (r *resultRepo) FindRaceResultsByDriverAndYear(ctx context.Context, driverSlug string, year int) ([]models.Result, error) {
	var results []models.Result
	err := r.raceResultSelect(&results, driverSlug).
		Where("session__event__season.year = ?", year).
		OrderExpr("session.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select race results by driver and year: %w", err)
	}
	return results, nil
}

func (r *resultRepo) raceResultSelect(results *[]models.Result, driverSlug string) *bun.SelectQuery {
	return r.db.NewSelect().Model(results).
		Relation("Driver").
		Relation("Session").
		Relation("Session.Event").
		Relation("Session.Event.Season").
		Relation("Session.Event.Season.Series").
		Where("driver.slug = ?", driverSlug).
		Where("session.type = ?", "race")
}

type telemetryRepo struct {
	db *bun.DB
}

func NewTelemetryRepository(db *bun.DB) TelemetryRepository {
	return &telemetryRepo{db: db}
}

func (r *telemetryRepo) FindBySession(ctx context.Context, sessionID int64) ([]models.LapTelemetry, error) {
	var laps []models.LapTelemetry
	err := r.db.NewSelect().Model(&laps).
		Relation("Driver").
		Relation("Driver.Team").
		Where("lt.session_id = ?", sessionID).
		OrderExpr("lt.lap_number ASC, lt.position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select telemetry by session: %w", err)
	}
	return laps, nil
}
