package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pitwall/pitwallapi/models"
)

type driverRepo struct {
	db *bun.DB
}

func NewDriverRepository(db *bun.DB) DriverRepository {
	return &driverRepo{db: db}
}

func (r *driverRepo) FindBySlug(ctx context.Context, slug string) (*models.Driver, error) {
	driver := &models.Driver{}
	err := r.db.NewSelect().Model(driver).
		Relation("Team").
		Where("d.slug = ?", slug).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select driver by slug: %w", err)
	}
	return driver, nil
}

func (r *driverRepo) FindBySeries(ctx context.Context, seriesSlug string) ([]models.Driver, error) {
	var drivers []models.Driver
	err := r.db.NewSelect().Model(&drivers).
		Relation("Team").
		Relation("Team.Series").
		Where("team__series.slug = ?", seriesSlug).
		OrderExpr("d.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select drivers by series: %w", err)
	}
	return drivers, nil
}

type teamRepo struct {
	db *bun.DB
}

func NewTeamRepository(db *bun.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) FindBySeries(ctx context.Context, seriesSlug string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.NewSelect().Model(&teams).
		Relation("Series").
		Where("series.slug = ?", seriesSlug).
		OrderExpr("t.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select teams by series: %w", err)
	}
	return teams, nil
}
