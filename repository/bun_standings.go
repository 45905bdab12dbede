package repository

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pitwall/pitwallapi/models"
)

type standingRepo struct {
	db *bun.DB
}

func NewStandingRepository(db *bun.DB) StandingRepository {
	return &standingRepo{db: db}
}

func (r *standingRepo) DriverStandings(ctx context.Context, seriesSlug string, year int, className string) ([]models.DriverStanding, error) {
	var standings []models.DriverStanding
	q := r.db.NewSelect().Model(&standings).
		Relation("Driver").
		Relation("Driver.Team").
		Relation("Season").
		Relation("Season.Series").
		Where("season__series.slug = ?", seriesSlug).
		Where("season.year = ?", year).
		OrderExpr("ds.position ASC")

	if className != "" {
		q = q.Where("ds.class_name = ?", className)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("select driver standings: %w", err)
	}
	return standings, nil
}

func (r *standingRepo) ConstructorStandings(ctx context.Context, seriesSlug string, year int, className string) ([]models.ConstructorStanding, error) {
	var standings []models.ConstructorStanding
	q := r.db.NewSelect().Model(&standings).
		Relation("Team").
		Relation("Season").
		Relation("Season.Series").
		Where("season__series.slug = ?", seriesSlug).
		Where("season.year = ?", year).
		OrderExpr("cs.position ASC")

	if className != "" {
		q = q.Where("cs.class_name = ?", className)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("select constructor standings: %w", err)
	}
	return standings, nil
}

func (r *standingRepo) DriverClassNames(ctx context.Context, seriesSlug string, year int) ([]string, error) {
	return r.classNames(ctx, "driver_standings", seriesSlug, year)
}

func (r *standingRepo) ConstructorClassNames(ctx context.Context, seriesSlug string, year int) ([]string, error) {
	return r.classNames(ctx, "constructor_standings", seriesSlug, year)
}

func (r *standingRepo) classNames(ctx context.Context, table, seriesSlug string, year int) ([]string, error) {
	var names []string
	err := r.db.NewSelect().
		TableExpr("? AS st", bun.Ident(table)).
		ColumnExpr("DISTINCT COALESCE(st.class_name, '')").
		Join("INNER JOIN seasons AS se ON se.id = st.season_id").
		Join("INNER JOIN series AS s ON s.id = se.series_id").
		Where("s.slug = ?", seriesSlug).
		Where("se.year = ?", year).
		OrderExpr("1 ASC").
		Scan(ctx, &names)
	if err != nil {
		return nil, fmt.Errorf("select %s class names: %w", table, err)
	}
	return names, nil
}
