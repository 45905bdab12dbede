package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pitwall/pitwallapi/models"
)

type seriesRepo struct {
	db *bun.DB
}

func NewSeriesRepository(db *bun.DB) SeriesRepository {
	return &seriesRepo{db: db}
}

func (r *seriesRepo) FindAll(ctx context.Context) ([]models.Series, error) {
	var series []models.Series
	err := r.db.NewSelect().Model(&series).
		OrderExpr("s.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select series: %w", err)
	}
	return series, nil
}

func (r *seriesRepo) FindBySlug(ctx context.Context, slug string) (*models.Series, error) {
	series := &models.Series{}
	err := r.db.NewSelect().Model(series).
		Where("s.slug = ?", slug).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select series by slug: %w", err)
	}
	return series, nil
}

type seasonRepo struct {
	db *bun.DB
}

func NewSeasonRepository(db *bun.DB) SeasonRepository {
	return &seasonRepo{db: db}
}

func (r *seasonRepo) FindYears(ctx context.Context, seriesSlug string) ([]int, error) {
	var years []int
	q := r.db.NewSelect().
		Model((*models.Season)(nil)).
		ColumnExpr("se.year").
		OrderExpr("se.year DESC")

	if seriesSlug != "" {
		q = q.Join("INNER JOIN series AS s ON s.id = se.series_id").
			Where("s.slug = ?", seriesSlug)
	}

	if err := q.Scan(ctx, &years); err != nil {
		return nil, fmt.Errorf("select season years: %w", err)
	}
	return years, nil
}

type eventRepo struct {
	db *bun.DB
}

func NewEventRepository(db *bun.DB) EventRepository {
	return &eventRepo{db: db}
}

// eventSelect loads the relations the event mappers need.
func (r *eventRepo) eventSelect(events *[]models.Event) *bun.SelectQuery {
	return r.db.NewSelect().Model(events).
		Relation("Season").
		Relation("Season.Series").
		Relation("Circuit").
		OrderExpr("e.start_date ASC")
}

func (r *eventRepo) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	event := &models.Event{}
	err := r.db.NewSelect().Model(event).
		Relation("Season").
		Relation("Season.Series").
		Relation("Circuit").
		Where("e.slug = ?", slug).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select event by slug: %w", err)
	}
	return event, nil
}

func (r *eventRepo) FindByStatus(ctx context.Context, status string) ([]models.Event, error) {
	var events []models.Event
	err := r.eventSelect(&events).
		Where("e.status = ?", status).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select events by status: %w", err)
	}
	return events, nil
}

func (r *eventRepo) FindBySeries(ctx context.Context, seriesSlug string) ([]models.Event, error) {
	var events []models.Event
	err := r.eventSelect(&events).
		Where("season__series.slug = ?", seriesSlug).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select events by series: %w", err)
	}
	return events, nil
}

func (r *eventRepo) FindByYear(ctx context.Context, year int) ([]models.Event, error) {
	var events []models.Event
	err := r.eventSelect(&events).
		Where("season.year = ?", year).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select events by year: %w", err)
	}
	return events, nil
}

func (r *eventRepo) FindBySeriesAndYear(ctx context.Context, seriesSlug string, year int) ([]models.Event, error) {
	var events []models.Event
	err := r.eventSelect(&events).
		Where("season__series.slug = ?", seriesSlug).
		Where("season.year = ?", year).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select events by series and year: %w", err)
	}
	return events, nil
}

func (r *eventRepo) FindByDateRange(ctx context.Context, from, to string) ([]models.Event, error) {
	var events []models.Event
	err := r.eventSelect(&events).
		Where("e.start_date BETWEEN ? AND ?", from, to).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select events by date range: %w", err)
	}
	return events, nil
}

type sessionRepo struct {
	db *bun.DB
}

func NewSessionRepository(db *bun.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) FindByEvent(ctx context.Context, eventID int64) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.NewSelect().Model(&sessions).
		Where("ss.event_id = ?", eventID).
		OrderExpr("ss.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select sessions by event: %w", err)
	}
	return sessions, nil
}
