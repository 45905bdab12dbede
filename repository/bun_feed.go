package repository

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pitwall/pitwallapi/models"
)

type feedRepo struct {
	db *bun.DB
}

func NewFeedRepository(db *bun.DB) FeedRepository {
	return &feedRepo{db: db}
}

func (r *feedRepo) FindPage(ctx context.Context, seriesSlug string, page, size int) ([]models.FeedItem, int, error) {
	var items []models.FeedItem
	q := r.db.NewSelect().Model(&items).
		Relation("Series").
		Relation("Event").
		OrderExpr("fi.published_at DESC").
		Limit(size).
		Offset(page * size)

	if seriesSlug != "" {
		q = q.Where("series.slug = ?", seriesSlug)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("select feed page: %w", err)
	}
	return items, total, nil
}
