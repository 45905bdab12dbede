package models

import (
	"time"

	"github.com/uptrace/bun"
)

// FeedItem is a published content item, optionally tied to a series or event.
type FeedItem struct {
	bun.BaseModel `bun:"table:feed_items,alias:fi"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Type         string    `bun:"type,notnull" json:"type"`
	SeriesID     *int64    `bun:"series_id" json:"seriesID,omitempty"`
	EventID      *int64    `bun:"event_id" json:"eventID,omitempty"`
	Title        string    `bun:"title,notnull" json:"title"`
	Summary      string    `bun:"summary" json:"summary"`
	ContentURL   string    `bun:"content_url" json:"contentUrl"`
	ThumbnailURL string    `bun:"thumbnail_url" json:"thumbnailUrl"`
	PublishedAt  time.Time `bun:"published_at,notnull" json:"publishedAt"`

	Series *Series `bun:"rel:belongs-to,join:series_id=id" json:"-"`
	Event  *Event  `bun:"rel:belongs-to,join:event_id=id" json:"-"`
}
