package models

import "github.com/uptrace/bun"

// Season is one year's running of a Series.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:se"`

	ID       int64 `bun:"id,pk,autoincrement" json:"id"`
	SeriesID int64 `bun:"series_id,notnull,unique:seasons_no_dupes" json:"seriesID"`
	Year     int   `bun:"year,notnull,unique:seasons_no_dupes" json:"year"`

	Series *Series `bun:"rel:belongs-to,join:series_id=id" json:"-"`
}
