package models

import "github.com/uptrace/bun"

// Team is a constructor/entrant competing in exactly one series.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	SeriesID  int64  `bun:"series_id,notnull" json:"seriesID"`
	Name      string `bun:"name,notnull" json:"name"`
	ShortName string `bun:"short_name" json:"shortName"`
	Color     string `bun:"color" json:"color"`

	Series *Series `bun:"rel:belongs-to,join:series_id=id" json:"-"`
}
