package models

import "github.com/uptrace/bun"

// Circuit is a track shared by one or more events.
type Circuit struct {
	bun.BaseModel `bun:"table:circuits,alias:ci"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	Country     string `bun:"country" json:"country"`
	City        string `bun:"city" json:"city"`
	TrackMapURL string `bun:"track_map_url" json:"trackMapUrl"`
	Timezone    string `bun:"timezone" json:"timezone"`
}
