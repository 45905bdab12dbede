package models

import "github.com/uptrace/bun"

// Driver may be teamless, so the team reference is nullable.
type Driver struct {
	bun.BaseModel `bun:"table:drivers,alias:d"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	Number      *int   `bun:"number" json:"number,omitempty"`
	TeamID      *int64 `bun:"team_id" json:"teamID,omitempty"`
	Nationality string `bun:"nationality" json:"nationality"`
	Slug        string `bun:"slug,notnull,unique" json:"slug"`

	Team *Team `bun:"rel:belongs-to,join:team_id=id" json:"-"`
}
