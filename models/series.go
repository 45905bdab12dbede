package models

import "github.com/uptrace/bun"

// Series is a championship, the root of the reference-data hierarchy.
type Series struct {
	bun.BaseModel `bun:"table:series,alias:s"`

	ID             int64  `bun:"id,pk,autoincrement" json:"id"`
	Name           string `bun:"name,notnull" json:"name"`
	Slug           string `bun:"slug,notnull,unique" json:"slug"`
	ColorPrimary   string `bun:"color_primary" json:"colorPrimary"`
	ColorSecondary string `bun:"color_secondary" json:"colorSecondary"`
	LogoURL        string `bun:"logo_url" json:"logoUrl"`
}
