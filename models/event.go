package models

import "github.com/uptrace/bun"

// Event is a race weekend within a season, held at one circuit.
// Status is free text: upcoming, active or completed.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	SeasonID  int64  `bun:"season_id,notnull" json:"seasonID"`
	CircuitID int64  `bun:"circuit_id,notnull" json:"circuitID"`
	Name      string `bun:"name,notnull" json:"name"`
	Slug      string `bun:"slug,notnull,unique" json:"slug"`
	StartDate string `bun:"start_date,notnull,type:date" json:"startDate"`
	EndDate   string `bun:"end_date,notnull,type:date" json:"endDate"`
	Status    string `bun:"status,notnull" json:"status"`

	Season  *Season  `bun:"rel:belongs-to,join:season_id=id" json:"-"`
	Circuit *Circuit `bun:"rel:belongs-to,join:circuit_id=id" json:"-"`
}
