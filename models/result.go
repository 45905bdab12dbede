package models

import "github.com/uptrace/bun"

// Result is one driver's outcome in one session. Position is nullable for
// unclassified runners; a null class name means the implicit "Overall" class.
type Result struct {
	bun.BaseModel `bun:"table:results,alias:r"`

	ID        int64   `bun:"id,pk,autoincrement" json:"id"`
	SessionID int64   `bun:"session_id,notnull,unique:results_no_dupes" json:"sessionID"`
	DriverID  int64   `bun:"driver_id,notnull,unique:results_no_dupes" json:"driverID"`
	Position  *int    `bun:"position" json:"position,omitempty"`
	ClassName *string `bun:"class_name" json:"className,omitempty"`
	Time      string  `bun:"time" json:"time"`
	Laps      *int    `bun:"laps" json:"laps,omitempty"`
	Gap       string  `bun:"gap" json:"gap"`
	Status    string  `bun:"status" json:"status"`

	Session *Session `bun:"rel:belongs-to,join:session_id=id" json:"-"`
	Driver  *Driver  `bun:"rel:belongs-to,join:driver_id=id" json:"-"`
}
