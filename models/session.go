package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Session is a timed activity within an event: practice, qualifying or race.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:ss"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	EventID   int64     `bun:"event_id,notnull" json:"eventID"`
	Type      string    `bun:"type,notnull" json:"type"`
	Name      string    `bun:"name,notnull" json:"name"`
	StartTime time.Time `bun:"start_time,notnull" json:"startTime"`
	EndTime   time.Time `bun:"end_time" json:"endTime"`
	Status    string    `bun:"status" json:"status"`

	Event *Event `bun:"rel:belongs-to,join:event_id=id" json:"-"`
}
