package models

import (
	"time"

	"github.com/uptrace/bun"
)

// LapTelemetry is one lap of stored timing data. Lap and sector times are kept
// as the formatted strings the timing feed produced, not parsed durations.
type LapTelemetry struct {
	bun.BaseModel `bun:"table:lap_telemetry,alias:lt"`

	ID                    int64     `bun:"id,pk,autoincrement" json:"id"`
	SessionID             int64     `bun:"session_id,notnull" json:"sessionID"`
	DriverID              *int64    `bun:"driver_id" json:"driverID,omitempty"`
	CarNumber             string    `bun:"car_number" json:"carNumber"`
	LapNumber             *int      `bun:"lap_number" json:"lapNumber,omitempty"`
	Position              *int      `bun:"position" json:"position,omitempty"`
	LapTime               string    `bun:"lap_time" json:"lapTime"`
	Sector1Time           string    `bun:"sector1_time" json:"sector1Time"`
	Sector2Time           string    `bun:"sector2_time" json:"sector2Time"`
	Sector3Time           string    `bun:"sector3_time" json:"sector3Time"`
	Sector4Time           string    `bun:"sector4_time" json:"sector4Time"`
	AverageSpeedKph       string    `bun:"average_speed_kph" json:"averageSpeedKph"`
	TopSpeedKph           string    `bun:"top_speed_kph" json:"topSpeedKph"`
	SessionElapsed        string    `bun:"session_elapsed" json:"sessionElapsed"`
	LapTimestamp          time.Time `bun:"lap_timestamp" json:"lapTimestamp"`
	IsValid               *bool     `bun:"is_valid" json:"isValid,omitempty"`
	CrossingPitFinishLane *bool     `bun:"crossing_pit_finish_lane" json:"crossingPitFinishLane,omitempty"`

	Session *Session `bun:"rel:belongs-to,join:session_id=id" json:"-"`
	Driver  *Driver  `bun:"rel:belongs-to,join:driver_id=id" json:"-"`
}
