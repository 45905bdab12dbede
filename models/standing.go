package models

import "github.com/uptrace/bun"

// DriverStanding is a driver's cumulative season ranking, one row per
// (season, driver, class). Points stay in their numeric column form until the
// DTO boundary so fractional scores survive untouched.
type DriverStanding struct {
	bun.BaseModel `bun:"table:driver_standings,alias:ds"`

	ID        int64   `bun:"id,pk,autoincrement" json:"id"`
	SeasonID  int64   `bun:"season_id,notnull,unique:driver_standings_no_dupes" json:"seasonID"`
	DriverID  int64   `bun:"driver_id,notnull,unique:driver_standings_no_dupes" json:"driverID"`
	ClassName *string `bun:"class_name,unique:driver_standings_no_dupes" json:"className,omitempty"`
	Position  int     `bun:"position,notnull" json:"position"`
	Points    string  `bun:"points,notnull,type:numeric" json:"points"`
	Wins      int     `bun:"wins,notnull,default:0" json:"wins"`

	Season *Season `bun:"rel:belongs-to,join:season_id=id" json:"-"`
	Driver *Driver `bun:"rel:belongs-to,join:driver_id=id" json:"-"`
}

// ConstructorStanding is the team-level counterpart of DriverStanding.
type ConstructorStanding struct {
	bun.BaseModel `bun:"table:constructor_standings,alias:cs"`

	ID        int64   `bun:"id,pk,autoincrement" json:"id"`
	SeasonID  int64   `bun:"season_id,notnull,unique:constructor_standings_no_dupes" json:"seasonID"`
	TeamID    int64   `bun:"team_id,notnull,unique:constructor_standings_no_dupes" json:"teamID"`
	ClassName *string `bun:"class_name,unique:constructor_standings_no_dupes" json:"className,omitempty"`
	Position  int     `bun:"position,notnull" json:"position"`
	Points    string  `bun:"points,notnull,type:numeric" json:"points"`
	Wins      int     `bun:"wins,notnull,default:0" json:"wins"`

	Season *Season `bun:"rel:belongs-to,join:season_id=id" json:"-"`
	Team   *Team   `bun:"rel:belongs-to,join:team_id=id" json:"-"`
}
