package models

import "github.com/uptrace/bun"

// UserPreference holds one user's followed identifiers. Each list is stored as
// a JSON array of strings in a single column, e.g. ["f1","wec"].
type UserPreference struct {
	bun.BaseModel `bun:"table:user_preferences,alias:up"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	UserID          int64  `bun:"user_id,notnull,unique" json:"userID"`
	FollowedSeries  string `bun:"followed_series,type:jsonb" json:"followedSeries"`
	FollowedTeams   string `bun:"followed_teams,type:jsonb" json:"followedTeams"`
	FollowedDrivers string `bun:"followed_drivers,type:jsonb" json:"followedDrivers"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"-"`
}
