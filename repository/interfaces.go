// Package repository defines the persistence contracts the services depend on
// and their bun/PostgreSQL implementations. Lookups that find nothing return
// (nil, nil); translating absence into an API error is the services' job.
package repository

import (
	"context"

	"github.com/pitwall/pitwallapi/models"
)

type SeriesRepository interface {
	FindAll(ctx context.Context) ([]models.Series, error)
	FindBySlug(ctx context.Context, slug string) (*models.Series, error)
}

type SeasonRepository interface {
	// FindYears returns season years newest first, across all series when
	// seriesSlug is empty.
	FindYears(ctx context.Context, seriesSlug string) ([]int, error)
}

type EventRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Event, error)
	FindByStatus(ctx context.Context, status string) ([]models.Event, error)
	FindBySeries(ctx context.Context, seriesSlug string) ([]models.Event, error)
	FindByYear(ctx context.Context, year int) ([]models.Event, error)
	FindBySeriesAndYear(ctx context.Context, seriesSlug string, year int) ([]models.Event, error)
	// FindByDateRange returns events starting between from and to inclusive,
	// dates in YYYY-MM-DD form.
	FindByDateRange(ctx context.Context, from, to string) ([]models.Event, error)
}

type SessionRepository interface {
	FindByEvent(ctx context.Context, eventID int64) ([]models.Session, error)
}

type DriverRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Driver, error)
	FindBySeries(ctx context.Context, seriesSlug string) ([]models.Driver, error)
}

type TeamRepository interface {
	FindBySeries(ctx context.Context, seriesSlug string) ([]models.Team, error)
}

type ResultRepository interface {
	FindBySession(ctx context.Context, sessionID int64) ([]models.Result, error)
	FindBySessionAndClass(ctx context.Context, sessionID int64, className string) ([]models.Result, error)
	// DistinctClassNames reports class names found in a session's results,
	// null columns collapsed to "".
	DistinctClassNames(ctx context.Context, sessionID int64) ([]string, error)
	// FindRaceResultsByDriver returns race-session results newest first.
	FindRaceResultsByDriver(ctx context.Context, driverSlug string) ([]models.Result, error)
	// FindRaceResultsByDriverAndYear returns one season's race results in
	// session start order.
	FindRaceResultsByDriverAndYear(ctx context.Context, driverSlug string, year int) ([]models.Result, error)
}

type StandingRepository interface {
	// DriverStandings returns rows ordered by position ascending; className ""
	// means all classes.
	DriverStandings(ctx context.Context, seriesSlug string, year int, className string) ([]models.DriverStanding, error)
	ConstructorStandings(ctx context.Context, seriesSlug string, year int, className string) ([]models.ConstructorStanding, error)
	// DriverClassNames and ConstructorClassNames report distinct class names
	// for a season, null columns collapsed to "".
	DriverClassNames(ctx context.Context, seriesSlug string, year int) ([]string, error)
	ConstructorClassNames(ctx context.Context, seriesSlug string, year int) ([]string, error)
}

type TelemetryRepository interface {
	FindBySession(ctx context.Context, sessionID int64) ([]models.LapTelemetry, error)
}

type FeedRepository interface {
	// FindPage returns one page ordered by published_at descending plus the
	// total row count for the filter. seriesSlug "" means no series filter.
	FindPage(ctx context.Context, seriesSlug string, page, size int) ([]models.FeedItem, int, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// CreateWithPreferences inserts the user and its preference row in one
	// transaction so a failure cannot leave an orphaned user.
	CreateWithPreferences(ctx context.Context, user *models.User, prefs *models.UserPreference) error
}

type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*models.UserPreference, error)
	// Upsert inserts the row or, when one already exists for the user,
	// overwrites the three followed lists.
	Upsert(ctx context.Context, prefs *models.UserPreference) error
}
