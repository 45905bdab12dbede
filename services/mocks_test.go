package services

import (
	"context"

	"github.com/pitwall/pitwallapi/models"
)

// Hand-rolled repository mocks. Only the funcs a test sets are live; the rest
// return empty results.

type mockSeriesRepo struct {
	findAllFn    func(ctx context.Context) ([]models.Series, error)
	findBySlugFn func(ctx context.Context, slug string) (*models.Series, error)
}

func (m *mockSeriesRepo) FindAll(ctx context.Context) ([]models.Series, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
func (m *mockSeriesRepo) FindBySlug(ctx context.Context, slug string) (*models.Series, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}

type mockSeasonRepo struct {
	findYearsFn func(ctx context.Context, seriesSlug string) ([]int, error)
}

func (m *mockSeasonRepo) FindYears(ctx context.Context, seriesSlug string) ([]int, error) {
	if m.findYearsFn != nil {
		return m.findYearsFn(ctx, seriesSlug)
	}
	return nil, nil
}

type mockEventRepo struct {
	findBySlugFn          func(ctx context.Context, slug string) (*models.Event, error)
	findByStatusFn        func(ctx context.Context, status string) ([]models.Event, error)
	findBySeriesFn        func(ctx context.Context, seriesSlug string) ([]models.Event, error)
	findByYearFn          func(ctx context.Context, year int) ([]models.Event, error)
	findBySeriesAndYearFn func(ctx context.Context, seriesSlug string, year int) ([]models.Event, error)
	findByDateRangeFn     func(ctx context.Context, from, to string) ([]models.Event, error)
}

func (m *mockEventRepo) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *mockEventRepo) FindByStatus(ctx context.Context, status string) ([]models.Event, error) {
	if m.findByStatusFn != nil {
		return m.findByStatusFn(ctx, status)
	}
	return nil, nil
}
func (m *mockEventRepo) FindBySeries(ctx context.Context, seriesSlug string) ([]models.Event, error) {
	if m.findBySeriesFn != nil {
		return m.findBySeriesFn(ctx, seriesSlug)
	}
	return nil, nil
}
func (m *mockEventRepo) FindByYear(ctx context.Context, year int) ([]models.Event, error) {
	if m.findByYearFn != nil {
		return m.findByYearFn(ctx, year)
	}
	return nil, nil
}
func (m *mockEventRepo) FindBySeriesAndYear(ctx context.Context, seriesSlug string, year int) ([]models.Event, error) {
	if m.findBySeriesAndYearFn != nil {
		return m.findBySeriesAndYearFn(ctx, seriesSlug, year)
	}
	return nil, nil
}
func (m *mockEventRepo) FindByDateRange(ctx context.Context, from, to string) ([]models.Event, error) {
	if m.findByDateRangeFn != nil {
		return m.findByDateRangeFn(ctx, from, to)
	}
	return nil, nil
}

type mockSessionRepo struct {
	findByEventFn func(ctx context.Context, eventID int64) ([]models.Session, error)
}

func (m *mockSessionRepo) FindByEvent(ctx context.Context, eventID int64) ([]models.Session, error) {
	if m.findByEventFn != nil {
		return m.findByEventFn(ctx, eventID)
	}
	return nil, nil
}

type mockDriverRepo struct {
	findBySlugFn   func(ctx context.Context, slug string) (*models.Driver, error)
	findBySeriesFn func(ctx context.Context, seriesSlug string) ([]models.Driver, error)
}

func (m *mockDriverRepo) FindBySlug(ctx context.Context, slug string) (*models.Driver, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *mockDriverRepo) FindBySeries(ctx context.Context, seriesSlug string) ([]models.Driver, error) {
	if m.findBySeriesFn != nil {
		return m.findBySeriesFn(ctx, seriesSlug)
	}
	return nil, nil
}

type mockResultRepo struct {
	findBySessionFn                  func(ctx context.Context, sessionID int64) ([]models.Result, error)
	findBySessionAndClassFn          func(ctx context.Context, sessionID int64, className string) ([]models.Result, error)
	distinctClassNamesFn             func(ctx context.Context, sessionID int64) ([]string, error)
	findRaceResultsByDriverFn        func(ctx context.Context, driverSlug string) ([]models.Result, error)
	findRaceResultsByDriverAndYearFn func(ctx context.Context, driverSlug string, year int) ([]models.Result, error)
}

func (m *mockResultRepo) FindBySession(ctx context.Context, sessionID int64) ([]models.Result, error) {
	if m.findBySessionFn != nil {
		return m.findBySessionFn(ctx, sessionID)
	}
	return nil, nil
}
func (m *mockResultRepo) FindBySessionAndClass(ctx context.Context, sessionID int64, className string) ([]models.Result, error) {
	if m.findBySessionAndClassFn != nil {
		return m.findBySessionAndClassFn(ctx, sessionID, className)
	}
	return nil, nil
}
func (m *mockResultRepo) DistinctClassNames(ctx context.Context, sessionID int64) ([]string, error) {
	if m.distinctClassNamesFn != nil {
		return m.distinctClassNamesFn(ctx, sessionID)
	}
	return nil, nil
}
func (m *mockResultRepo) FindRaceResultsByDriver(ctx context.Context, driverSlug string) ([]models.Result, error) {
	if m.findRaceResultsByDriverFn != nil {
		return m.findRaceResultsByDriverFn(ctx, driverSlug)
	}
	return nil, nil
}
func (m *mockResultRepo) FindRaceResultsByDriverAndYear(ctx context.Context, driverSlug string, year int) ([]models.Result, error) {
	if m.findRaceResultsByDriverAndYearFn != nil {
		return m.findRaceResultsByDriverAndYearFn(ctx, driverSlug, year)
	}
	return nil, nil
}

type mockStandingRepo struct {
	driverStandingsFn       func(ctx context.Context, seriesSlug string, year int, className string) ([]models.DriverStanding, error)
	constructorStandingsFn  func(ctx context.Context, seriesSlug string, year int, className string) ([]models.ConstructorStanding, error)
	driverClassNamesFn      func(ctx context.Context, seriesSlug string, year int) ([]string, error)
	constructorClassNamesFn func(ctx context.Context, seriesSlug string, year int) ([]string, error)
}

func (m *mockStandingRepo) DriverStandings(ctx context.Context, seriesSlug string, year int, className string) ([]models.DriverStanding, error) {
	if m.driverStandingsFn != nil {
		return m.driverStandingsFn(ctx, seriesSlug, year, className)
	}
	return nil, nil
}
func (m *mockStandingRepo) ConstructorStandings(ctx context.Context, seriesSlug string, year int, className string) ([]models.ConstructorStanding, error) {
	if m.constructorStandingsFn != nil {
		return m.constructorStandingsFn(ctx, seriesSlug, year, className)
	}
	return nil, nil
}
func (m *mockStandingRepo) DriverClassNames(ctx context.Context, seriesSlug string, year int) ([]string, error) {
	if m.driverClassNamesFn != nil {
		return m.driverClassNamesFn(ctx, seriesSlug, year)
	}
	return nil, nil
}
func (m *mockStandingRepo) ConstructorClassNames(ctx context.Context, seriesSlug string, year int) ([]string, error) {
	if m.constructorClassNamesFn != nil {
		return m.constructorClassNamesFn(ctx, seriesSlug, year)
	}
	return nil, nil
}

type mockTelemetryRepo struct {
	findBySessionFn func(ctx context.Context, sessionID int64) ([]models.LapTelemetry, error)
}

func (m *mockTelemetryRepo) FindBySession(ctx context.Context, sessionID int64) ([]models.LapTelemetry, error) {
	if m.findBySessionFn != nil {
		return m.findBySessionFn(ctx, sessionID)
	}
	return nil, nil
}

type mockFeedRepo struct {
	findPageFn func(ctx context.Context, seriesSlug string, page, size int) ([]models.FeedItem, int, error)
}

func (m *mockFeedRepo) FindPage(ctx context.Context, seriesSlug string, page, size int) ([]models.FeedItem, int, error) {
	if m.findPageFn != nil {
		return m.findPageFn(ctx, seriesSlug, page, size)
	}
	return nil, 0, nil
}

type mockUserRepo struct {
	findByEmailFn           func(ctx context.Context, email string) (*models.User, error)
	existsByEmailFn         func(ctx context.Context, email string) (bool, error)
	createWithPreferencesFn func(ctx context.Context, user *models.User, prefs *models.UserPreference) error
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}
func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}
func (m *mockUserRepo) CreateWithPreferences(ctx context.Context, user *models.User, prefs *models.UserPreference) error {
	if m.createWithPreferencesFn != nil {
		return m.createWithPreferencesFn(ctx, user, prefs)
	}
	return nil
}

type mockPreferenceRepo struct {
	findByUserIDFn func(ctx context.Context, userID int64) (*models.UserPreference, error)
	upsertFn       func(ctx context.Context, prefs *models.UserPreference) error
}

func (m *mockPreferenceRepo) FindByUserID(ctx context.Context, userID int64) (*models.UserPreference, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}
func (m *mockPreferenceRepo) Upsert(ctx context.Context, prefs *models.UserPreference) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, prefs)
	}
	return nil
}
