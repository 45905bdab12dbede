package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/pitwall/pitwallapi/models"
)

// Output shapes. Optional associations (a driver's team, a feed item's series)
// map to nullable fields rather than being dropped or failing.

type SeriesDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	ColorPrimary   string `json:"colorPrimary"`
	ColorSecondary string `json:"colorSecondary"`
	LogoURL        string `json:"logoUrl"`
}

type CircuitDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	City        string `json:"city"`
	TrackMapURL string `json:"trackMapUrl"`
	Timezone    string `json:"timezone"`
}

type EventDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	SeriesSlug  string `json:"seriesSlug"`
	SeriesName  string `json:"seriesName"`
	SeriesColor string `json:"seriesColor"`
	CircuitName string `json:"circuitName"`
	Country     string `json:"country"`
	City        string `json:"city"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

type SessionDTO struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

type EventDetailDTO struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Series    *SeriesDTO   `json:"series"`
	Circuit   *CircuitDTO  `json:"circuit"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Status    string       `json:"status"`
	Sessions  []SessionDTO `json:"sessions"`
}

type DriverDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Number      *int    `json:"number"`
	TeamName    *string `json:"teamName"`
	TeamColor   *string `json:"teamColor"`
	Nationality string  `json:"nationality"`
	Slug        string  `json:"slug"`
}

type DriverResultDTO struct {
	EventName  string `json:"eventName"`
	EventSlug  string `json:"eventSlug"`
	SeriesSlug string `json:"seriesSlug"`
	Date       string `json:"date"`
	Position   int    `json:"position"`
	Gap        string `json:"gap"`
	Status     string `json:"status"`
	Year       int    `json:"year"`
}

type TeamDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	Color      string `json:"color"`
	SeriesSlug string `json:"seriesSlug"`
}

type ResultDTO struct {
	ID           int64   `json:"id"`
	Position     *int    `json:"position"`
	DriverName   string  `json:"driverName"`
	DriverNumber *int    `json:"driverNumber"`
	TeamName     *string `json:"teamName"`
	TeamColor    *string `json:"teamColor"`
	ClassName    string  `json:"className"`
	Time         string  `json:"time"`
	Laps         *int    `json:"laps"`
	Gap          string  `json:"gap"`
	Status       string  `json:"status"`
}

type StandingDTO struct {
	Position     int     `json:"position"`
	DriverName   string  `json:"driverName"`
	DriverSlug   string  `json:"driverSlug"`
	DriverNumber *int    `json:"driverNumber"`
	TeamName     *string `json:"teamName"`
	TeamColor    *string `json:"teamColor"`
	ClassName    string  `json:"className"`
	Points       float64 `json:"points"`
	Wins         int     `json:"wins"`
}

type ConstructorStandingDTO struct {
	Position  int     `json:"position"`
	TeamName  string  `json:"teamName"`
	TeamColor string  `json:"teamColor"`
	ClassName string  `json:"className"`
	Points    float64 `json:"points"`
	Wins      int     `json:"wins"`
}

type LapTelemetryDTO struct {
	ID                    int64     `json:"id"`
	LapNumber             *int      `json:"lapNumber"`
	Position              *int      `json:"position"`
	CarNumber             string    `json:"carNumber"`
	DriverName            *string   `json:"driverName"`
	DriverNumber          *int      `json:"driverNumber"`
	TeamName              *string   `json:"teamName"`
	TeamColor             *string   `json:"teamColor"`
	LapTime               string    `json:"lapTime"`
	Sector1Time           string    `json:"sector1Time"`
	Sector2Time           string    `json:"sector2Time"`
	Sector3Time           string    `json:"sector3Time"`
	Sector4Time           string    `json:"sector4Time"`
	AverageSpeedKph       string    `json:"averageSpeedKph"`
	TopSpeedKph           string    `json:"topSpeedKph"`
	SessionElapsed        string    `json:"sessionElapsed"`
	LapTimestamp          time.Time `json:"lapTimestamp"`
	IsValid               *bool     `json:"isValid"`
	CrossingPitFinishLane *bool     `json:"crossingPitFinishLane"`
}

type FeedItemDTO struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	SeriesSlug   *string   `json:"seriesSlug"`
	SeriesName   *string   `json:"seriesName"`
	SeriesColor  *string   `json:"seriesColor"`
	EventID      *int64    `json:"eventId"`
	EventSlug    *string   `json:"eventSlug"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	ContentURL   string    `json:"contentUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	PublishedAt  time.Time `json:"publishedAt"`
}

type UserPreferenceDTO struct {
	FollowedSeries  []string `json:"followedSeries"`
	FollowedTeams   []string `json:"followedTeams"`
	FollowedDrivers []string `json:"followedDrivers"`
}

type AuthResponse struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func newSeriesDTO(s *models.Series) SeriesDTO {
	return SeriesDTO{
		ID:             s.ID,
		Name:           s.Name,
		Slug:           s.Slug,
		ColorPrimary:   s.ColorPrimary,
		ColorSecondary: s.ColorSecondary,
		LogoURL:        s.LogoURL,
	}
}

func newCircuitDTO(c *models.Circuit) CircuitDTO {
	return CircuitDTO{
		ID:          c.ID,
		Name:        c.Name,
		Country:     c.Country,
		City:        c.City,
		TrackMapURL: c.TrackMapURL,
		Timezone:    c.Timezone,
	}
}

func newSessionDTO(ss *models.Session) SessionDTO {
	return SessionDTO{
		ID:        ss.ID,
		Type:      ss.Type,
		Name:      ss.Name,
		StartTime: ss.StartTime,
		EndTime:   ss.EndTime,
		Status:    ss.Status,
	}
}

func newEventDTO(e *models.Event) EventDTO {
	dto := EventDTO{
		ID:        e.ID,
		Name:      e.Name,
		Slug:      e.Slug,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Status:    e.Status,
	}
	if e.Season != nil && e.Season.Series != nil {
		dto.SeriesSlug = e.Season.Series.Slug
		dto.SeriesName = e.Season.Series.Name
		dto.SeriesColor = e.Season.Series.ColorPrimary
	}
	if e.Circuit != nil {
		dto.CircuitName = e.Circuit.Name
		dto.Country = e.Circuit.Country
		dto.City = e.Circuit.City
	}
	return dto
}

func newDriverDTO(d *models.Driver) DriverDTO {
	name, color := teamNameColor(d.Team)
	return DriverDTO{
		ID:          d.ID,
		Name:        d.Name,
		Number:      d.Number,
		TeamName:    name,
		TeamColor:   color,
		Nationality: d.Nationality,
		Slug:        d.Slug,
	}
}

func newResultDTO(r *models.Result) ResultDTO {
	dto := ResultDTO{
		ID:        r.ID,
		Position:  r.Position,
		ClassName: overallClass(r.ClassName),
		Time:      r.Time,
		Laps:      r.Laps,
		Gap:       r.Gap,
		Status:    r.Status,
	}
	if r.Driver != nil {
		dto.DriverName = r.Driver.Name
		dto.DriverNumber = r.Driver.Number
		dto.TeamName, dto.TeamColor = teamNameColor(r.Driver.Team)
	}
	return dto
}

func newTelemetryDTO(lt *models.LapTelemetry) LapTelemetryDTO {
	dto := LapTelemetryDTO{
		ID:                    lt.ID,
		LapNumber:             lt.LapNumber,
		Position:              lt.Position,
		CarNumber:             lt.CarNumber,
		LapTime:               lt.LapTime,
		Sector1Time:           lt.Sector1Time,
		Sector2Time:           lt.Sector2Time,
		Sector3Time:           lt.Sector3Time,
		Sector4Time:           lt.Sector4Time,
		AverageSpeedKph:       lt.AverageSpeedKph,
		TopSpeedKph:           lt.TopSpeedKph,
		SessionElapsed:        lt.SessionElapsed,
		LapTimestamp:          lt.LapTimestamp,
		IsValid:               lt.IsValid,
		CrossingPitFinishLane: lt.CrossingPitFinishLane,
	}
	if lt.Driver != nil {
		dto.DriverName = &lt.Driver.Name
		dto.DriverNumber = lt.Driver.Number
		dto.TeamName, dto.TeamColor = teamNameColor(lt.Driver.Team)
	}
	return dto
}

func newFeedItemDTO(fi *models.FeedItem) FeedItemDTO {
	dto := FeedItemDTO{
		ID:           fi.ID,
		Type:         fi.Type,
		Title:        fi.Title,
		Summary:      fi.Summary,
		ContentURL:   fi.ContentURL,
		ThumbnailURL: fi.ThumbnailURL,
		PublishedAt:  fi.PublishedAt,
	}
	if fi.Series != nil {
		dto.SeriesSlug = &fi.Series.Slug
		dto.SeriesName = &fi.Series.Name
		dto.SeriesColor = &fi.Series.ColorPrimary
	}
	if fi.Event != nil {
		dto.EventID = &fi.Event.ID
		dto.EventSlug = &fi.Event.Slug
	}
	return dto
}

func teamNameColor(t *models.Team) (*string, *string) {
	if t == nil {
		return nil, nil
	}
	return &t.Name, &t.Color
}

// overallClass applies the implicit default class at the output boundary.
// Storage stays honest (nullable); output is always populated.
func overallClass(name *string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return "Overall"
	}
	return *name
}

// parsePoints converts the numeric column text to a float only here, at the
// output boundary.
func parsePoints(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
