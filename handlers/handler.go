package handlers

import "github.com/pitwall/pitwallapi/services"

// Handler holds the domain services used by all route handlers.
type Handler struct {
	Series    *services.SeriesService
	Calendar  *services.CalendarService
	Events    *services.EventService
	Drivers   *services.DriverService
	Teams     *services.TeamService
	Standings *services.StandingsService
	Feed      *services.FeedService
	Auth      *services.AuthService
}
