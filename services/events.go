package services

import (
	"context"
	"strings"

	"github.com/pitwall/pitwallapi/models"
	"github.com/pitwall/pitwallapi/repository"
)

// EventService resolves a single event with its sessions and serves the
// per-session result and telemetry lookups.
type EventService struct {
	events    repository.EventRepository
	sessions  repository.SessionRepository
	results   repository.ResultRepository
	telemetry repository.TelemetryRepository
}

func NewEventService(
	events repository.EventRepository,
	sessions repository.SessionRepository,
	results repository.ResultRepository,
	telemetry repository.TelemetryRepository,
) *EventService {
	return &EventService{events: events, sessions: sessions, results: results, telemetry: telemetry}
}

func (s *EventService) GetBySlug(ctx context.Context, slug string) (*EventDetailDTO, error) {
	event, err := s.events.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, &NotFoundError{Resource: "Event", ID: slug}
	}

	sessions, err := s.sessions.FindByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	dto := &EventDetailDTO{
		ID:        event.ID,
		Name:      event.Name,
		Slug:      event.Slug,
		StartDate: event.StartDate,
		EndDate:   event.EndDate,
		Status:    event.Status,
		Sessions:  make([]SessionDTO, 0, len(sessions)),
	}
	if event.Season != nil && event.Season.Series != nil {
		series := newSeriesDTO(event.Season.Series)
		dto.Series = &series
	}
	if event.Circuit != nil {
		circuit := newCircuitDTO(event.Circuit)
		dto.Circuit = &circuit
	}
	for i := range sessions {
		dto.Sessions = append(dto.Sessions, newSessionDTO(&sessions[i]))
	}
	return dto, nil
}

// Results lists a session's results ordered by position, optionally narrowed
// to one class. A nil sessionID is a partially-specified request and returns
// an empty list, not an error.
func (s *EventService) Results(ctx context.Context, sessionID *int64, className string) ([]ResultDTO, error) {
	if sessionID == nil {
		return []ResultDTO{}, nil
	}

	var (
		rows []models.Result
		err  error
	)
	className = strings.TrimSpace(className)
	if className != "" {
		rows, err = s.results.FindBySessionAndClass(ctx, *sessionID, className)
	} else {
		rows, err = s.results.FindBySession(ctx, *sessionID)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]ResultDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, newResultDTO(&rows[i]))
	}
	return dtos, nil
}

// ResultClasses lists the distinct non-blank class names present in a
// session's results.
func (s *EventService) ResultClasses(ctx context.Context, sessionID *int64) ([]string, error) {
	if sessionID == nil {
		return []string{}, nil
	}

	names, err := s.results.DistinctClassNames(ctx, *sessionID)
	if err != nil {
		return nil, err
	}
	classes := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		classes = append(classes, name)
	}
	return classes, nil
}

// Telemetry lists stored laps for a session ordered by lap then position.
// Same nil-session tolerance as Results.
func (s *EventService) Telemetry(ctx context.Context, sessionID *int64) ([]LapTelemetryDTO, error) {
	if sessionID == nil {
		return []LapTelemetryDTO{}, nil
	}

	laps, err := s.telemetry.FindBySession(ctx, *sessionID)
	if err != nil {
		return nil, err
	}
	dtos := make([]LapTelemetryDTO, 0, len(laps))
	for i := range laps {
		dtos = append(dtos, newTelemetryDTO(&laps[i]))
	}
	return dtos, nil
}
