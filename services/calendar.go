package services

import (
	"context"

	"github.com/pitwall/pitwallapi/models"
	"github.com/pitwall/pitwallapi/repository"
)

// upcomingStatus is the default calendar view when no filter is supplied.
const upcomingStatus = "upcoming"

// CalendarService lists events by independently combinable series/year
// filters. Missing filters broaden the query; missing rows yield empty lists.
type CalendarService struct {
	events  repository.EventRepository
	seasons repository.SeasonRepository
}

func NewCalendarService(events repository.EventRepository, seasons repository.SeasonRepository) *CalendarService {
	return &CalendarService{events: events, seasons: seasons}
}

// AvailableYears lists season years newest first, across all series when
// seriesSlug is empty.
func (s *CalendarService) AvailableYears(ctx context.Context, seriesSlug string) ([]int, error) {
	years, err := s.seasons.FindYears(ctx, seriesSlug)
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}

// UpcomingEvents is the unfiltered calendar: only events still to come, not
// the full history.
func (s *CalendarService) UpcomingEvents(ctx context.Context) ([]EventDTO, error) {
	events, err := s.events.FindByStatus(ctx, upcomingStatus)
	if err != nil {
		return nil, err
	}
	return eventDTOs(events), nil
}

func (s *CalendarService) EventsBySeries(ctx context.Context, seriesSlug string) ([]EventDTO, error) {
	events, err := s.events.FindBySeries(ctx, seriesSlug)
	if err != nil {
		return nil, err
	}
	return eventDTOs(events), nil
}

func (s *CalendarService) EventsByYear(ctx context.Context, year int) ([]EventDTO, error) {
	events, err := s.events.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return eventDTOs(events), nil
}

func (s *CalendarService) EventsBySeriesAndYear(ctx context.Context, seriesSlug string, year int) ([]EventDTO, error) {
	events, err := s.events.FindBySeriesAndYear(ctx, seriesSlug, year)
	if err != nil {
		return nil, err
	}
	return eventDTOs(events), nil
}

// EventsBetween lists events starting inside the inclusive date range.
func (s *CalendarService) EventsBetween(ctx context.Context, from, to string) ([]EventDTO, error) {
	events, err := s.events.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return eventDTOs(events), nil
}

func eventDTOs(events []models.Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, newEventDTO(&events[i]))
	}
	return dtos
}
