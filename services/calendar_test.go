package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/pitwall/pitwallapi/models"
)

func TestUpcomingEventsDefaultFilter(t *testing.T) {
	var gotStatus string
	events := &mockEventRepo{
		findByStatusFn: func(ctx context.Context, status string) ([]models.Event, error) {
			gotStatus = status
			return []models.Event{
				{
					ID: 1, Name: "Belgian Grand Prix", Slug: "belgian-gp-2026", Status: "upcoming",
					Season:  &models.Season{Series: &models.Series{Slug: "f1", Name: "Formula 1", ColorPrimary: "#e10600"}},
					Circuit: &models.Circuit{Name: "Spa-Francorchamps", Country: "Belgium"},
				},
			}, nil
		},
	}
	svc := NewCalendarService(events, &mockSeasonRepo{})

	got, err := svc.UpcomingEvents(context.Background())
	if err != nil {
		t.Fatalf("UpcomingEvents returned error: %v", err)
	}
	if gotStatus != "upcoming" {
		t.Errorf("status filter = %q, want upcoming", gotStatus)
	}
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].SeriesSlug != "f1" || got[0].SeriesColor != "#e10600" {
		t.Errorf("series fields not flattened: %+v", got[0])
	}
	if got[0].CircuitName != "Spa-Francorchamps" || got[0].Country != "Belgium" {
		t.Errorf("circuit fields not flattened: %+v", got[0])
	}
}

func TestEventsBySeriesAndYear(t *testing.T) {
	var gotSlug string
	var gotYear int
	events := &mockEventRepo{
		findBySeriesAndYearFn: func(ctx context.Context, seriesSlug string, year int) ([]models.Event, error) {
			gotSlug, gotYear = seriesSlug, year
			return nil, nil
		},
	}
	svc := NewCalendarService(events, &mockSeasonRepo{})

	got, err := svc.EventsBySeriesAndYear(context.Background(), "wec", 2025)
	if err != nil {
		t.Fatalf("EventsBySeriesAndYear returned error: %v", err)
	}
	if gotSlug != "wec" || gotYear != 2025 {
		t.Errorf("repo got (%q, %d)", gotSlug, gotYear)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestEventsBetween(t *testing.T) {
	var gotFrom, gotTo string
	events := &mockEventRepo{
		findByDateRangeFn: func(ctx context.Context, from, to string) ([]models.Event, error) {
			gotFrom, gotTo = from, to
			return []models.Event{{ID: 1, Name: "Belgian Grand Prix", Slug: "belgian-gp-2026", StartDate: "2026-08-28"}}, nil
		},
	}
	svc := NewCalendarService(events, &mockSeasonRepo{})

	got, err := svc.EventsBetween(context.Background(), "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("EventsBetween returned error: %v", err)
	}
	if gotFrom != "2026-08-01" || gotTo != "2026-08-31" {
		t.Errorf("repo got (%q, %q)", gotFrom, gotTo)
	}
	if len(got) != 1 || got[0].Slug != "belgian-gp-2026" {
		t.Errorf("unexpected events: %+v", got)
	}
}

func TestAvailableYears(t *testing.T) {
	seasons := &mockSeasonRepo{
		findYearsFn: func(ctx context.Context, seriesSlug string) ([]int, error) {
			if seriesSlug == "f1" {
				return []int{2026, 2025, 2024}, nil
			}
			return nil, nil
		},
	}
	svc := NewCalendarService(&mockEventRepo{}, seasons)

	got, err := svc.AvailableYears(context.Background(), "f1")
	if err != nil {
		t.Fatalf("AvailableYears returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2026, 2025, 2024}) {
		t.Errorf("AvailableYears = %v", got)
	}

	// No seasons at all still yields [], not null.
	got, err = svc.AvailableYears(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("AvailableYears returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("AvailableYears = %v, want empty non-nil slice", got)
	}
}
