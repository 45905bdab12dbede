package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pitwall/pitwallapi/models"
)

func TestGetBySlug(t *testing.T) {
	events := &mockEventRepo{
		findBySlugFn: func(ctx context.Context, slug string) (*models.Event, error) {
			return &models.Event{
				ID: 3, Name: "Belgian Grand Prix", Slug: slug,
				StartDate: "2026-08-28", EndDate: "2026-08-30", Status: "upcoming",
				Season:  &models.Season{Series: &models.Series{ID: 1, Slug: "f1", Name: "Formula 1"}},
				Circuit: &models.Circuit{ID: 2, Name: "Spa-Francorchamps"},
			}, nil
		},
	}
	sessions := &mockSessionRepo{
		findByEventFn: func(ctx context.Context, eventID int64) ([]models.Session, error) {
			return []models.Session{
				{ID: 10, Type: "qualifying", Name: "Qualifying", StartTime: time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)},
				{ID: 11, Type: "race", Name: "Race", StartTime: time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := NewEventService(events, sessions, &mockResultRepo{}, &mockTelemetryRepo{})

	dto, err := svc.GetBySlug(context.Background(), "belgian-gp-2026")
	if err != nil {
		t.Fatalf("GetBySlug returned error: %v", err)
	}
	if dto.Series == nil || dto.Series.Slug != "f1" {
		t.Errorf("series = %+v", dto.Series)
	}
	if dto.Circuit == nil || dto.Circuit.Name != "Spa-Francorchamps" {
		t.Errorf("circuit = %+v", dto.Circuit)
	}
	if len(dto.Sessions) != 2 || dto.Sessions[0].Type != "qualifying" {
		t.Errorf("sessions = %+v", dto.Sessions)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, &mockSessionRepo{}, &mockResultRepo{}, &mockTelemetryRepo{})

	_, err := svc.GetBySlug(context.Background(), "no-such-event")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if !strings.Contains(err.Error(), "Event") || !strings.Contains(err.Error(), "no-such-event") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestResultsWithoutSession(t *testing.T) {
	called := false
	results := &mockResultRepo{
		findBySessionFn: func(ctx context.Context, sessionID int64) ([]models.Result, error) {
			called = true
			return nil, nil
		},
	}
	svc := NewEventService(&mockEventRepo{}, &mockSessionRepo{}, results, &mockTelemetryRepo{})

	got, err := svc.Results(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
	if called {
		t.Error("nil session must not hit the repository")
	}
}

func TestResultsClassDispatch(t *testing.T) {
	var unfiltered, filtered bool
	var gotClass string
	results := &mockResultRepo{
		findBySessionFn: func(ctx context.Context, sessionID int64) ([]models.Result, error) {
			unfiltered = true
			return nil, nil
		},
		findBySessionAndClassFn: func(ctx context.Context, sessionID int64, className string) ([]models.Result, error) {
			filtered = true
			gotClass = className
			return nil, nil
		},
	}
	svc := NewEventService(&mockEventRepo{}, &mockSessionRepo{}, results, &mockTelemetryRepo{})
	sessionID := int64(10)

	if _, err := svc.Results(context.Background(), &sessionID, "  "); err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	if !unfiltered || filtered {
		t.Error("blank class must use the unfiltered query")
	}

	filtered, unfiltered = false, false
	if _, err := svc.Results(context.Background(), &sessionID, "Hypercar"); err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	if !filtered || unfiltered || gotClass != "Hypercar" {
		t.Errorf("class filter not dispatched: filtered=%v class=%q", filtered, gotClass)
	}
}

func TestResultClasses(t *testing.T) {
	results := &mockResultRepo{
		distinctClassNamesFn: func(ctx context.Context, sessionID int64) ([]string, error) {
			return []string{"Hypercar", "", "LMGT3"}, nil
		},
	}
	svc := NewEventService(&mockEventRepo{}, &mockSessionRepo{}, results, &mockTelemetryRepo{})
	sessionID := int64(10)

	got, err := svc.ResultClasses(context.Background(), &sessionID)
	if err != nil {
		t.Fatalf("ResultClasses returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Hypercar", "LMGT3"}) {
		t.Errorf("ResultClasses = %q", got)
	}

	got, err = svc.ResultClasses(context.Background(), nil)
	if err != nil {
		t.Fatalf("ResultClasses returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ResultClasses(nil session) = %v, want empty non-nil slice", got)
	}
}

func TestTelemetryWithoutSession(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, &mockSessionRepo{}, &mockResultRepo{}, &mockTelemetryRepo{})

	got, err := svc.Telemetry(context.Background(), nil)
	if err != nil {
		t.Fatalf("Telemetry returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}
