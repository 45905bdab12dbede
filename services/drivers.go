package services

import (
	"context"

	"github.com/pitwall/pitwallapi/models"
	"github.com/pitwall/pitwallapi/repository"
)

type DriverService struct {
	drivers repository.DriverRepository
	results repository.ResultRepository
}

func NewDriverService(drivers repository.DriverRepository, results repository.ResultRepository) *DriverService {
	return &DriverService{drivers: drivers, results: results}
}

func (s *DriverService) GetBySlug(ctx context.Context, slug string) (*DriverDTO, error) {
	driver, err := s.drivers.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, &NotFoundError{Resource: "Driver", ID: slug}
	}
	dto := newDriverDTO(driver)
	return &dto, nil
}

func (s *DriverService) BySeries(ctx context.Context, seriesSlug string) ([]DriverDTO, error) {
	drivers, err := s.drivers.FindBySeries(ctx, seriesSlug)
	if err != nil {
		return nil, err
	}
	dtos := make([]DriverDTO, 0, len(drivers))
	for i := range drivers {
		dtos = append(dtos, newDriverDTO(&drivers[i]))
	}
	return dtos, nil
}

// Results lists a driver's race-session outcomes. With a year it returns that
// season in session start order; without, the full history newest first.
func (s *DriverService) Results(ctx context.Context, slug string, year *int) ([]DriverResultDTO, error) {
	var (
		rows []models.Result
		err  error
	)
	if year != nil {
		rows, err = s.results.FindRaceResultsByDriverAndYear(ctx, slug, *year)
	} else {
		rows, err = s.results.FindRaceResultsByDriver(ctx, slug)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]DriverResultDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, newDriverResultDTO(&rows[i]))
	}
	return dtos, nil
}

func newDriverResultDTO(r *models.Result) DriverResultDTO {
	dto := DriverResultDTO{
		Gap:    r.Gap,
		Status: r.Status,
	}
	if r.Position != nil {
		dto.Position = *r.Position
	}
	if r.Session != nil && r.Session.Event != nil {
		event := r.Session.Event
		dto.EventName = event.Name
		dto.EventSlug = event.Slug
		dto.Date = event.StartDate
		if event.Season != nil {
			dto.Year = event.Season.Year
			if event.Season.Series != nil {
				dto.SeriesSlug = event.Season.Series.Slug
			}
		}
	}
	return dto
}
