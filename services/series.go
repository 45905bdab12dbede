package services

import (
	"context"

	"github.com/pitwall/pitwallapi/repository"
)

type SeriesService struct {
	series repository.SeriesRepository
}

func NewSeriesService(series repository.SeriesRepository) *SeriesService {
	return &SeriesService{series: series}
}

func (s *SeriesService) List(ctx context.Context) ([]SeriesDTO, error) {
	rows, err := s.series.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]SeriesDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, newSeriesDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *SeriesService) GetBySlug(ctx context.Context, slug string) (*SeriesDTO, error) {
	series, err := s.series.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, &NotFoundError{Resource: "Series", ID: slug}
	}
	dto := newSeriesDTO(series)
	return &dto, nil
}
