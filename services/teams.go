package services

import (
	"context"

	"github.com/pitwall/pitwallapi/models"
	"github.com/pitwall/pitwallapi/repository"
)

type TeamService struct {
	teams repository.TeamRepository
}

func NewTeamService(teams repository.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

func (s *TeamService) BySeries(ctx context.Context, seriesSlug string) ([]TeamDTO, error) {
	teams, err := s.teams.FindBySeries(ctx, seriesSlug)
	if err != nil {
		return nil, err
	}
	dtos := make([]TeamDTO, 0, len(teams))
	for i := range teams {
		dtos = append(dtos, newTeamDTO(&teams[i]))
	}
	return dtos, nil
}

func newTeamDTO(t *models.Team) TeamDTO {
	dto := TeamDTO{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		Color:     t.Color,
	}
	if t.Series != nil {
		dto.SeriesSlug = t.Series.Slug
	}
	return dto
}
