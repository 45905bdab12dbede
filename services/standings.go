package services

import (
	"context"
	"strings"

	"github.com/pitwall/pitwallapi/models"
	"github.com/pitwall/pitwallapi/repository"
)

// StandingsService produces ranked season standings for a (series, year)
// pair, optionally scoped to a class. Unknown series/year pairs yield empty
// lists, never errors.
type StandingsService struct {
	standings repository.StandingRepository
}

func NewStandingsService(standings repository.StandingRepository) *StandingsService {
	return &StandingsService{standings: standings}
}

// DriverStandings returns driver rows ordered by position ascending. A blank
// className returns all classes intermixed.
func (s *StandingsService) DriverStandings(ctx context.Context, seriesSlug string, year int, className string) ([]StandingDTO, error) {
	rows, err := s.standings.DriverStandings(ctx, seriesSlug, year, strings.TrimSpace(className))
	if err != nil {
		return nil, err
	}

	dtos := make([]StandingDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, newDriverStandingDTO(&rows[i]))
	}
	return dtos, nil
}

// ConstructorStandings is the team-level counterpart of DriverStandings.
func (s *StandingsService) ConstructorStandings(ctx context.Context, seriesSlug string, year int, className string) ([]ConstructorStandingDTO, error) {
	rows, err := s.standings.ConstructorStandings(ctx, seriesSlug, year, strings.TrimSpace(className))
	if err != nil {
		return nil, err
	}

	dtos := make([]ConstructorStandingDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, newConstructorStandingDTO(&rows[i]))
	}
	return dtos, nil
}

// AvailableClasses reports the set union of class names across driver and
// constructor standings for the season. Blank names are excluded here even
// though the unscoped standings queries still return their rows.
func (s *StandingsService) AvailableClasses(ctx context.Context, seriesSlug string, year int) ([]string, error) {
	driverNames, err := s.standings.DriverClassNames(ctx, seriesSlug, year)
	if err != nil {
		return nil, err
	}
	teamNames, err := s.standings.ConstructorClassNames(ctx, seriesSlug, year)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(driverNames)+len(teamNames))
	classes := make([]string, 0, len(driverNames)+len(teamNames))
	for _, names := range [][]string{driverNames, teamNames} {
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			classes = append(classes, name)
		}
	}
	return classes, nil
}

func newDriverStandingDTO(st *models.DriverStanding) StandingDTO {
	dto := StandingDTO{
		Position:  st.Position,
		ClassName: overallClass(st.ClassName),
		Points:    parsePoints(st.Points),
		Wins:      st.Wins,
	}
	if st.Driver != nil {
		dto.DriverName = st.Driver.Name
		dto.DriverSlug = st.Driver.Slug
		dto.DriverNumber = st.Driver.Number
		dto.TeamName, dto.TeamColor = teamNameColor(st.Driver.Team)
	}
	return dto
}

func newConstructorStandingDTO(st *models.ConstructorStanding) ConstructorStandingDTO {
	dto := ConstructorStandingDTO{
		Position:  st.Position,
		ClassName: overallClass(st.ClassName),
		Points:    parsePoints(st.Points),
		Wins:      st.Wins,
	}
	if st.Team != nil {
		dto.TeamName = st.Team.Name
		dto.TeamColor = st.Team.Color
	}
	return dto
}
