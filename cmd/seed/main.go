// Command seed loads a small sample data set for local development.
package main

import (
	"context"
	"log"
	"time"

	"github.com/uptrace/bun"

	"github.com/pitwall/pitwallapi/config"
	"github.com/pitwall/pitwallapi/db"
	"github.com/pitwall/pitwallapi/models"
)

func main() {
	cfg := config.Load()
	bdb := db.Setup(cfg)
	defer bdb.Close()

	ctx := context.Background()
	if err := db.CreateTables(ctx, bdb); err != nil {
		log.Fatalf("create tables: %v", err)
	}
	if err := seed(ctx, bdb); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("sample data loaded")
}

func seed(ctx context.Context, bdb *bun.DB) error {
	return bdb.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		f1 := &models.Series{
			Name:           "Formula 1",
			Slug:           "f1",
			ColorPrimary:   "#e10600",
			ColorSecondary: "#1e1e1e",
		}
		wec := &models.Series{
			Name:           "World Endurance Championship",
			Slug:           "wec",
			ColorPrimary:   "#0046ad",
			ColorSecondary: "#ffffff",
		}
		for _, s := range []*models.Series{f1, wec} {
			if err := upsert(ctx, tx, s, "(slug)", "name"); err != nil {
				return err
			}
		}

		season := &models.Season{SeriesID: f1.ID, Year: 2026}
		if err := upsert(ctx, tx, season, "(series_id, year)", "year"); err != nil {
			return err
		}

		spa := &models.Circuit{
			Name:     "Circuit de Spa-Francorchamps",
			Country:  "Belgium",
			City:     "Stavelot",
			Timezone: "Europe/Brussels",
		}
		if _, err := tx.NewInsert().Model(spa).Exec(ctx); err != nil {
			return err
		}

		event := &models.Event{
			SeasonID:  season.ID,
			CircuitID: spa.ID,
			Name:      "Belgian Grand Prix",
			Slug:      "belgian-gp-2026",
			StartDate: "2026-08-28",
			EndDate:   "2026-08-30",
			Status:    "upcoming",
		}
		if err := upsert(ctx, tx, event, "(slug)", "status"); err != nil {
			return err
		}

		raceStart := time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)
		sessions := []*models.Session{
			{EventID: event.ID, Type: "qualifying", Name: "Qualifying", StartTime: raceStart.Add(-22 * time.Hour), EndTime: raceStart.Add(-21 * time.Hour), Status: "scheduled"},
			{EventID: event.ID, Type: "race", Name: "Race", StartTime: raceStart, EndTime: raceStart.Add(2 * time.Hour), Status: "scheduled"},
		}
		if _, err := tx.NewInsert().Model(&sessions).Exec(ctx); err != nil {
			return err
		}

		teams := []*models.Team{
			{SeriesID: f1.ID, Name: "Scuderia Rosso", ShortName: "Rosso", Color: "#d40000"},
			{SeriesID: f1.ID, Name: "Silver Arrow Racing", ShortName: "Silver", Color: "#00d2be"},
		}
		if _, err := tx.NewInsert().Model(&teams).Exec(ctx); err != nil {
			return err
		}

		num1, num2 := 7, 44
		drivers := []*models.Driver{
			{Name: "Luca Moretti", Number: &num1, TeamID: &teams[0].ID, Nationality: "Italian", Slug: "luca-moretti"},
			{Name: "James Carter", Number: &num2, TeamID: &teams[1].ID, Nationality: "British", Slug: "james-carter"},
		}
		for _, d := range drivers {
			if err := upsert(ctx, tx, d, "(slug)", "name"); err != nil {
				return err
			}
		}

		p1, p2 := 1, 2
		laps := 44
		results := []*models.Result{
			{SessionID: sessions[1].ID, DriverID: drivers[0].ID, Position: &p1, Time: "1:24:18.021", Laps: &laps, Status: "finished"},
			{SessionID: sessions[1].ID, DriverID: drivers[1].ID, Position: &p2, Time: "", Laps: &laps, Gap: "+4.182", Status: "finished"},
		}
		if _, err := tx.NewInsert().Model(&results).Exec(ctx); err != nil {
			return err
		}

		standings := []*models.DriverStanding{
			{SeasonID: season.ID, DriverID: drivers[0].ID, Position: 1, Points: "216.5", Wins: 5},
			{SeasonID: season.ID, DriverID: drivers[1].ID, Position: 2, Points: "198", Wins: 4},
		}
		if _, err := tx.NewInsert().Model(&standings).Exec(ctx); err != nil {
			return err
		}
		constructors := []*models.ConstructorStanding{
			{SeasonID: season.ID, TeamID: teams[0].ID, Position: 1, Points: "310.5", Wins: 5},
			{SeasonID: season.ID, TeamID: teams[1].ID, Position: 2, Points: "287", Wins: 4},
		}
		if _, err := tx.NewInsert().Model(&constructors).Exec(ctx); err != nil {
			return err
		}

		feed := []*models.FeedItem{
			{Type: "article", SeriesID: &f1.ID, EventID: &event.ID, Title: "Spa preview: weather set to shake up qualifying", PublishedAt: time.Now().UTC().Add(-2 * time.Hour)},
			{Type: "video", SeriesID: &f1.ID, Title: "Onboard: the fastest lap of the season so far", PublishedAt: time.Now().UTC().Add(-26 * time.Hour)},
		}
		_, err := tx.NewInsert().Model(&feed).Exec(ctx)
		return err
	})
}

// upsert inserts the row or, when the conflict target already exists, updates
// setCol in place and fills in the generated id either way.
func upsert(ctx context.Context, tx bun.Tx, model interface{}, conflict, setCol string) error {
	_, err := tx.NewInsert().
		Model(model).
		On("CONFLICT "+conflict+" DO UPDATE").
		Set(setCol+" = EXCLUDED."+setCol).
		Returning("id").
		Exec(ctx)
	return err
}
