package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pitwall/pitwallapi/models"
)

func TestSeriesList(t *testing.T) {
	repo := &mockSeriesRepo{
		findAllFn: func(ctx context.Context) ([]models.Series, error) {
			return []models.Series{
				{ID: 1, Name: "Formula 1", Slug: "f1"},
				{ID: 2, Name: "World Endurance Championship", Slug: "wec"},
			}, nil
		},
	}
	svc := NewSeriesService(repo)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "f1" || got[1].Slug != "wec" {
		t.Errorf("unexpected list: %+v", got)
	}
}

func TestSeriesGetBySlugNotFound(t *testing.T) {
	svc := NewSeriesService(&mockSeriesRepo{})

	_, err := svc.GetBySlug(context.Background(), "nascar")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "Series" || nf.ID != "nascar" {
		t.Errorf("err = %v, want Series NotFoundError", err)
	}
	if err.Error() != "Series not found: nascar" {
		t.Errorf("message = %q", err.Error())
	}
}
