package services

import (
	"context"
	"testing"
	"time"

	"github.com/pitwall/pitwallapi/models"
)

func TestFeedPage(t *testing.T) {
	repo := &mockFeedRepo{
		findPageFn: func(ctx context.Context, seriesSlug string, page, size int) ([]models.FeedItem, int, error) {
			return []models.FeedItem{
				{
					ID: 1, Type: "article", Title: "Spa preview",
					PublishedAt: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
					Series:      &models.Series{Slug: "f1", Name: "Formula 1", ColorPrimary: "#e10600"},
					Event:       &models.Event{ID: 3, Slug: "belgian-gp-2026"},
				},
				{
					ID: 2, Type: "video", Title: "Onboard lap",
					PublishedAt: time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
				},
			}, 41, nil
		},
	}
	svc := NewFeedService(repo)

	page, err := svc.Page(context.Background(), "f1", 0, 20)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if page.TotalElements != 41 {
		t.Errorf("totalElements = %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", page.TotalPages)
	}
	if len(page.Content) != 2 {
		t.Fatalf("content length = %d", len(page.Content))
	}
	if page.Content[0].SeriesSlug == nil || *page.Content[0].SeriesSlug != "f1" {
		t.Errorf("seriesSlug = %v", page.Content[0].SeriesSlug)
	}
	if page.Content[0].EventSlug == nil || *page.Content[0].EventSlug != "belgian-gp-2026" {
		t.Errorf("eventSlug = %v", page.Content[0].EventSlug)
	}
	// Items without associations keep null series/event fields.
	if page.Content[1].SeriesSlug != nil || page.Content[1].EventID != nil {
		t.Errorf("unassociated item has series/event: %+v", page.Content[1])
	}
}

func TestFeedPageTotals(t *testing.T) {
	cases := []struct {
		total, size, wantPages int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 10, 10},
	}
	for _, tc := range cases {
		repo := &mockFeedRepo{
			findPageFn: func(ctx context.Context, seriesSlug string, page, size int) ([]models.FeedItem, int, error) {
				return nil, tc.total, nil
			},
		}
		page, err := svcPage(t, repo, tc.size)
		if err != nil {
			t.Fatalf("Page returned error: %v", err)
		}
		if page.TotalPages != tc.wantPages {
			t.Errorf("total=%d size=%d: totalPages = %d, want %d", tc.total, tc.size, page.TotalPages, tc.wantPages)
		}
		if page.Content == nil {
			t.Error("content must be [] even when empty")
		}
	}
}

func svcPage(t *testing.T, repo *mockFeedRepo, size int) (*FeedPage, error) {
	t.Helper()
	return NewFeedService(repo).Page(context.Background(), "", 0, size)
}
