package services

import (
	"context"

	"github.com/pitwall/pitwallapi/repository"
)

// FeedPage is one page of feed items plus pagination metadata.
type FeedPage struct {
	Content       []FeedItemDTO `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int           `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
}

type FeedService struct {
	feed repository.FeedRepository
}

func NewFeedService(feed repository.FeedRepository) *FeedService {
	return &FeedService{feed: feed}
}

// Page returns feed items newest first, optionally filtered to one series.
func (s *FeedService) Page(ctx context.Context, seriesSlug string, page, size int) (*FeedPage, error) {
	items, total, err := s.feed.FindPage(ctx, seriesSlug, page, size)
	if err != nil {
		return nil, err
	}

	out := &FeedPage{
		Content:       make([]FeedItemDTO, 0, len(items)),
		Page:          page,
		Size:          size,
		TotalElements: total,
	}
	if size > 0 {
		out.TotalPages = (total + size - 1) / size
	}
	for i := range items {
		out.Content = append(out.Content, newFeedItemDTO(&items[i]))
	}
	return out, nil
}
