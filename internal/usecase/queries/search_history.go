package queries

import (
	"context"

	"github.com/google/uuid"
)

type RecentSearchReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]RecentSearch, error)
}

type SearchHistoryQueries interface {
	ListRecent(ctx context.Context, userID uuid.UUID) ([]RecentSearch, error)
}

type searchHistoryQueriesImpl struct {
	store RecentSearchReader
}

func NewSearchHistoryQueries(store RecentSearchReader) SearchHistoryQueries {
	return &searchHistoryQueriesImpl{store: store}
}

func (q *searchHistoryQueriesImpl) ListRecent(ctx context.Context, userID uuid.UUID) ([]RecentSearch, error) {
	items, err := q.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []RecentSearch{}
	}
	return items, nil
}
