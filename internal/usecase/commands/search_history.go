package commands

import (
	"context"
	"log/slog"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type SearchHistoryCommands interface {
	// Record is best effort; failures are logged and swallowed.
	Record(ctx context.Context, userID uuid.UUID, search queries.RecentSearch)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type searchHistoryCommandsImpl struct {
	store RecentSearchWriter
}

func NewSearchHistoryCommands(store RecentSearchWriter) SearchHistoryCommands {
	return &searchHistoryCommandsImpl{store: store}
}

func (c *searchHistoryCommandsImpl) Record(ctx context.Context, userID uuid.UUID, search queries.RecentSearch) {
	if err := c.store.Push(ctx, userID, search); err != nil {
		slog.Warn("検索履歴の保存に失敗しました", "user_id", userID, "error", err.Error())
	}
}

func (c *searchHistoryCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return c.store.Clear(ctx, userID)
}
