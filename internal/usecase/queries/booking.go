package queries

import (
	"context"
	"time"

	"parkspot/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindBySpot(ctx context.Context, spotID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips access checks; used for read-after-write and idempotent replay.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListBySpot(ctx context.Context, actorID uuid.UUID, actorRole string, spotID uuid.UUID, limit int) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo  BookingReadStore
	spots SpotReadStore
}

func NewBookingQueries(repo BookingReadStore, spots SpotReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo, spots: spots}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error) {
	v, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.UserID != actorID && v.SpotOwnerID != actorID && !isAdmin(actorRole) {
		return nil, ErrBookingAccess
	}
	return v, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := nextCursor(rows, limit, func(b *BookingListItem) Cursor {
		return Cursor{After: EncodeAfterCursor(b.CreatedAt, b.ID)}
	})
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListBySpot(ctx context.Context, actorID uuid.UUID, actorRole string, spotID uuid.UUID, limit int) ([]*BookingListItem, error) {
	s, err := q.spots.FindByID(ctx, spotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	if s.OwnerID != actorID && !isAdmin(actorRole) {
		return nil, ErrSpotAccess
	}
	return q.repo.FindBySpot(ctx, spotID, int32(ValidateLimit(limit)))
}
