package readstore

import (
	"context"
	"time"

	"parkspot/internal/infra"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	GetBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserFirstPageParams) ([]sqlc.GetBookingsByUserFirstPageRow, error)
	GetBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserKeysetParams) ([]sqlc.GetBookingsByUserKeysetRow, error)
	GetBookingsBySpot(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsBySpotParams) ([]sqlc.GetBookingsBySpotRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &queries.BookingView{
		ID:             row.ID,
		UserID:         row.UserID,
		UserName:       row.UserName,
		UserEmail:      row.UserEmail,
		SpotID:         row.SpotID,
		SpotTitle:      row.SpotTitle,
		SpotAddress:    row.SpotAddress,
		SpotOwnerID:    row.SpotOwnerID,
		SpotTimeZone:   row.SpotTimeZone,
		TotalSlots:     row.TotalSlots,
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		EndTime:        pgconv.TimeFromPgtype(row.EndTime),
		TotalAmount:    row.TotalAmount,
		Status:         row.Status,
		PaymentStatus:  row.PaymentStatus,
		PaymentOrderID: row.PaymentOrderID,
		PaymentID:      pgconv.StringPtrFromPgtype(row.PaymentID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsByUserFirstPage(ctx, r.db, sqlc.GetBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings first page by user", err)
	}
	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(sqlc.GetBookingsBySpotRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsByUserKeyset(ctx, r.db, sqlc.GetBookingsByUserKeysetParams{
		UserID:    userID,
		Limit:     limit,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings keyset by user", err)
	}
	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(sqlc.GetBookingsBySpotRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindBySpot(ctx context.Context, spotID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsBySpot(ctx, r.db, sqlc.GetBookingsBySpotParams{
		SpotID: spotID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings by spot", err)
	}
	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(row)
	}
	return result, nil
}

// the three list queries share one column set, so their rows convert into each other
func toBookingListItem(row sqlc.GetBookingsBySpotRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            row.ID,
		SpotID:        row.SpotID,
		SpotTitle:     row.SpotTitle,
		TotalSlots:    row.TotalSlots,
		StartTime:     pgconv.TimeFromPgtype(row.StartTime),
		EndTime:       pgconv.TimeFromPgtype(row.EndTime),
		TotalAmount:   row.TotalAmount,
		Status:        row.Status,
		PaymentStatus: row.PaymentStatus,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
