//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/infra"
	"parkspot/internal/infra/readstore"
	sqlc "parkspot/internal/infra/sqlc/generated"
	readstoremock "parkspot/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	start := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		row           sqlc.GetBookingViewByIDRow
		queryErr      error
		wantErr       bool
		wantKind      infra.RepositoryErrorKind
		wantPaymentID *string
	}{
		{
			name: "success: paid booking",
			row: sqlc.GetBookingViewByIDRow{
				ID:             bookingID,
				UserID:         uuid.New(),
				SpotID:         uuid.New(),
				TotalSlots:     2,
				StartTime:      ts(start),
				EndTime:        ts(start.Add(2 * time.Hour)),
				TotalAmount:    decimal.RequireFromString("1200.00"),
				Status:         "confirmed",
				PaymentStatus:  "paid",
				PaymentOrderID: "order_abc",
				PaymentID:      pgtype.Text{String: "pay_123", Valid: true},
				SpotOwnerID:    uuid.New(),
				SpotTimeZone:   "Asia/Tokyo",
				UserEmail:      "driver@example.com",
				UserName:       "Hanako",
			},
			wantPaymentID: func() *string { s := "pay_123"; return &s }(),
		},
		{
			name: "success: pending booking has no payment id",
			row: sqlc.GetBookingViewByIDRow{
				ID:            bookingID,
				StartTime:     ts(start),
				EndTime:       ts(start.Add(time.Hour)),
				Status:        "pending",
				PaymentStatus: "pending",
			},
		},
		{
			name:     "error: not found",
			queryErr: pgx.ErrNoRows,
			wantErr:  true,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "error: database error",
			queryErr: errDBConnectionLost,
			wantErr:  true,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			mockQueries.EXPECT().GetBookingViewByID(ctx, gomock.Any(), bookingID).Return(tc.row, tc.queryErr)

			view, err := readstore.NewBookingReadStore(mockQueries, nil).FindByID(ctx, bookingID)

			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tc.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.row.Status, view.Status)
			assert.Equal(t, tc.row.SpotOwnerID, view.SpotOwnerID)
			assert.True(t, tc.row.TotalAmount.Equal(view.TotalAmount))
			assert.True(t, start.Equal(view.StartTime))
			assert.Equal(t, tc.wantPaymentID, view.PaymentID)
		})
	}
}

func TestBookingReadStore_FindByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("success: first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		rows := []sqlc.GetBookingsByUserFirstPageRow{
			{ID: uuid.New(), SpotTitle: "Ebisu Garage", TotalSlots: 1, Status: "pending", CreatedAt: ts(created)},
		}
		mockQueries.EXPECT().
			GetBookingsByUserFirstPage(ctx, gomock.Any(), sqlc.GetBookingsByUserFirstPageParams{UserID: userID, Limit: 21}).
			Return(rows, nil)

		items, err := readstore.NewBookingReadStore(mockQueries, nil).FindByUserFirstPage(ctx, userID, 21)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, rows[0].ID, items[0].ID)
		assert.Equal(t, "Ebisu Garage", items[0].SpotTitle)
		assert.True(t, created.Equal(items[0].CreatedAt))
	})

	t.Run("success: keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		lastID := uuid.New()
		want := sqlc.GetBookingsByUserKeysetParams{UserID: userID, Limit: 11, CreatedAt: ts(created), ID: lastID}
		mockQueries.EXPECT().GetBookingsByUserKeyset(ctx, gomock.Any(), want).Return([]sqlc.GetBookingsByUserKeysetRow{}, nil)

		items, err := readstore.NewBookingReadStore(mockQueries, nil).FindByUserKeyset(ctx, userID, created, lastID, 11)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: first page failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().GetBookingsByUserFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := readstore.NewBookingReadStore(mockQueries, nil).FindByUserFirstPage(ctx, userID, 21)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_FindBySpot(t *testing.T) {
	ctx := context.Background()
	spotID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
	rows := []sqlc.GetBookingsBySpotRow{
		{ID: uuid.New(), SpotID: spotID, Status: "checked_in", TotalAmount: decimal.NewFromInt(500)},
		{ID: uuid.New(), SpotID: spotID, Status: "confirmed", TotalAmount: decimal.NewFromInt(250)},
	}
	mockQueries.EXPECT().
		GetBookingsBySpot(ctx, gomock.Any(), sqlc.GetBookingsBySpotParams{SpotID: spotID, Limit: 50}).
		Return(rows, nil)

	items, err := readstore.NewBookingReadStore(mockQueries, nil).FindBySpot(ctx, spotID, 50)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "checked_in", items[0].Status)
	assert.True(t, decimal.NewFromInt(250).Equal(items[1].TotalAmount))
}
