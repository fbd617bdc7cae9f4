//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkspot/internal/infra"
	"parkspot/internal/infra/repository"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"
	"parkspot/tests/common/builder"
	repositorymock "parkspot/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpotRepository_ReserveAndRelease(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	spotID := uuid.New()

	testCases := []struct {
		name       string
		release    bool
		rows       int64
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: slots reserved", rows: 1},
		{name: "error: not enough free slots", rows: 0, expectKind: infra.KindConflict},
		{name: "error: reserve hits the database", mockErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
		{name: "success: slots released", release: true, rows: 1},
		{name: "error: release would exceed capacity", release: true, rows: 0, expectKind: infra.KindConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSpotRepository(mockQueries, mockDB)

			var err error
			if tc.release {
				mockQueries.EXPECT().ReleaseSpotSlots(ctx, mockDB, sqlc.ReleaseSpotSlotsParams{
					Slots: 2, UpdatedAt: pgconv.TimeToPgtype(now), ID: spotID,
				}).Return(tc.rows, tc.mockErr)
				err = repo.ReleaseSlots(ctx, mockDB, spotID, 2, now)
			} else {
				mockQueries.EXPECT().ReserveSpotSlots(ctx, mockDB, sqlc.ReserveSpotSlotsParams{
					Slots: 2, UpdatedAt: pgconv.TimeToPgtype(now), ID: spotID,
				}).Return(tc.rows, tc.mockErr)
				err = repo.ReserveSlots(ctx, mockDB, spotID, 2, now)
			}

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestSpotRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: schedule survives the round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(mockQueries, &mockDBTX{})

		b := builder.NewSpotBuilder().WithHours("9:00 AM", "6:00 PM").WithDays("Mon", "Fri").WithTimeZone("Asia/Tokyo").WithSlots(6, 4)
		mockQueries.EXPECT().GetSpotByIDForUpdate(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)

		got, err := repo.FindByIDForUpdate(ctx, &mockDBTX{}, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, 6, got.TotalSlots())
		assert.Equal(t, 4, got.AvailableSlots())
		assert.Equal(t, "Asia/Tokyo", got.Schedule().Location().String())
	})

	t.Run("error: unknown spot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetSpotByIDForUpdate(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Spots{}, pgx.ErrNoRows)

		_, err := repo.FindByIDForUpdate(ctx, &mockDBTX{}, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt stored schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(mockQueries, &mockDBTX{})

		row := builder.NewSpotBuilder().BuildInfra()
		row.OpenTime = "25:99"
		mockQueries.EXPECT().GetSpotByIDForUpdate(ctx, gomock.Any(), row.ID).Return(row, nil)

		_, err := repo.FindByIDForUpdate(ctx, &mockDBTX{}, row.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSpotRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update: zero rows is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(mockQueries, &mockDBTX{})

		s, err := builder.NewSpotBuilder().BuildDomain()
		require.NoError(t, err)
		mockQueries.EXPECT().UpdateSpot(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err = repo.Update(ctx, &mockDBTX{}, s)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete: success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().DeleteSpot(ctx, gomock.Any(), id).Return(int64(1), nil)

		assert.NoError(t, repo.Delete(ctx, &mockDBTX{}, id))
	})

	t.Run("count active bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().CountActiveBookingsBySpot(ctx, gomock.Any(), id).Return(int64(3), nil)

		n, err := repo.CountActiveBookings(ctx, &mockDBTX{}, id)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}
