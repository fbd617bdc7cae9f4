//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"parkspot/internal/domain/review"
	"parkspot/internal/infra"
	"parkspot/internal/infra/repository"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/tests/common/builder"
	repositorymock "parkspot/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review created successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReviewParams) (uuid.UUID, error) {
						assert.Equal(t, rev.ID(), arg.ID)
						assert.Equal(t, rev.BookingID(), arg.BookingID)
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, _ *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: one review per booking",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, _ *review.Review, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: booking row missing",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, _ *review.Review, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			reviewID, actualError := repo.Create(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, reviewID, "reviewID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainReview.ID(), reviewID)
			}
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReviewRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row is rebuilt into the domain review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries, mockDB)

		b := builder.NewReviewBuilder().WithImages("https://img.example.com/a.jpg").WithOwnerReply("Thank you")
		row := b.BuildInfra()
		mockQueries.EXPECT().GetReviewByID(ctx, mockDB, b.ID).Return(row, nil)

		got, err := repo.FindByID(ctx, mockDB, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, b.Rating, got.Rating().Value())
		assert.Equal(t, []string{"https://img.example.com/a.jpg"}, got.Images().URLs())
		require.NotNil(t, got.OwnerReply())
		assert.Equal(t, "Thank you", got.OwnerReply().String())
	})

	t.Run("error: no rows maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetReviewByID(ctx, mockDB, gomock.Any()).Return(sqlc.Reviews{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, mockDB, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Update / Reply / Delete Tests
// =============================================================================

func TestReviewRepository_RowCountWrites(t *testing.T) {
	ctx := context.Background()

	type write func(repo *repository.ReviewRepository, tx sqlc.DBTX, rev *review.Review) error
	type expect func(mock *repositorymock.MockReviewWriteQueries, tx sqlc.DBTX, n int64, err error)

	ops := []struct {
		name   string
		call   write
		expect expect
	}{
		{
			name: "update",
			call: func(repo *repository.ReviewRepository, tx sqlc.DBTX, rev *review.Review) error {
				return repo.Update(ctx, tx, rev)
			},
			expect: func(mock *repositorymock.MockReviewWriteQueries, tx sqlc.DBTX, n int64, err error) {
				mock.EXPECT().UpdateReview(ctx, tx, gomock.Any()).Return(n, err)
			},
		},
		{
			name: "reply",
			call: func(repo *repository.ReviewRepository, tx sqlc.DBTX, rev *review.Review) error {
				return repo.Reply(ctx, tx, rev)
			},
			expect: func(mock *repositorymock.MockReviewWriteQueries, tx sqlc.DBTX, n int64, err error) {
				mock.EXPECT().ReplyToReview(ctx, tx, gomock.Any()).Return(n, err)
			},
		},
		{
			name: "delete",
			call: func(repo *repository.ReviewRepository, tx sqlc.DBTX, rev *review.Review) error {
				return repo.Delete(ctx, tx, rev.ID())
			},
			expect: func(mock *repositorymock.MockReviewWriteQueries, tx sqlc.DBTX, n int64, err error) {
				mock.EXPECT().DeleteReview(ctx, tx, gomock.Any()).Return(n, err)
			},
		},
	}

	outcomes := []struct {
		name       string
		rows       int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row affected", rows: 1},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{name: "error: review not found", rows: 0, expectKind: infra.KindNotFound},
	}

	for _, op := range ops {
		for _, oc := range outcomes {
			t.Run(op.name+" "+oc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
				mockDB := &mockDBTX{}
				repo := repository.NewReviewRepository(mockQueries, mockDB)

				rev, err := builder.NewReviewBuilder().WithOwnerReply("Thanks").BuildDomain()
				require.NoError(t, err)

				op.expect(mockQueries, mockDB, oc.rows, oc.err)
				actualError := op.call(repo, mockDB, rev)

				if oc.expectKind == "" {
					assert.NoError(t, actualError)
					return
				}
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, oc.expectKind), "expected kind [%v] but got (%v)", oc.expectKind, actualError)
			})
		}
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
