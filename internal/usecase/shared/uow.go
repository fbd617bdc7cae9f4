package shared

import (
	"context"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/review"
	"parkspot/internal/domain/spot"
	"parkspot/internal/domain/user"
	sqlc "parkspot/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Spots() SpotRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SpotByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type SpotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*spot.Spot, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// ReserveSlots fails with KindConflict when fewer than slots remain.
	ReserveSlots(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, slots int, now time.Time) error
	ReleaseSlots(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, slots int, now time.Time) error
	CountActiveBookings(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByPaymentOrderIDForUpdate(ctx context.Context, tx sqlc.DBTX, orderID string) (*booking.Booking, error)
	UpdateState(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Reply(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcSpotRatingStats(ctx context.Context, tx sqlc.DBTX, spotID uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, responseHash string, bookingID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, nextRunAt, now time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}
