//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestUserPassword matches the bcrypt hash stored by CreateTestUser.
const TestUserPassword = "password123"

const testUserPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db Querier, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) WHERE is_active = true DO NOTHING`,
		userID, email, testUserPasswordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

type SpotFixture struct {
	OwnerID    uuid.UUID
	HourlyRate decimal.Decimal
	Lat        float64
	Lng        float64
	TotalSlots int
	TimeZone   string
}

func DefaultSpotFixture(ownerID uuid.UUID) SpotFixture {
	return SpotFixture{
		OwnerID:    ownerID,
		HourlyRate: decimal.NewFromInt(300),
		Lat:        35.6580,
		Lng:        139.7016,
		TotalSlots: 5,
		TimeZone:   "UTC",
	}
}

// CreateTestSpot inserts a spot open all day, every day.
func CreateTestSpot(t *testing.T, db Querier, f SpotFixture) uuid.UUID {
	t.Helper()

	spotID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO spots
		(id, owner_id, title, address, lat, lng, hourly_rate, open_time, close_time, available_days, time_zone, total_slots, available_slots)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '00:00', '23:59', $8, $9, $10, $10)`,
		spotID, f.OwnerID, "Test Spot", "1-1 Test Street", f.Lat, f.Lng, f.HourlyRate,
		[]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, f.TimeZone, f.TotalSlots)
	require.NoError(t, err)

	return spotID
}

// CreateTestBooking inserts a booking row directly and does not touch the spot's slot counter.
func CreateTestBooking(t *testing.T, db Querier, userID, spotID uuid.UUID, status, paymentStatus string, start time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings
		(id, user_id, spot_id, total_slots, start_time, end_time, total_amount, status, payment_status, payment_order_id)
		VALUES ($1, $2, $3, 1, $4, $5, 600, $6, $7, $8)`,
		bookingID, userID, spotID, start, start.Add(2*time.Hour), status, paymentStatus, "order_"+bookingID.String())
	require.NoError(t, err)

	return bookingID
}

func CountNotificationJobs(t *testing.T, db Querier, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

func AvailableSlots(t *testing.T, db Querier, spotID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT available_slots FROM spots WHERE id = $1", spotID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
