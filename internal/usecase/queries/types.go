package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpotView represents read-optimized spot data
type SpotView struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	Title          string          `json:"title"`
	Address        string          `json:"address"`
	Lat            float64         `json:"lat"`
	Lng            float64         `json:"lng"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	OpenTime       string          `json:"open_time"`
	CloseTime      string          `json:"close_time"`
	AvailableDays  []string        `json:"available_days"`
	TimeZone       string          `json:"time_zone"`
	TotalSlots     int32           `json:"total_slots"`
	AvailableSlots int32           `json:"available_slots"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type SpotSearchResult struct {
	SpotView
	DistanceKm float64 `json:"distance_km"`
}

// BookingView represents a booking joined with its spot and user
type BookingView struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	UserName       string          `json:"user_name"`
	UserEmail      string          `json:"user_email"`
	SpotID         uuid.UUID       `json:"spot_id"`
	SpotTitle      string          `json:"spot_title"`
	SpotAddress    string          `json:"spot_address"`
	SpotOwnerID    uuid.UUID       `json:"spot_owner_id"`
	SpotTimeZone   string          `json:"spot_time_zone"`
	TotalSlots     int32           `json:"total_slots"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"payment_status"`
	PaymentOrderID string          `json:"payment_order_id"`
	PaymentID      *string         `json:"payment_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID       `json:"id"`
	SpotID        uuid.UUID       `json:"spot_id"`
	SpotTitle     string          `json:"spot_title"`
	TotalSlots    int32           `json:"total_slots"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Phone     *string    `json:"phone,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// RecentSearch is one entry of a user's search history
type RecentSearch struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radius_km"`
}
