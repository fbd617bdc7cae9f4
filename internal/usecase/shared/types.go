package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	SpotID  uuid.UUID
	Status  string
	EndTime time.Time
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)
