package queries

import (
	"parkspot/internal/domain/user"
	"parkspot/internal/pkg/errs"
)

var (
	ErrInvalidCursor   = errs.New("invalid cursor")
	ErrInvalidSearch   = errs.New("invalid search parameters")
	ErrSpotNotFound    = errs.New("spot not found")
	ErrSpotAccess      = errs.New("spot access denied")
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrReviewNotFound  = errs.New("review not found")
)

func isAdmin(role string) bool {
	return user.Role(role) == user.RoleAdmin
}

// nextCursor trims rows fetched with limit+1 and returns the cursor for the following page.
func nextCursor[T any](rows []T, limit int, key func(T) Cursor) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	c := key(rows[limit-1])
	return rows[:limit], &c
}
