package commands

import (
	"context"

	"parkspot/internal/domain/user"
	"parkspot/internal/infra/payment"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenService is satisfied by *jwt.Service.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateToken(tokenString string, expected jwt.TokenType) (*jwt.Claims, error)
}

// PasswordHasher is satisfied by *password.Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// PaymentGateway is satisfied by *payment.Gateway.
type PaymentGateway interface {
	CreateOrder(bookingID uuid.UUID, amount decimal.Decimal) (payment.Order, error)
	OrderOf(orderID string, amount decimal.Decimal) payment.Order
	Verify(orderID, paymentID, signature string) bool
}

type RecentSearchWriter interface {
	Push(ctx context.Context, userID uuid.UUID, search queries.RecentSearch) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
