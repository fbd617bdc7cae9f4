package payment

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errs.New("payment amount must be positive")

// Order is the gateway-side order a client pays against.
// Amount is expressed in minor currency units.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	KeyID    string
}

// Gateway issues orders and verifies checkout signatures the same way the hosted
// checkout does: hex(HMAC-SHA256(secret, "<order_id>|<payment_id>")).
type Gateway struct {
	keyID    string
	secret   []byte
	currency string
}

func NewGateway(cfg config.PaymentConfig) *Gateway {
	return &Gateway{
		keyID:    cfg.KeyID,
		secret:   []byte(cfg.KeySecret),
		currency: cfg.Currency,
	}
}

func (g *Gateway) CreateOrder(bookingID uuid.UUID, amount decimal.Decimal) (Order, error) {
	if !amount.IsPositive() {
		return Order{}, ErrInvalidAmount
	}
	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		return Order{}, errs.Wrap(err, "generate order id")
	}
	id := "order_" + strings.ReplaceAll(bookingID.String(), "-", "")[:12] + hex.EncodeToString(suffix)
	return g.OrderOf(id, amount), nil
}

// OrderOf describes an already issued order, e.g. when a booking request is replayed.
func (g *Gateway) OrderOf(orderID string, amount decimal.Decimal) Order {
	return Order{
		ID:       orderID,
		Amount:   amount.Shift(2).Round(0).IntPart(),
		Currency: g.currency,
		KeyID:    g.keyID,
	}
}

func (g *Gateway) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *Gateway) Verify(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	expected := g.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

func (g *Gateway) KeyID() string { return g.keyID }
