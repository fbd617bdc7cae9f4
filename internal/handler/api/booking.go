package api

import (
	"context"
	"net/http"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

var (
	errIdempotencyKeyRequired = errs.New("idempotency key required")
	errIdempotencyKeyFormat   = errs.New("invalid idempotency key format")
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Quote booking
// @Description Validate a booking window and price it without reserving anything
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.cmds.Quote(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithMappedError(c, err, "見積もりに失敗しました")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Create booking
// @Description Reserve slots and open a payment order. Requires an Idempotency-Key header (UUID); a retried request returns the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID identifying this booking attempt"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "Replayed"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, _, ok := requireActor(c)
	if !ok {
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A valid Idempotency-Key header is required", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), userID, key, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err, "予約の作成に失敗しました")
		return
	}

	res, err := resdto.FromCreateBookingResult(result)
	if err != nil {
		abortWithMappedError(c, err, "予約レスポンスの変換に失敗しました")
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, res)
}

// @Summary My bookings
// @Description Bookings of the caller, newest first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, _, ok := requireActor(c)
	if !ok {
		return
	}
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, queryCursor(c), queryLimit(c))
	if err != nil {
		abortWithMappedError(c, err, "予約一覧の取得に失敗しました")
		return
	}
	res, err := resdto.FromBookingList(items)
	if err != nil {
		abortWithMappedError(c, err, "予約一覧の変換に失敗しました")
		return
	}
	resp := gin.H{"bookings": res}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Visible to the booking user, the spot owner and admins
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid booking id")
	if !ok {
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, role.String(), id)
	if err != nil {
		abortWithMappedError(c, err, "予約の取得に失敗しました")
		return
	}
	h.respondBooking(c, view)
}

// @Summary Confirm payment
// @Description Verify the gateway signature. On failure the booking is cancelled, a refund is queued and 402 is returned.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Gateway callback fields"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment/confirm [post]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid booking id")
	if !ok {
		return
	}
	actorID, _, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.ConfirmPayment(c.Request.Context(), actorID, id, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err, "決済の確認に失敗しました")
		return
	}
	h.respondBooking(c, view)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel, "予約のキャンセルに失敗しました")
}

// @Summary Check in
// @Description Spot owner marks a paid booking as checked in
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.cmds.CheckIn, "チェックインに失敗しました")
}

// @Summary Complete booking
// @Description Spot owner completes a checked-in booking and frees its slots
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.Complete, "予約の完了処理に失敗しました")
}

// @Summary Send receipt
// @Description Queue a receipt email for a paid booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 202 "Accepted"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/receipt [post]
func (h *BookingHandler) SendReceipt(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid booking id")
	if !ok {
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.SendReceipt(c.Request.Context(), actorID, role.String(), id); err != nil {
		abortWithMappedError(c, err, "領収書の送信依頼に失敗しました")
		return
	}
	c.Status(http.StatusAccepted)
}

type bookingTransition func(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error)

func (h *BookingHandler) transition(c *gin.Context, fn bookingTransition, failMsg string) {
	id, ok := parseIDParam(c, "id", "Invalid booking id")
	if !ok {
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := fn(c.Request.Context(), actorID, role.String(), id)
	if err != nil {
		abortWithMappedError(c, err, failMsg)
		return
	}
	h.respondBooking(c, view)
}

func (h *BookingHandler) respondBooking(c *gin.Context, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		abortWithMappedError(c, err, "予約レスポンスの変換に失敗しました")
		return
	}
	c.JSON(http.StatusOK, res)
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errIdempotencyKeyFormat)
	}
	return key, nil
}
