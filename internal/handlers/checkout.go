package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/avelinejewellery/aveline/internal/money"
	"github.com/avelinejewellery/aveline/internal/stripe"
	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	stripeService *stripe.Service
	queries       *db.Queries
	errs          *ErrorWriter
	baseURL       string
}

func NewCheckoutHandler(stripeService *stripe.Service, queries *db.Queries, errs *ErrorWriter, baseURL string) *CheckoutHandler {
	return &CheckoutHandler{
		stripeService: stripeService,
		queries:       queries,
		errs:          errs,
		baseURL:       baseURL,
	}
}

// CartItemRequest is one client-supplied cart line. Price arrives as either a
// bare number or a string that may carry a currency symbol; both are
// normalized through the money package.
type CartItemRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Title    string          `json:"title"`
	Price    json.RawMessage `json:"price"`
	Quantity int64           `json:"quantity"`
}

// DisplayName prefers name over the legacy title field.
func (r CartItemRequest) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

type CreateCheckoutSessionRequest struct {
	Cart           []CartItemRequest `json:"cart"`
	CustomerEmail  string            `json:"customer_email"`
	GuestSessionID string            `json:"guest_session_id"`
}

type CreateCheckoutSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// linesFromCart normalizes the client cart into priced Stripe lines.
func linesFromCart(cart []CartItemRequest) ([]stripe.CartLine, error) {
	lines := make([]stripe.CartLine, 0, len(cart))
	for i, item := range cart {
		name := item.DisplayName()
		if name == "" {
			return nil, fmt.Errorf("cart item %d has no name", i)
		}

		unitAmount, err := parsePriceField(item.Price)
		if err != nil {
			return nil, fmt.Errorf("cart item %q: %w", name, err)
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		lines = append(lines, stripe.CartLine{
			Name:       name,
			UnitAmount: unitAmount,
			Quantity:   quantity,
		})
	}
	return lines, nil
}

// parsePriceField accepts both JSON numbers and strings like "£12.50".
func parsePriceField(raw json.RawMessage) (money.Pence, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing price")
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return money.ParsePrice(asString)
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if asNumber < 0 {
			return 0, fmt.Errorf("negative price")
		}
		return money.FromMajor(asNumber), nil
	}

	return 0, fmt.Errorf("unparseable price %s", raw)
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	var req CreateCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if len(req.Cart) == 0 {
		return h.errs.JSON(c, http.StatusBadRequest, "Cart must be a non-empty array", nil)
	}

	lines, err := linesFromCart(req.Cart)
	if err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid cart", err)
	}

	session, err := h.stripeService.CreateCheckoutSession(
		lines,
		req.CustomerEmail,
		h.baseURL+"/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		h.baseURL+"/checkout/cancelled",
	)
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to create checkout session", err)
	}

	// Feed the abandoned-cart job. Best effort: a capture failure must not
	// block the customer from paying.
	if req.GuestSessionID != "" {
		h.recordCheckoutAttempt(c, &req)
	}

	return c.JSON(http.StatusOK, CreateCheckoutSessionResponse{
		URL:       session.URL,
		SessionID: session.ID,
	})
}

func (h *CheckoutHandler) recordCheckoutAttempt(c echo.Context, req *CreateCheckoutSessionRequest) {
	type storedItem struct {
		ID       string `json:"id"`
		Quantity int64  `json:"quantity"`
	}

	stored := make([]storedItem, 0, len(req.Cart))
	for _, item := range req.Cart {
		if item.ID == "" {
			continue
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		stored = append(stored, storedItem{ID: item.ID, Quantity: quantity})
	}

	cartJSON, err := json.Marshal(stored)
	if err != nil {
		slog.Error("failed to marshal checkout attempt cart", "error", err)
		return
	}

	_, err = h.queries.UpsertCheckoutAttempt(c.Request().Context(), db.UpsertCheckoutAttemptParams{
		GuestSessionID: req.GuestSessionID,
		Email:          req.CustomerEmail,
		EmailValid:     boolToInt(isValidEmail(req.CustomerEmail)),
		CartJson:       string(cartJSON),
	})
	if err != nil {
		slog.Error("failed to record checkout attempt", "guest_session_id", req.GuestSessionID, "error", err)
	}
}

func isValidEmail(addr string) bool {
	if addr == "" {
		return false
	}
	_, err := mail.ParseAddress(addr)
	return err == nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
