package handlers

import (
	"net/http"

	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CaptureHandler covers the small write-only endpoints: checkout email
// capture for the recovery job, newsletter signups, contact form, and
// search logging.
type CaptureHandler struct {
	queries *db.Queries
	errs    *ErrorWriter
}

func NewCaptureHandler(queries *db.Queries, errs *ErrorWriter) *CaptureHandler {
	return &CaptureHandler{queries: queries, errs: errs}
}

type CaptureEmailRequest struct {
	GuestSessionID string `json:"guest_session_id"`
	Email          string `json:"email"`
	CartJSON       string `json:"cart_json"`
}

// CaptureEmail records the address a customer typed at checkout before they
// pay, so an abandoned attempt still has somewhere to send the nudge.
func (h *CaptureHandler) CaptureEmail(c echo.Context) error {
	var req CaptureEmailRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if req.GuestSessionID == "" {
		return h.errs.JSON(c, http.StatusBadRequest, "guest_session_id required", nil)
	}

	cartJSON := req.CartJSON
	if cartJSON == "" {
		cartJSON = "[]"
	}

	_, err := h.queries.UpsertCheckoutAttempt(c.Request().Context(), db.UpsertCheckoutAttemptParams{
		GuestSessionID: req.GuestSessionID,
		Email:          req.Email,
		EmailValid:     boolToInt(isValidEmail(req.Email)),
		CartJson:       cartJSON,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to record checkout attempt", err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type SubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

func (h *CaptureHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if !isValidEmail(req.Email) {
		return h.errs.JSON(c, http.StatusBadRequest, "A valid email address is required", nil)
	}

	source := req.Source
	if source == "" {
		source = "website"
	}

	_, err := h.queries.CreateSubscription(c.Request().Context(), db.CreateSubscriptionParams{
		ID:     uuid.New().String(),
		Email:  req.Email,
		Source: source,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to subscribe", err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *CaptureHandler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if req.Message == "" {
		return h.errs.JSON(c, http.StatusBadRequest, "Message required", nil)
	}

	_, err := h.queries.CreateContactFormSubmission(c.Request().Context(), db.CreateContactFormSubmissionParams{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to submit message", err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type LogSearchRequest struct {
	Query       string `json:"query"`
	ResultCount int64  `json:"result_count"`
}

func (h *CaptureHandler) LogSearch(c echo.Context) error {
	var req LogSearchRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if req.Query == "" {
		return h.errs.JSON(c, http.StatusBadRequest, "Query required", nil)
	}

	_, err := h.queries.CreateSearchLog(c.Request().Context(), db.CreateSearchLogParams{
		ID:          uuid.New().String(),
		Query:       req.Query,
		ResultCount: req.ResultCount,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to log search", err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
