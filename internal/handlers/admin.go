package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/avelinejewellery/aveline/internal/email"
	"github.com/avelinejewellery/aveline/internal/jobs"
	"github.com/avelinejewellery/aveline/internal/money"
	"github.com/avelinejewellery/aveline/internal/shipping"
	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/labstack/echo/v4"
	stripego "github.com/stripe/stripe-go/v80"
	"golang.org/x/sync/errgroup"
)

// AdminHandler backs the staff dashboard: order fulfillment, stats, search
// logs, and the manual recovery trigger.
type AdminHandler struct {
	queries      *db.Queries
	emailService *email.Service
	trackers     *shipping.TrackerService
	recoverer    *jobs.CartRecoverer
	errs         *ErrorWriter
}

func NewAdminHandler(queries *db.Queries, emailService *email.Service, trackers *shipping.TrackerService, recoverer *jobs.CartRecoverer, errs *ErrorWriter) *AdminHandler {
	return &AdminHandler{
		queries:      queries,
		emailService: emailService,
		trackers:     trackers,
		recoverer:    recoverer,
		errs:         errs,
	}
}

type DashboardStats struct {
	OrderCount         int64  `json:"order_count"`
	RevenuePence       int64  `json:"revenue_pence"`
	Revenue            string `json:"revenue"`
	ProductCount       int64  `json:"product_count"`
	ReviewCount        int64  `json:"review_count"`
	EligibleRecoveries int64  `json:"eligible_recoveries"`
}

// Dashboard aggregates the headline numbers. The five counts are independent
// queries, so they run concurrently.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	var stats DashboardStats

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		stats.OrderCount, err = h.queries.CountOrders(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.RevenuePence, err = h.queries.SumOrderRevenuePence(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ProductCount, err = h.queries.CountProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ReviewCount, err = h.queries.CountReviews(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cutoff := time.Now().UTC().Add(-jobs.GracePeriod)
		stats.EligibleRecoveries, err = h.queries.CountEligibleCheckoutAttempts(ctx, cutoff)
		return err
	})
	if err := g.Wait(); err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load dashboard stats", err)
	}

	stats.Revenue = money.Pence(stats.RevenuePence).Format()
	return c.JSON(http.StatusOK, stats)
}

type OrderResponse struct {
	PaymentIntentID   string `json:"payment_intent_id"`
	AmountPence       int64  `json:"amount_pence"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	ContactEmail      string `json:"contact_email"`
	CustomerName      string `json:"customer_name"`
	FulfillmentStatus string `json:"fulfillment_status"`
	TrackingCode      string `json:"tracking_code,omitempty"`
	TrackingURL       string `json:"tracking_url,omitempty"`
	CreatedAt         string `json:"created_at"`
}

func orderToResponse(o db.Order) OrderResponse {
	return OrderResponse{
		PaymentIntentID:   o.PaymentIntentID,
		AmountPence:       o.AmountPence,
		Amount:            money.Pence(o.AmountPence).Format(),
		Currency:          o.Currency,
		Status:            o.Status,
		ContactEmail:      o.ContactEmail,
		CustomerName:      o.CustomerName,
		FulfillmentStatus: o.FulfillmentStatus,
		TrackingCode:      o.TrackingCode.String,
		TrackingURL:       o.TrackingUrl.String,
		CreatedAt:         o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.queries.ListRecentOrders(c.Request().Context(), 100)
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to list orders", err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderToResponse(o)
	}
	return c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	order, err := h.queries.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return h.errs.JSON(c, http.StatusNotFound, "Order not found", nil)
		}
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load order", err)
	}
	return c.JSON(http.StatusOK, orderToResponse(order))
}

type UpdateFulfillmentRequest struct {
	Status       string `json:"status"`
	TrackingCode string `json:"tracking_code"`
	Carrier      string `json:"carrier"`
}

var fulfillmentStatuses = map[string]bool{
	"pending":          true,
	"shipped":          true,
	"out_for_delivery": true,
	"delivered":        true,
}

// UpdateFulfillment moves an order through its fulfillment lifecycle and
// sends the matching customer email. Email and tracker failures are logged
// but never roll back the status change.
func (h *AdminHandler) UpdateFulfillment(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("id")

	var req UpdateFulfillmentRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}
	if !fulfillmentStatuses[req.Status] {
		return h.errs.JSON(c, http.StatusBadRequest, "Unknown fulfillment status", nil)
	}

	existing, err := h.queries.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return h.errs.JSON(c, http.StatusNotFound, "Order not found", nil)
		}
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load order", err)
	}

	trackingCode := existing.TrackingCode
	trackingURL := existing.TrackingUrl
	if req.Status == "shipped" {
		if req.TrackingCode == "" {
			return h.errs.JSON(c, http.StatusBadRequest, "Tracking code required to mark shipped", nil)
		}
		trackingCode = sql.NullString{String: req.TrackingCode, Valid: true}

		url, err := h.trackers.Register(req.TrackingCode, req.Carrier)
		if err != nil {
			slog.Error("failed to register shipment tracker", "payment_intent_id", orderID, "error", err)
		}
		if url != "" {
			trackingURL = sql.NullString{String: url, Valid: true}
		}
	}

	order, err := h.queries.UpdateOrderFulfillment(ctx, db.UpdateOrderFulfillmentParams{
		FulfillmentStatus: req.Status,
		TrackingCode:      trackingCode,
		TrackingUrl:       trackingURL,
		PaymentIntentID:   orderID,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to update order", err)
	}

	h.sendFulfillmentEmail(ctx, order)

	return c.JSON(http.StatusOK, orderToResponse(order))
}

func (h *AdminHandler) sendFulfillmentEmail(ctx context.Context, order db.Order) {
	if order.ContactEmail == "" {
		return
	}

	data := &email.OrderData{
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.ContactEmail,
		OrderNumber:     order.PaymentIntentID,
		Total:           money.Pence(order.AmountPence),
		ShippingAddress: addressFromStoredShipping(order.ShippingAddress),
		TrackingCode:    order.TrackingCode.String,
		TrackingURL:     order.TrackingUrl.String,
	}

	var err error
	switch order.FulfillmentStatus {
	case "shipped":
		err = h.emailService.SendShippingUpdate(ctx, data)
	case "out_for_delivery":
		err = h.emailService.SendArrivingToday(ctx, data)
	case "delivered":
		data.RelatedProducts = h.crossSellProducts(ctx)
		err = h.emailService.SendDelivered(ctx, data)
	default:
		return
	}
	if err != nil {
		slog.Error("failed to send fulfillment email",
			"payment_intent_id", order.PaymentIntentID,
			"status", order.FulfillmentStatus,
			"error", err,
		)
	}
}

// crossSellProducts picks a few random catalog items for the delivered email.
func (h *AdminHandler) crossSellProducts(ctx context.Context) []email.RelatedProduct {
	products, err := h.queries.ListRelatedProducts(ctx, db.ListRelatedProductsParams{
		ID:       "",
		Category: "",
		Limit:    3,
	})
	if err != nil {
		slog.Warn("failed to load cross-sell products", "error", err)
		return nil
	}

	related := make([]email.RelatedProduct, 0, len(products))
	for _, p := range products {
		related = append(related, email.RelatedProduct{
			Name:     p.Name,
			ImageURL: p.ImageUrl,
			Price:    money.Pence(p.PricePence),
		})
	}
	return related
}

type RecoveryRunResponse struct {
	Candidates int                   `json:"candidates"`
	Sent       int                   `json:"sent"`
	Results    []jobs.RecoveryResult `json:"results"`
}

// RunAbandonedCarts triggers a recovery scan outside the schedule.
func (h *AdminHandler) RunAbandonedCarts(c echo.Context) error {
	results, err := h.recoverer.RunOnce(c.Request().Context())
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Recovery scan failed", err)
	}

	response := RecoveryRunResponse{
		Candidates: len(results),
		Results:    results,
	}
	for _, res := range results {
		if res.Sent {
			response.Sent++
		}
	}
	if response.Results == nil {
		response.Results = []jobs.RecoveryResult{}
	}

	return c.JSON(http.StatusOK, response)
}

type SearchLogResponse struct {
	ID          string `json:"id"`
	Query       string `json:"query"`
	ResultCount int64  `json:"result_count"`
	CreatedAt   string `json:"created_at"`
}

func (h *AdminHandler) ListSearchLogs(c echo.Context) error {
	logs, err := h.queries.ListRecentSearchLogs(c.Request().Context(), 200)
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to list search logs", err)
	}

	response := make([]SearchLogResponse, len(logs))
	for i, l := range logs {
		response[i] = SearchLogResponse{
			ID:          l.ID,
			Query:       l.Query,
			ResultCount: l.ResultCount,
			CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return c.JSON(http.StatusOK, response)
}

func addressFromStoredShipping(raw sql.NullString) email.Address {
	if !raw.Valid || raw.String == "" {
		return email.Address{}
	}
	var shipping stripego.ShippingDetails
	if err := json.Unmarshal([]byte(raw.String), &shipping); err != nil {
		return email.Address{}
	}
	return addressFromShipping(&shipping)
}
