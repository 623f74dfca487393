package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelinejewellery/aveline/internal/email"
	"github.com/avelinejewellery/aveline/internal/jobs"
	"github.com/avelinejewellery/aveline/internal/shipping"
	"github.com/avelinejewellery/aveline/storage"
	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTestHandler(t *testing.T) (*AdminHandler, *db.Queries, *recordingSender) {
	t.Helper()

	database, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)

	sender := &recordingSender{}
	emailService := email.NewService(sender, "")
	recoverer := jobs.NewCartRecoverer(storage.NewFromDB(database), emailService, "https://example.com")

	handler := NewAdminHandler(queries, emailService, shipping.NewTrackerService(""), recoverer, NewErrorWriter("test"))
	return handler, queries, sender
}

func seedOrder(t *testing.T, queries *db.Queries, paymentIntentID string, amountPence int64) db.Order {
	t.Helper()

	affected, err := queries.CreateOrder(context.Background(), db.CreateOrderParams{
		PaymentIntentID: paymentIntentID,
		AmountPence:     amountPence,
		Currency:        "gbp",
		Status:          "paid",
		ContactEmail:    "amy@example.com",
		CustomerName:    "Amy Carter",
		ShippingAddress: sql.NullString{
			String: `{"name":"Amy Carter","address":{"line1":"1 Jewellery Quarter","city":"Birmingham","postal_code":"B18 6HA","country":"GB"}}`,
			Valid:  true,
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	order, err := queries.GetOrder(context.Background(), paymentIntentID)
	require.NoError(t, err)
	return order
}

func TestDashboardStats(t *testing.T) {
	handler, queries, _ := newAdminTestHandler(t)

	seedOrder(t, queries, "pi_1", 4500)
	seedOrder(t, queries, "pi_2", 12000)
	_, err := CreateTestProduct(queries, "Luna Pendant", "necklaces", 4500)
	require.NoError(t, err)

	c, rec := NewTestContext(http.MethodGet, "/admin/api/dashboard", nil)
	require.NoError(t, handler.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.OrderCount)
	assert.Equal(t, int64(16500), stats.RevenuePence)
	assert.Equal(t, "£165.00", stats.Revenue)
	assert.Equal(t, int64(1), stats.ProductCount)
	assert.Equal(t, int64(0), stats.ReviewCount)
	assert.Equal(t, int64(0), stats.EligibleRecoveries)
}

func TestListAndGetOrders(t *testing.T) {
	handler, queries, _ := newAdminTestHandler(t)

	seedOrder(t, queries, "pi_1", 4500)

	c, rec := NewTestContext(http.MethodGet, "/admin/api/orders", nil)
	require.NoError(t, handler.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "pi_1", orders[0].PaymentIntentID)
	assert.Equal(t, "£45.00", orders[0].Amount)
	assert.Equal(t, "pending", orders[0].FulfillmentStatus)

	c, rec = newParamContext(http.MethodGet, "/admin/api/orders/:id", "pi_1")
	require.NoError(t, handler.GetOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newParamContext(http.MethodGet, "/admin/api/orders/:id", "pi_missing")
	require.NoError(t, handler.GetOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func newFulfillmentContext(orderID string, body UpdateFulfillmentRequest) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := NewTestContext(http.MethodPut, "/admin/api/orders/:id/fulfillment", body)
	c.SetParamNames("id")
	c.SetParamValues(orderID)
	return c, rec
}

func TestUpdateFulfillmentShipped(t *testing.T) {
	handler, queries, sender := newAdminTestHandler(t)

	seedOrder(t, queries, "pi_ship", 4500)

	c, rec := newFulfillmentContext("pi_ship", UpdateFulfillmentRequest{
		Status:       "shipped",
		TrackingCode: "RM123456789GB",
		Carrier:      "RoyalMail",
	})
	require.NoError(t, handler.UpdateFulfillment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	order, err := queries.GetOrder(context.Background(), "pi_ship")
	require.NoError(t, err)
	assert.Equal(t, "shipped", order.FulfillmentStatus)
	assert.Equal(t, "RM123456789GB", order.TrackingCode.String)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, "amy@example.com", sender.messages[0].To)
	assert.Contains(t, sender.messages[0].Subject, "Has Shipped")
	assert.Contains(t, sender.messages[0].HTML, "RM123456789GB")
}

func TestUpdateFulfillmentShippedRequiresTracking(t *testing.T) {
	handler, queries, sender := newAdminTestHandler(t)

	seedOrder(t, queries, "pi_ship", 4500)

	c, rec := newFulfillmentContext("pi_ship", UpdateFulfillmentRequest{Status: "shipped"})
	require.NoError(t, handler.UpdateFulfillment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.messages)
}

func TestUpdateFulfillmentLifecycleEmails(t *testing.T) {
	handler, queries, sender := newAdminTestHandler(t)

	seedOrder(t, queries, "pi_life", 4500)
	_, err := CreateTestProduct(queries, "Orbit Necklace", "necklaces", 6800)
	require.NoError(t, err)

	c, _ := newFulfillmentContext("pi_life", UpdateFulfillmentRequest{Status: "out_for_delivery"})
	require.NoError(t, handler.UpdateFulfillment(c))

	c, _ = newFulfillmentContext("pi_life", UpdateFulfillmentRequest{Status: "delivered"})
	require.NoError(t, handler.UpdateFulfillment(c))

	require.Len(t, sender.messages, 2)
	assert.Contains(t, sender.messages[0].Subject, "Arrives Today")
	assert.Contains(t, sender.messages[1].Subject, "Has Been Delivered")
	// The delivered email carries cross-sell suggestions.
	assert.Contains(t, sender.messages[1].HTML, "Orbit Necklace")
}

func TestUpdateFulfillmentEmailFailureKeepsStatus(t *testing.T) {
	handler, queries, sender := newAdminTestHandler(t)
	sender.err = assert.AnError

	seedOrder(t, queries, "pi_fail", 4500)

	c, rec := newFulfillmentContext("pi_fail", UpdateFulfillmentRequest{Status: "out_for_delivery"})
	require.NoError(t, handler.UpdateFulfillment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	order, err := queries.GetOrder(context.Background(), "pi_fail")
	require.NoError(t, err)
	assert.Equal(t, "out_for_delivery", order.FulfillmentStatus)
}

func TestUpdateFulfillmentRejectsUnknownStatus(t *testing.T) {
	handler, queries, _ := newAdminTestHandler(t)

	seedOrder(t, queries, "pi_1", 4500)

	c, rec := newFulfillmentContext("pi_1", UpdateFulfillmentRequest{Status: "teleported"})
	require.NoError(t, handler.UpdateFulfillment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunAbandonedCartsEndpoint(t *testing.T) {
	handler, _, _ := newAdminTestHandler(t)

	c, rec := NewTestContext(http.MethodPost, "/admin/api/abandoned-carts/run", nil)
	require.NoError(t, handler.RunAbandonedCarts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var summary RecoveryRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.Candidates)
	assert.Equal(t, 0, summary.Sent)
	assert.NotNil(t, summary.Results)
}

func TestListSearchLogsEndpoint(t *testing.T) {
	handler, queries, _ := newAdminTestHandler(t)

	_, err := queries.CreateSearchLog(context.Background(), db.CreateSearchLogParams{
		ID:          "sl-1",
		Query:       "gold hoops",
		ResultCount: 7,
	})
	require.NoError(t, err)

	c, rec := NewTestContext(http.MethodGet, "/admin/api/search-logs", nil)
	require.NoError(t, handler.ListSearchLogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var logs []SearchLogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "gold hoops", logs[0].Query)
}

func TestPackingSlip(t *testing.T) {
	handler, queries, _ := newAdminTestHandler(t)

	seedOrder(t, queries, "pi_slip", 4500)

	c, rec := newParamContext(http.MethodGet, "/admin/api/orders/:id/packing-slip", "pi_slip")
	require.NoError(t, handler.PackingSlip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, len(rec.Body.Bytes()) > 4 && string(rec.Body.Bytes()[:4]) == "%PDF")
}

func TestPackingSlipNotFound(t *testing.T) {
	handler, _, _ := newAdminTestHandler(t)

	c, rec := newParamContext(http.MethodGet, "/admin/api/orders/:id/packing-slip", "missing")
	require.NoError(t, handler.PackingSlip(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
