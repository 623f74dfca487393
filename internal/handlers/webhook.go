package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/avelinejewellery/aveline/internal/email"
	"github.com/avelinejewellery/aveline/internal/money"
	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/labstack/echo/v4"
	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

type WebhookHandler struct {
	queries       *db.Queries
	emailService  *email.Service
	errs          *ErrorWriter
	webhookSecret string
}

func NewWebhookHandler(queries *db.Queries, emailService *email.Service, errs *ErrorWriter, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		queries:       queries,
		emailService:  emailService,
		errs:          errs,
		webhookSecret: webhookSecret,
	}
}

func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Failed to read request body", err)
	}

	signatureHeader := c.Request().Header.Get("Stripe-Signature")

	var event stripego.Event
	if h.webhookSecret != "" {
		event, err = webhook.ConstructEvent(payload, signatureHeader, h.webhookSecret)
		if err != nil {
			return h.errs.JSON(c, http.StatusBadRequest, "Invalid webhook signature", err)
		}
	} else {
		// Development only: accept unsigned events.
		if err := json.Unmarshal(payload, &event); err != nil {
			return h.errs.JSON(c, http.StatusBadRequest, "Invalid webhook payload", err)
		}
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var paymentIntent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			return h.errs.JSON(c, http.StatusBadRequest, "Invalid payment intent payload", err)
		}
		return h.handlePaymentIntentSucceeded(c, &paymentIntent)

	default:
		// Everything else is acknowledged and ignored.
		slog.Debug("ignoring webhook event", "type", event.Type)
		return c.NoContent(http.StatusOK)
	}
}

func (h *WebhookHandler) handlePaymentIntentSucceeded(c echo.Context, paymentIntent *stripego.PaymentIntent) error {
	ctx := c.Request().Context()

	slog.Info("payment intent succeeded",
		"payment_intent_id", paymentIntent.ID,
		"amount", paymentIntent.Amount,
		"currency", paymentIntent.Currency,
	)

	contactEmail := paymentIntent.ReceiptEmail
	var customerName string
	var shippingJSON sql.NullString
	if paymentIntent.Shipping != nil {
		customerName = paymentIntent.Shipping.Name
		if raw, err := json.Marshal(paymentIntent.Shipping); err == nil {
			shippingJSON = sql.NullString{String: string(raw), Valid: true}
		}
	}

	// ON CONFLICT DO NOTHING makes Stripe's redeliveries harmless: zero
	// rows affected means this event was already processed.
	affected, err := h.queries.CreateOrder(ctx, db.CreateOrderParams{
		PaymentIntentID: paymentIntent.ID,
		AmountPence:     paymentIntent.Amount,
		Currency:        string(paymentIntent.Currency),
		Status:          "paid",
		ContactEmail:    contactEmail,
		CustomerName:    customerName,
		ShippingAddress: shippingJSON,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to persist order", err)
	}
	if affected == 0 {
		slog.Info("duplicate webhook delivery, order already exists", "payment_intent_id", paymentIntent.ID)
		return c.NoContent(http.StatusOK)
	}

	slog.Info("order created", "payment_intent_id", paymentIntent.ID)

	// Email failure must not make Stripe retry the event: the order is
	// already persisted, so always acknowledge from here on.
	if contactEmail != "" {
		data := &email.OrderData{
			CustomerName:    customerName,
			CustomerEmail:   contactEmail,
			OrderNumber:     paymentIntent.ID,
			Total:           money.Pence(paymentIntent.Amount),
			ShippingAddress: addressFromShipping(paymentIntent.Shipping),
		}
		if err := h.emailService.SendOrderConfirmation(ctx, data); err != nil {
			slog.Error("failed to send order confirmation", "payment_intent_id", paymentIntent.ID, "error", err)
		}
	}

	return c.NoContent(http.StatusOK)
}

func addressFromShipping(shipping *stripego.ShippingDetails) email.Address {
	if shipping == nil || shipping.Address == nil {
		return email.Address{}
	}
	return email.Address{
		Line1:    shipping.Address.Line1,
		Line2:    shipping.Address.Line2,
		City:     shipping.Address.City,
		Postcode: shipping.Address.PostalCode,
		Country:  shipping.Address.Country,
	}
}
