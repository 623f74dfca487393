package email

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records messages instead of delivering them.
type fakeSender struct {
	sent []*Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg *Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func sampleOrderData() *OrderData {
	return &OrderData{
		CustomerName:  "Imogen Hart",
		CustomerEmail: "imogen@example.com",
		OrderNumber:   "pi_3Nxy12",
		Items: []Item{
			{Name: "Gold Vermeil Signet Ring", ImageURL: "https://cdn.example.com/ring.jpg", Quantity: 1, UnitPrice: 8500},
			{Name: "Freshwater Pearl Studs", Quantity: 2, UnitPrice: 3250},
		},
		Total: 15000,
		ShippingAddress: Address{
			Line1:    "14 Lansdown Crescent",
			City:     "Bath",
			Postcode: "BA1 5EX",
			Country:  "GB",
		},
		TrackingCode: "RM123456789GB",
		TrackingURL:  "https://track.example.com/RM123456789GB",
	}
}

func TestRenderOrderConfirmation(t *testing.T) {
	html, err := RenderOrderConfirmation(sampleOrderData())
	require.NoError(t, err)

	assert.Contains(t, html, "Imogen Hart")
	assert.Contains(t, html, "pi_3Nxy12")
	assert.Contains(t, html, "Gold Vermeil Signet Ring")
	assert.Contains(t, html, "£85.00")
	assert.Contains(t, html, "£150.00")
	assert.Contains(t, html, "14 Lansdown Crescent")
	assert.Contains(t, html, strconv.Itoa(time.Now().Year()))
}

func TestRenderShippingUpdate(t *testing.T) {
	html, err := RenderShippingUpdate(sampleOrderData())
	require.NoError(t, err)

	assert.Contains(t, html, "RM123456789GB")
	assert.Contains(t, html, "https://track.example.com/RM123456789GB")
	assert.Contains(t, html, "on its way")
}

func TestRenderArrivingToday(t *testing.T) {
	html, err := RenderArrivingToday(sampleOrderData())
	require.NoError(t, err)

	assert.Contains(t, html, "arrives today")
	assert.Contains(t, html, "https://track.example.com/RM123456789GB")
}

func TestRenderDelivered(t *testing.T) {
	data := sampleOrderData()
	data.RelatedProducts = []RelatedProduct{
		{Name: "Opal Pendant", ImageURL: "https://cdn.example.com/opal.jpg", Price: 12000},
	}

	html, err := RenderDelivered(data)
	require.NoError(t, err)

	assert.Contains(t, html, "delivered")
	assert.Contains(t, html, "Opal Pendant")
	assert.Contains(t, html, "£120.00")
}

func TestRenderAbandonedCartRecovery(t *testing.T) {
	data := &AbandonedCartData{
		CustomerEmail: "guest@example.com",
		Items: []Item{
			{Name: "Emerald Cut Tennis Bracelet", Quantity: 1, UnitPrice: 24000},
		},
		Total:       24000,
		CheckoutURL: "https://aveline.example.com/checkout?session=abc",
		RelatedProducts: []RelatedProduct{
			{Name: "Sapphire Band", Price: 18000},
			{Name: "Twisted Gold Hoops", Price: 6400},
			{Name: "Moonstone Ring", Price: 9900},
		},
	}

	html, err := RenderAbandonedCartRecovery(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Emerald Cut Tennis Bracelet")
	assert.Contains(t, html, "£240.00")
	assert.Contains(t, html, data.CheckoutURL)
	assert.Contains(t, html, "Sapphire Band")
	assert.Contains(t, html, "Moonstone Ring")
}

func TestTemplateEscaping(t *testing.T) {
	data := sampleOrderData()
	data.Items[0].Name = `<script>alert("x")</script>`

	html, err := RenderOrderConfirmation(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestSendOrderConfirmationUsesBcc(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "orders@aveline.example.com")

	err := svc.SendOrderConfirmation(context.Background(), sampleOrderData())
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "imogen@example.com", msg.To)
	assert.Equal(t, "orders@aveline.example.com", msg.Bcc)
	assert.True(t, strings.HasPrefix(msg.Subject, "Order Confirmation"))
}

func TestSendAbandonedCartRecoveryNoBcc(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "orders@aveline.example.com")

	err := svc.SendAbandonedCartRecovery(context.Background(), &AbandonedCartData{
		CustomerEmail: "guest@example.com",
		CheckoutURL:   "https://aveline.example.com/checkout",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Empty(t, sender.sent[0].Bcc)
}

func TestSendPropagatesSenderError(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("sendgrid down")}
	svc := NewService(sender, "")

	err := svc.SendShippingUpdate(context.Background(), sampleOrderData())
	assert.ErrorContains(t, err, "sendgrid down")
}
