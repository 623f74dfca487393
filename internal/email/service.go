package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/avelinejewellery/aveline/internal/money"
)

// Service renders and dispatches the storefront's transactional email.
type Service struct {
	sender Sender
	bcc    string
}

// NewService creates an email service. bcc, when set, receives a copy of
// every order confirmation (ORDER_BCC_EMAIL).
func NewService(sender Sender, bcc string) *Service {
	return &Service{sender: sender, bcc: bcc}
}

// Item is a single purchased or carted line in an email.
type Item struct {
	Name      string
	ImageURL  string
	Quantity  int64
	UnitPrice money.Pence
}

// RelatedProduct is a cross-sell suggestion shown under the main content.
type RelatedProduct struct {
	Name     string
	ImageURL string
	Price    money.Pence
}

// Address is the shipping address block.
type Address struct {
	Line1    string
	Line2    string
	City     string
	Postcode string
	Country  string
}

// OrderData feeds the order lifecycle templates (confirmation, shipping
// update, arriving today, delivered).
type OrderData struct {
	CustomerName    string
	CustomerEmail   string
	OrderNumber     string
	Items           []Item
	Total           money.Pence
	ShippingAddress Address
	TrackingCode    string
	TrackingURL     string
	RelatedProducts []RelatedProduct
}

// AbandonedCartData feeds the recovery template.
type AbandonedCartData struct {
	CustomerEmail   string
	Items           []Item
	Total           money.Pence
	CheckoutURL     string
	RelatedProducts []RelatedProduct
}

var templateFuncs = template.FuncMap{
	"FormatPence": func(p money.Pence) string { return p.Format() },
}

func render(name, tmplText string, data any, subject string) (string, error) {
	tmpl := template.Must(template.New(name).Funcs(templateFuncs).Parse(tmplText))

	var content bytes.Buffer
	if err := tmpl.Execute(&content, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", name, err)
	}

	return WrapEmailContent(content.String(), subject)
}

// RenderOrderConfirmation renders the order confirmation email.
func RenderOrderConfirmation(data *OrderData) (string, error) {
	subject := fmt.Sprintf("Order Confirmation - Order #%s", data.OrderNumber)
	return render("order_confirmation", orderConfirmationTemplate, data, subject)
}

// RenderShippingUpdate renders the dispatch notification email.
func RenderShippingUpdate(data *OrderData) (string, error) {
	subject := fmt.Sprintf("Your Order #%s Has Shipped", data.OrderNumber)
	return render("shipping_update", shippingUpdateTemplate, data, subject)
}

// RenderArrivingToday renders the out-for-delivery email.
func RenderArrivingToday(data *OrderData) (string, error) {
	subject := fmt.Sprintf("Order #%s Arrives Today", data.OrderNumber)
	return render("arriving_today", arrivingTodayTemplate, data, subject)
}

// RenderDelivered renders the delivered email.
func RenderDelivered(data *OrderData) (string, error) {
	subject := fmt.Sprintf("Order #%s Has Been Delivered", data.OrderNumber)
	return render("delivered", deliveredTemplate, data, subject)
}

// RenderAbandonedCartRecovery renders the cart recovery email.
func RenderAbandonedCartRecovery(data *AbandonedCartData) (string, error) {
	return render("abandoned_cart", abandonedCartTemplate, data, "You left something in your bag")
}

// SendOrderConfirmation emails the customer their confirmation, with the
// configured BCC copy for the shop.
func (s *Service) SendOrderConfirmation(ctx context.Context, data *OrderData) error {
	html, err := RenderOrderConfirmation(data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:      data.CustomerEmail,
		Bcc:     s.bcc,
		Subject: fmt.Sprintf("Order Confirmation - Order #%s", data.OrderNumber),
		HTML:    html,
	})
}

// SendShippingUpdate emails the customer their dispatch notice.
func (s *Service) SendShippingUpdate(ctx context.Context, data *OrderData) error {
	html, err := RenderShippingUpdate(data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:      data.CustomerEmail,
		Subject: fmt.Sprintf("Your Order #%s Has Shipped", data.OrderNumber),
		HTML:    html,
	})
}

// SendArrivingToday emails the customer that delivery is due today.
func (s *Service) SendArrivingToday(ctx context.Context, data *OrderData) error {
	html, err := RenderArrivingToday(data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:      data.CustomerEmail,
		Subject: fmt.Sprintf("Order #%s Arrives Today", data.OrderNumber),
		HTML:    html,
	})
}

// SendDelivered emails the customer their delivery confirmation.
func (s *Service) SendDelivered(ctx context.Context, data *OrderData) error {
	html, err := RenderDelivered(data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:      data.CustomerEmail,
		Subject: fmt.Sprintf("Order #%s Has Been Delivered", data.OrderNumber),
		HTML:    html,
	})
}

// SendAbandonedCartRecovery emails a customer about their waiting cart.
func (s *Service) SendAbandonedCartRecovery(ctx context.Context, data *AbandonedCartData) error {
	html, err := RenderAbandonedCartRecovery(data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:      data.CustomerEmail,
		Subject: "You left something in your bag",
		HTML:    html,
	})
}
