package stripe

import (
	"fmt"

	"github.com/avelinejewellery/aveline/internal/money"
	"github.com/stripe/stripe-go/v80"
	checkoutsession "github.com/stripe/stripe-go/v80/checkout/session"
)

// Service wraps the Stripe API for checkout and promotions. The key is set
// once at construction instead of living in package-global state.
type Service struct {
	apiKey string
}

func NewService(apiKey string) *Service {
	stripe.Key = apiKey
	return &Service{apiKey: apiKey}
}

// CartLine is one normalized checkout line: unit amount already in pence.
type CartLine struct {
	Name       string
	UnitAmount money.Pence
	Quantity   int64
}

// Total returns the line-item total across all lines in pence.
func Total(lines []CartLine) money.Pence {
	var total money.Pence
	for _, line := range lines {
		total += line.UnitAmount * money.Pence(line.Quantity)
	}
	return total
}

// CreateCheckoutSession creates a Stripe-hosted checkout session for the cart.
// All charges are in GBP.
func (s *Service) CreateCheckoutSession(lines []CartLine, customerEmail, successURL, cancelURL string) (*stripe.CheckoutSession, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty cart")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(money.Currency),
				UnitAmount: stripe.Int64(line.UnitAmount.Int64()),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:           lineItems,
		SuccessURL:          stripe.String(successURL),
		CancelURL:           stripe.String(cancelURL),
		AllowPromotionCodes: stripe.Bool(true),
	}
	if customerEmail != "" {
		params.CustomerEmail = stripe.String(customerEmail)
	}

	return checkoutsession.New(params)
}
