package stripe

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/promotioncode"
)

// Discount describes what a promotion code is worth to the caller. Application
// of the discount to a charge is the frontend's job; this side only reports it.
type Discount struct {
	Type     string  `json:"type"` // "percent" or "amount"
	Value    float64 `json:"value"`
	Currency string  `json:"currency,omitempty"`
}

// ValidatePromotionCode looks up an active promotion code by its human-entered
// string and returns it, or an error if unknown, expired, or exhausted.
func (s *Service) ValidatePromotionCode(code string) (*stripe.PromotionCode, error) {
	params := &stripe.PromotionCodeListParams{}
	params.Code = stripe.String(code)
	params.Active = stripe.Bool(true)

	iter := promotioncode.List(params)
	if iter.Next() {
		promoCode := iter.PromotionCode()

		if promoCode.ExpiresAt > 0 && time.Now().Unix() > promoCode.ExpiresAt {
			return nil, fmt.Errorf("promotion code has expired")
		}

		if promoCode.MaxRedemptions > 0 && promoCode.TimesRedeemed >= promoCode.MaxRedemptions {
			return nil, fmt.Errorf("promotion code has reached maximum redemptions")
		}

		return promoCode, nil
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("promotion code not found or inactive")
}

// DiscountFromPromotionCode maps a Stripe promotion code's coupon to a
// discount descriptor. Fixed amounts come back in major units (amount_off 500
// in gbp reads as 5.00).
func DiscountFromPromotionCode(promoCode *stripe.PromotionCode) (Discount, error) {
	if promoCode == nil || promoCode.Coupon == nil {
		return Discount{}, fmt.Errorf("promotion code has no coupon")
	}

	coupon := promoCode.Coupon
	if coupon.PercentOff > 0 {
		return Discount{Type: "percent", Value: coupon.PercentOff}, nil
	}
	if coupon.AmountOff > 0 {
		return Discount{
			Type:     "amount",
			Value:    float64(coupon.AmountOff) / 100,
			Currency: string(coupon.Currency),
		}, nil
	}

	return Discount{}, fmt.Errorf("coupon %s carries no discount", coupon.ID)
}
