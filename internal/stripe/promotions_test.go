package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripego "github.com/stripe/stripe-go/v80"
)

func TestDiscountFromPromotionCode_PercentOff(t *testing.T) {
	promoCode := &stripego.PromotionCode{
		Code: "SAVE20",
		Coupon: &stripego.Coupon{
			PercentOff: 20,
		},
	}

	discount, err := DiscountFromPromotionCode(promoCode)
	require.NoError(t, err)
	assert.Equal(t, "percent", discount.Type)
	assert.Equal(t, 20.0, discount.Value)
	assert.Empty(t, discount.Currency)
}

func TestDiscountFromPromotionCode_AmountOff(t *testing.T) {
	promoCode := &stripego.PromotionCode{
		Code: "SAVE20",
		Coupon: &stripego.Coupon{
			AmountOff: 500,
			Currency:  stripego.CurrencyGBP,
		},
	}

	discount, err := DiscountFromPromotionCode(promoCode)
	require.NoError(t, err)
	assert.Equal(t, "amount", discount.Type)
	assert.Equal(t, 5.00, discount.Value)
	assert.Equal(t, "gbp", discount.Currency)
}

func TestDiscountFromPromotionCode_NoCoupon(t *testing.T) {
	_, err := DiscountFromPromotionCode(&stripego.PromotionCode{Code: "BROKEN"})
	assert.Error(t, err)

	_, err = DiscountFromPromotionCode(nil)
	assert.Error(t, err)
}

func TestDiscountFromPromotionCode_EmptyCoupon(t *testing.T) {
	_, err := DiscountFromPromotionCode(&stripego.PromotionCode{
		Code:   "ZERO",
		Coupon: &stripego.Coupon{ID: "co_zero"},
	})
	assert.Error(t, err)
}

func TestTotal(t *testing.T) {
	lines := []CartLine{
		{Name: "Gold Vermeil Ring", UnitAmount: 4500, Quantity: 2},
		{Name: "Pearl Drop Earrings", UnitAmount: 3250, Quantity: 1},
	}
	assert.Equal(t, int64(12250), Total(lines).Int64())
	assert.Equal(t, int64(0), Total(nil).Int64())
}
