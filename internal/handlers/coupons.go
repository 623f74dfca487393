package handlers

import (
	"net/http"

	"github.com/avelinejewellery/aveline/internal/stripe"
	"github.com/labstack/echo/v4"
)

type CouponsHandler struct {
	stripeService *stripe.Service
	errs          *ErrorWriter
}

func NewCouponsHandler(stripeService *stripe.Service, errs *ErrorWriter) *CouponsHandler {
	return &CouponsHandler{stripeService: stripeService, errs: errs}
}

type ValidateCouponRequest struct {
	Coupon string `json:"coupon"`
}

type ValidateCouponResponse struct {
	Valid    bool            `json:"valid"`
	Discount stripe.Discount `json:"discount"`
}

// ValidateCoupon reports what a promotion code is worth. Applying the
// discount to the charge is the frontend's job; nothing is mutated here.
func (h *CouponsHandler) ValidateCoupon(c echo.Context) error {
	var req ValidateCouponRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if req.Coupon == "" {
		return h.errs.JSON(c, http.StatusBadRequest, "Coupon code required", nil)
	}

	promoCode, err := h.stripeService.ValidatePromotionCode(req.Coupon)
	if err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid or expired coupon code.", nil)
	}

	discount, err := stripe.DiscountFromPromotionCode(promoCode)
	if err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid or expired coupon code.", err)
	}

	return c.JSON(http.StatusOK, ValidateCouponResponse{
		Valid:    true,
		Discount: discount,
	})
}
