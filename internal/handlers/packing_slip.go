package handlers

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/avelinejewellery/aveline/internal/email"
	"github.com/avelinejewellery/aveline/internal/money"
	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

// PackingSlip renders a one-page PDF for the warehouse: shipping address,
// order reference, and a QR code that resolves back to the admin order page.
func (h *AdminHandler) PackingSlip(c echo.Context) error {
	order, err := h.queries.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return h.errs.JSON(c, http.StatusNotFound, "Order not found", nil)
		}
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load order", err)
	}

	address := addressFromStoredShipping(order.ShippingAddress)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Packing Slip "+order.PaymentIntentID, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Aveline Jewellery", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Packing Slip", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Order", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, order.PaymentIntentID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total: "+money.Pence(order.AmountPence).Format(), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Ship To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if order.CustomerName != "" {
		pdf.CellFormat(0, 6, order.CustomerName, "", 1, "L", false, 0, "")
	}
	for _, line := range addressLines(address) {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if order.TrackingCode.Valid && order.TrackingCode.String != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, "Tracking", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, order.TrackingCode.String, "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	png, err := qrcode.Encode("aveline:order:"+order.PaymentIntentID, qrcode.Medium, 256)
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to render packing slip", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("order-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("order-qr", 150, 20, 40, 40, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to render packing slip", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="packing-slip-%s.pdf"`, order.PaymentIntentID))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

func addressLines(a email.Address) []string {
	var lines []string
	for _, part := range []string{a.Line1, a.Line2, a.City, a.Postcode, a.Country} {
		if part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}
