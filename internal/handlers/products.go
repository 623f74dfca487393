package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avelinejewellery/aveline/internal/money"
	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/labstack/echo/v4"
)

type ProductsHandler struct {
	queries *db.Queries
	errs    *ErrorWriter
}

func NewProductsHandler(queries *db.Queries, errs *ErrorWriter) *ProductsHandler {
	return &ProductsHandler{queries: queries, errs: errs}
}

type ProductResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Material         string   `json:"material"`
	PricePence       int64    `json:"price_pence"`
	Price            string   `json:"price"`
	ImageURL         string   `json:"image_url"`
	AdditionalImages []string `json:"additional_images,omitempty"`
	SizeOptions      []string `json:"size_options,omitempty"`
	ReviewCount      int64    `json:"review_count"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Rating       int64     `json:"rating"`
	Title        string    `json:"title,omitempty"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	Images       []string  `json:"images,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductDetailResponse struct {
	Product ProductResponse   `json:"product"`
	Reviews []ReviewResponse  `json:"reviews"`
	Related []ProductResponse `json:"related"`
}

func productToResponse(p db.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		Category:         p.Category,
		Material:         p.Material,
		PricePence:       p.PricePence,
		Price:            money.Pence(p.PricePence).Format(),
		ImageURL:         p.ImageUrl,
		AdditionalImages: decodeStringList(p.AdditionalImages),
		SizeOptions:      decodeStringList(p.SizeOptions),
		ReviewCount:      p.ReviewCount,
	}
}

func reviewToResponse(r db.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		Rating:       r.Rating,
		Title:        r.Title,
		Comment:      r.Comment,
		ReviewerName: r.ReviewerName,
		Images:       decodeStringList(r.Images),
		CreatedAt:    r.CreatedAt,
	}
}

func decodeStringList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw.String), &list); err != nil {
		return nil
	}
	return list
}

func (h *ProductsHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var products []db.Product
	var err error
	if category := c.QueryParam("category"); category != "" {
		products, err = h.queries.ListProductsByCategory(ctx, category)
	} else {
		products, err = h.queries.ListProducts(ctx)
	}
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to list products", err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productToResponse(p)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *ProductsHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	product, err := h.queries.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return h.errs.JSON(c, http.StatusNotFound, "Product not found", nil)
		}
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load product", err)
	}

	reviews, err := h.queries.ListReviewsByProduct(ctx, id)
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load reviews", err)
	}

	related, err := h.queries.ListRelatedProducts(ctx, db.ListRelatedProductsParams{
		ID:       product.ID,
		Category: product.Category,
		Limit:    4,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load related products", err)
	}

	detail := ProductDetailResponse{
		Product: productToResponse(product),
		Reviews: make([]ReviewResponse, len(reviews)),
		Related: make([]ProductResponse, len(related)),
	}
	for i, r := range reviews {
		detail.Reviews[i] = reviewToResponse(r)
	}
	for i, p := range related {
		detail.Related[i] = productToResponse(p)
	}

	return c.JSON(http.StatusOK, detail)
}
