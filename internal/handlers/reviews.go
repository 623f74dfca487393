package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ReviewsHandler struct {
	queries *db.Queries
	errs    *ErrorWriter
}

func NewReviewsHandler(queries *db.Queries, errs *ErrorWriter) *ReviewsHandler {
	return &ReviewsHandler{queries: queries, errs: errs}
}

func (h *ReviewsHandler) ListReviews(c echo.Context) error {
	productID := c.Param("id")

	reviews, err := h.queries.ListReviewsByProduct(c.Request().Context(), productID)
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load reviews", err)
	}

	response := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = reviewToResponse(r)
	}

	return c.JSON(http.StatusOK, response)
}

type CreateReviewRequest struct {
	Rating        int64    `json:"rating"`
	Title         string   `json:"title"`
	Comment       string   `json:"comment"`
	ReviewerName  string   `json:"reviewer_name"`
	ReviewerEmail string   `json:"reviewer_email"`
	Images        []string `json:"images"`
}

func (h *ReviewsHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	productID := c.Param("id")

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return h.errs.JSON(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if req.Rating < 1 || req.Rating > 5 {
		return h.errs.JSON(c, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
	}
	if req.Comment == "" {
		return h.errs.JSON(c, http.StatusBadRequest, "Comment required", nil)
	}
	if req.ReviewerName == "" {
		return h.errs.JSON(c, http.StatusBadRequest, "Reviewer name required", nil)
	}

	if _, err := h.queries.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return h.errs.JSON(c, http.StatusNotFound, "Product not found", nil)
		}
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to load product", err)
	}

	var images sql.NullString
	if len(req.Images) > 0 {
		raw, err := json.Marshal(req.Images)
		if err != nil {
			return h.errs.JSON(c, http.StatusBadRequest, "Invalid images", err)
		}
		images = sql.NullString{String: string(raw), Valid: true}
	}

	review, err := h.queries.CreateReview(ctx, db.CreateReviewParams{
		ID:            uuid.New().String(),
		ProductID:     productID,
		Rating:        req.Rating,
		Title:         req.Title,
		Comment:       req.Comment,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		Images:        images,
	})
	if err != nil {
		return h.errs.JSON(c, http.StatusInternalServerError, "Failed to create review", err)
	}

	// The denormalized count keeps product listings cheap; a miss here only
	// skews the badge until the next review lands.
	if err := h.queries.IncrementReviewCount(ctx, productID); err != nil {
		slog.Error("failed to increment review count", "product_id", productID, "error", err)
	}

	return c.JSON(http.StatusCreated, reviewToResponse(review))
}
