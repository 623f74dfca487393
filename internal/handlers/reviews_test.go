package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewContext(productID string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues(productID)
	return c, rec
}

func TestCreateReview(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewReviewsHandler(queries, NewErrorWriter("test"))

	product, err := CreateTestProduct(queries, "Luna Pendant", "necklaces", 4500)
	require.NoError(t, err)

	c, rec := newReviewContext(product.ID, CreateReviewRequest{
		Rating:       5,
		Title:        "Beautiful",
		Comment:      "Even nicer in person.",
		ReviewerName: "Amy",
	})
	require.NoError(t, handler.CreateReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(5), created.Rating)
	assert.Equal(t, product.ID, created.ProductID)

	// The denormalized counter moves with the new review.
	updated, err := queries.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ReviewCount)
}

func TestCreateReviewValidation(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewReviewsHandler(queries, NewErrorWriter("test"))

	product, err := CreateTestProduct(queries, "Luna Pendant", "necklaces", 4500)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  CreateReviewRequest
	}{
		{"rating too low", CreateReviewRequest{Rating: 0, Comment: "x", ReviewerName: "Amy"}},
		{"rating too high", CreateReviewRequest{Rating: 6, Comment: "x", ReviewerName: "Amy"}},
		{"missing comment", CreateReviewRequest{Rating: 4, ReviewerName: "Amy"}},
		{"missing name", CreateReviewRequest{Rating: 4, Comment: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newReviewContext(product.ID, tt.req)
			require.NoError(t, handler.CreateReview(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewReviewsHandler(queries, NewErrorWriter("test"))

	c, rec := newReviewContext("missing", CreateReviewRequest{
		Rating:       4,
		Comment:      "x",
		ReviewerName: "Amy",
	})
	require.NoError(t, handler.CreateReview(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListReviews(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewReviewsHandler(queries, NewErrorWriter("test"))

	product, err := CreateTestProduct(queries, "Luna Pendant", "necklaces", 4500)
	require.NoError(t, err)

	for _, comment := range []string{"Lovely", "Perfect gift"} {
		c, _ := newReviewContext(product.ID, CreateReviewRequest{
			Rating:       5,
			Comment:      comment,
			ReviewerName: "Amy",
		})
		require.NoError(t, handler.CreateReview(c))
	}

	c, rec := newReviewContext(product.ID, nil)
	require.NoError(t, handler.ListReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var reviews []ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 2)
}
