package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewProductsHandler(queries, NewErrorWriter("test"))

	_, err := CreateTestProduct(queries, "Luna Pendant", "necklaces", 4500)
	require.NoError(t, err)
	_, err = CreateTestProduct(queries, "Stacking Ring", "rings", 2950)
	require.NoError(t, err)

	t.Run("lists all active products", func(t *testing.T) {
		c, rec := NewTestContext(http.MethodGet, "/api/products", nil)
		require.NoError(t, handler.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var products []ProductResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 2)
	})

	t.Run("filters by category", func(t *testing.T) {
		c, rec := NewTestContext(http.MethodGet, "/api/products?category=rings", nil)
		require.NoError(t, handler.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var products []ProductResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Stacking Ring", products[0].Name)
		assert.Equal(t, "£29.50", products[0].Price)
	})
}

func TestGetProductDetail(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewProductsHandler(queries, NewErrorWriter("test"))

	pendant, err := CreateTestProduct(queries, "Luna Pendant", "necklaces", 4500)
	require.NoError(t, err)
	_, err = CreateTestProduct(queries, "Orbit Necklace", "necklaces", 6800)
	require.NoError(t, err)

	c, rec := newParamContext(http.MethodGet, "/api/products/:id", pendant.ID)
	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var detail ProductDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Luna Pendant", detail.Product.Name)
	assert.Equal(t, "£45.00", detail.Product.Price)
	assert.Empty(t, detail.Reviews)
	require.Len(t, detail.Related, 1)
	assert.Equal(t, "Orbit Necklace", detail.Related[0].Name)
}

func TestGetProductNotFound(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewProductsHandler(queries, NewErrorWriter("test"))

	c, rec := newParamContext(http.MethodGet, "/api/products/:id", "missing")
	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// newParamContext builds a context with the :id route parameter set.
func newParamContext(method, path, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}
