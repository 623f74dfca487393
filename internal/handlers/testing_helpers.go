package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/avelinejewellery/aveline/storage"
	"github.com/avelinejewellery/aveline/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// NewTestDB creates a test database with migrations applied
func NewTestDB() (*sql.DB, *db.Queries, func()) {
	database, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return database, queries, cleanup
}

// CreateTestProduct inserts a product row for tests
func CreateTestProduct(queries *db.Queries, name, category string, pricePence int64) (db.Product, error) {
	id := ulid.Make().String()
	return queries.CreateProduct(context.Background(), db.CreateProductParams{
		ID:          id,
		Name:        name,
		Slug:        id,
		Description: "Test product",
		Category:    category,
		Material:    "sterling-silver",
		PricePence:  pricePence,
		ImageUrl:    "https://cdn.example.com/" + id + ".jpg",
	})
}

// AssertJSONResponse checks if the response is valid JSON and returns the parsed body
func AssertJSONResponse(rec *httptest.ResponseRecorder) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
