package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intake "github.com/dawsos/intake-api"
	"github.com/dawsos/intake-api/handler"
	"github.com/dawsos/intake-api/memory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	router          chi.Router
	demoRequests    *memory.DemoRequestService
	contactMessages *memory.ContactMessageService
	products        *memory.ProductService
	purchases       *memory.PurchaseService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		demoRequests:    memory.NewDemoRequestService(),
		contactMessages: memory.NewContactMessageService(),
		products:        memory.NewProductService(),
		purchases:       memory.NewPurchaseService(),
	}
	require.NoError(t, intake.SeedCatalog(context.Background(), api.products))

	api.router = handler.Routes(handler.Config{
		Log:             zap.NewNop().Sugar(),
		DemoRequests:    api.demoRequests,
		ContactMessages: api.contactMessages,
		Products:        api.products,
		Purchases:       api.purchases,
	})
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool                `json:"success"`
	ID      string              `json:"id"`
	Message string              `json:"message"`
	Errors  []intake.FieldError `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCreateDemoRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/demo-requests", map[string]interface{}{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"company": "Analytical Engines Ltd",
		"role":    "CTO",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.ID)

	stored, err := api.demoRequests.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, env.ID, stored[0].ID)
	assert.False(t, stored[0].Newsletter)
}

func TestCreateDemoRequestInvalidEmail(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/demo-requests", map[string]interface{}{
		"name":    "Ada Lovelace",
		"email":   "not-an-email",
		"company": "Analytical Engines Ltd",
		"role":    "CTO",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation error", env.Message)

	fields := make([]string, 0, len(env.Errors))
	for _, fe := range env.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "email")

	// No partial record may be stored on validation failure.
	stored, err := api.demoRequests.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateDemoRequestMalformedBody(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/demo-requests", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestListDemoRequests(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/demo-requests", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty store lists as an empty array")

	api.do(t, http.MethodPost, "/demo-requests", map[string]interface{}{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"company": "Analytical Engines Ltd",
		"role":    "CTO",
	})

	rec = api.do(t, http.MethodGet, "/demo-requests", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []intake.DemoRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ada Lovelace", got[0].Name)
}

func TestCreateContactMessage(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/contact-messages", map[string]interface{}{
		"email": "ada@example.com",
		"role":  "Engineer",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.ID)
}

func TestCreateContactMessageMissingRole(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/contact-messages", map[string]interface{}{
		"email": "ada@example.com",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Validation error", env.Message)
}

func TestListProducts(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []intake.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)

	slugs := make([]string, 0, len(got))
	for _, p := range got {
		slugs = append(slugs, p.Slug)
		assert.NotEmpty(t, p.Features, "features must come back as a list")
	}
	assert.Equal(t, []string{"dawsos-starter", "dawsos-pro", "dawsos-bundle"}, slugs)
}

func TestGetProductBySlug(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/products/dawsos-pro", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got intake.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "dawsos-pro", got.Slug)
	assert.Equal(t, "199.00", got.Price)
	assert.Len(t, got.Features, 7)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/products/nonexistent", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Product not found", env.Message)
}

func TestCreatePurchase(t *testing.T) {
	api := newTestAPI(t)

	pro, err := api.products.GetBySlug(context.Background(), "dawsos-pro")
	require.NoError(t, err)

	rec := api.do(t, http.MethodPost, "/purchases", map[string]interface{}{
		"userId":    "user-1",
		"productId": pro.ID,
		"amount":    pro.Price,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, "Purchase created successfully", env.Message)

	stored, err := api.purchases.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, intake.PurchasePending, stored[0].Status)
}

func TestCreatePurchaseMissingFields(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/purchases", map[string]interface{}{
		"userId": "user-1",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Validation error", env.Message)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}
