package api

import (
	"bytes"
	"cafeqr_server/database"
	"cafeqr_server/structs"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	appOnce   sync.Once
	appRouter chi.Router
)

// newTestApp builds the full router exactly once. The health routes register
// prometheus collectors globally, so a second App per process would panic.
func newTestApp(t *testing.T) chi.Router {
	t.Helper()
	appOnce.Do(func() {
		cfg := &structs.Config{
			Server: &structs.ServerConfig{
				AppName:     "CafeQR",
				Environment: "test",
				Port:        ":0",
			},
			Cors: &structs.CorsConfig{
				AllowOrigins: []string{"*"},
				AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders: []string{"Authorization", "Content-Type"},
			},
			Store: &structs.StoreConfig{Path: "data.json"},
			Auth: &structs.AuthConfig{
				AccessTokenSecret: "integration-test-secret",
				AccessTokenExpiry: time.Hour,
				AdminUsername:     "admin",
				AdminPassword:     "hunter2",
			},
		}

		// Not t.TempDir: the store must outlive the first test that happens
		// to initialize the app.
		dir, err := os.MkdirTemp("", "cafeqr-api-test")
		if err != nil {
			t.Fatal(err)
		}
		store, err := database.NewStore(filepath.Join(dir, "data.json"), gecho.NewDefaultLogger())
		if err != nil {
			t.Fatal(err)
		}

		appRouter = App(cfg, store)
	})
	return appRouter
}

func doJSON(t *testing.T, app chi.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func adminToken(t *testing.T, app chi.Router) string {
	t.Helper()
	rec := doJSON(t, app, http.MethodPost, "/login", "", map[string]string{
		"username": "admin",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	login := decodeData[structs.LoginResponse](t, rec)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestRootAndUnknownRoutes(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, app, http.MethodPost, "/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing password fails validation")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/categories", "", map[string]any{"name": "Drinks"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, app, http.MethodPost, "/categories", "garbage-token", map[string]any{"name": "Drinks"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/reports/payments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyToken(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	rec := doJSON(t, app, http.MethodGet, "/verify", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/verify", "expired-or-forged", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Walks the whole customer-facing flow: admin builds the catalog and floor,
// a customer orders from a table, the admin settles the bill.
func TestOrderLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	rec := doJSON(t, app, http.MethodPost, "/categories", token, map[string]any{
		"name": "Drinks", "icon": "☕", "sort_order": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	category := decodeData[structs.Category](t, rec)

	rec = doJSON(t, app, http.MethodPost, "/products", token, map[string]any{
		"category_id": category.Id, "name": "Latte", "price": 75,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	product := decodeData[structs.Product](t, rec)

	rec = doJSON(t, app, http.MethodPost, "/tables", token, map[string]any{
		"name": "Table 1", "section": "indoor",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	table := decodeData[structs.Table](t, rec)

	// Menu is public and now lists the product.
	rec = doJSON(t, app, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	menu := decodeData[[]map[string]any](t, rec)
	require.Len(t, menu, 1)

	// Customer places an order without authentication.
	rec = doJSON(t, app, http.MethodPost, "/tables/"+table.Id.String()+"/orders", "", map[string]any{
		"items": []map[string]any{{"product_id": product.Id, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeData[map[string]string](t, rec)
	orderId := created["orderId"]
	require.NotEmpty(t, orderId)

	rec = doJSON(t, app, http.MethodGet, "/tables/"+table.Id.String()+"/orders", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Settlement is admin-only.
	rec = doJSON(t, app, http.MethodGet, "/orders/"+orderId+"/total", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/orders/"+orderId+"/total", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	total := decodeData[map[string]any](t, rec)
	assert.Equal(t, 150.0, total["total"])

	rec = doJSON(t, app, http.MethodPut, "/orders/"+orderId+"/close", token, map[string]any{
		"payments": []map[string]any{
			{"method": "cash", "amount": 100},
			{"method": "card", "amount": 50},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// A second close is rejected.
	rec = doJSON(t, app, http.MethodPut, "/orders/"+orderId+"/close", token, map[string]any{
		"payments": []map[string]any{{"method": "cash", "amount": 150}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/reports/payments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decodeData[map[string]any](t, rec)
	daily, ok := report["daily"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 150.0, daily["total"])
}
