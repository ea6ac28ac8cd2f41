package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rajender1411/canteen-savor-hub/cart"
	"github.com/Rajender1411/canteen-savor-hub/catalog"
	"github.com/Rajender1411/canteen-savor-hub/handlers"
	"github.com/Rajender1411/canteen-savor-hub/notify"
	"github.com/Rajender1411/canteen-savor-hub/routes"
	"github.com/Rajender1411/canteen-savor-hub/session"
	"github.com/Rajender1411/canteen-savor-hub/storage"
)

var testSecret = []byte("test_secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	log := zap.NewNop()
	store := storage.NewMemoryStore()
	notifier := notify.NewRecorder()

	menu := catalog.NewProvider(0, log)
	require.NoError(t, menu.Load(context.Background()))
	carts := cart.NewRegistry(store, notifier, log)
	sessions := session.NewManager(store, notifier, log, "admin", "admin123")

	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		Menu:   handlers.NewMenuHandler(menu),
		Cart:   handlers.NewCartHandler(carts, menu),
		Auth:   handlers.NewAuthHandler(sessions, testSecret),
		Admin:  handlers.NewAdminHandler(carts),
		Secret: testSecret,
	})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestGetMenu(t *testing.T) {
	r := newTestServer(t)

	w, body := do(t, r, http.MethodGet, "/api/menu", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 14, body["count"])

	w, body = do(t, r, http.MethodGet, "/api/menu?category=desserts", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["count"])

	w, body = do(t, r, http.MethodGet, "/api/menu?category=nonexistent", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code, "an unknown category is empty, not an error")
	assert.EqualValues(t, 0, body["count"])
}

func TestGetMenuItem(t *testing.T) {
	r := newTestServer(t)

	w, body := do(t, r, http.MethodGet, "/api/menu/tiffin-1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	item := body["item"].(map[string]any)
	assert.Equal(t, "Masala Dosa", item["name"])

	w, _ = do(t, r, http.MethodGet, "/api/menu/no-such-item", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSpecials(t *testing.T) {
	r := newTestServer(t)

	w, body := do(t, r, http.MethodGet, "/api/menu/specials", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, body["count"])
}

func TestCartAddMergeFlow(t *testing.T) {
	r := newTestServer(t)
	headers := map[string]string{"X-Cart-Token": "guest-42"}

	w, body := do(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"item_id": "snacks-1", "quantity": 2}, headers)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Added Samosa to cart", body["message"])

	w, body = do(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"item_id": "snacks-1", "quantity": 3}, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated Samosa quantity in cart", body["message"])

	cartBody := body["cart"].(map[string]any)
	items := cartBody["items"].([]any)
	require.Len(t, items, 1, "duplicate adds must merge into one line")
	assert.EqualValues(t, 5, cartBody["total_items"])
	assert.EqualValues(t, 100, cartBody["subtotal"])
}

func TestCartAddUnknownItem(t *testing.T) {
	r := newTestServer(t)

	w, _ := do(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"item_id": "no-such-item", "quantity": 1}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartUpdateAndRemove(t *testing.T) {
	r := newTestServer(t)
	headers := map[string]string{"X-Cart-Token": "guest-7"}

	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"item_id": "tiffin-1", "quantity": 2}, headers)

	w, body := do(t, r, http.MethodPut, "/api/cart/items/tiffin-1", gin.H{"quantity": 4}, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, body["cart"].(map[string]any)["total_items"])

	// zero removes the line
	w, body = do(t, r, http.MethodPut, "/api/cart/items/tiffin-1", gin.H{"quantity": 0}, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["cart"].(map[string]any)["total_items"])

	// removing an absent line is still a 200
	w, _ = do(t, r, http.MethodDelete, "/api/cart/items/tiffin-1", nil, headers)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartsAreSeparatedByOwner(t *testing.T) {
	r := newTestServer(t)

	do(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"item_id": "tiffin-1", "quantity": 1}, map[string]string{"X-Cart-Token": "a"})
	do(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"item_id": "meals-1", "quantity": 2}, map[string]string{"X-Cart-Token": "b"})

	_, body := do(t, r, http.MethodGet, "/api/cart", nil, map[string]string{"X-Cart-Token": "a"})
	assert.EqualValues(t, 1, body["cart"].(map[string]any)["total_items"])

	_, body = do(t, r, http.MethodGet, "/api/cart", nil, map[string]string{"X-Cart-Token": "b"})
	assert.EqualValues(t, 2, body["cart"].(map[string]any)["total_items"])
}

func TestUserLoginFlow(t *testing.T) {
	r := newTestServer(t)

	// nine digits fails validation
	w, body := do(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"name": "Rahul", "mobile": "987654321"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "10 digits")

	// ten digits succeeds and yields a usable token
	w, body = do(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"name": "Rahul", "mobile": "9876543210"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	w, body = do(t, r, http.MethodGet, "/api/profile", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Rahul", user["name"])
	assert.Equal(t, false, user["is_admin"])
}

func TestAdminLoginFlow(t *testing.T) {
	r := newTestServer(t)

	w, _ := do(t, r, http.MethodPost, "/api/auth/admin-login",
		gin.H{"username": "admin", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := do(t, r, http.MethodPost, "/api/auth/admin-login",
		gin.H{"username": "admin", "password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Admin login successful", body["message"])
	token := body["token"].(string)

	// admin token opens the dashboard
	w, body = do(t, r, http.MethodGet, "/api/admin/carts", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminEndpointsRejectRegularUsers(t *testing.T) {
	r := newTestServer(t)

	_, body := do(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"name": "Rahul", "mobile": "9876543210"}, nil)
	token := body["token"].(string)

	w, _ := do(t, r, http.MethodGet, "/api/admin/carts", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/admin/carts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionEndpoint(t *testing.T) {
	r := newTestServer(t)

	_, body := do(t, r, http.MethodGet, "/api/session", nil, nil)
	assert.Equal(t, false, body["authenticated"])
	assert.Equal(t, "ANONYMOUS", body["state"])

	w, body := do(t, r, http.MethodPut, "/api/session/panel", gin.H{"open": true}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["sign_in_open"])

	do(t, r, http.MethodPost, "/api/auth/login", gin.H{"name": "Rahul", "mobile": "9876543210"}, nil)

	_, body = do(t, r, http.MethodGet, "/api/session", nil, nil)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, "USER_SESSION", body["state"])
	assert.Equal(t, false, body["sign_in_open"], "login closes the sign-in panel")
}

func TestLogout(t *testing.T) {
	r := newTestServer(t)

	_, body := do(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"name": "Rahul", "mobile": "9876543210"}, nil)
	token := body["token"].(string)

	w, body := do(t, r, http.MethodPost, "/api/auth/logout", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", body["message"])

	_, body = do(t, r, http.MethodGet, "/api/session", nil, nil)
	assert.Equal(t, false, body["authenticated"])
}

func TestStateMachineInfo(t *testing.T) {
	r := newTestServer(t)

	w, body := do(t, r, http.MethodGet, "/api/state-machine", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	transitions := body["state_machine"].([]any)
	assert.Len(t, transitions, 4)
}
