package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"figure-store/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		AppEnv:    "test",
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
	os.Exit(m.Run())
}

func setupRouter() *gin.Engine {
	router := gin.New()
	SetupRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &parsed))
	return parsed
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": 1, "name": "Nezuko Kamado Figure", "price": 89.99, "quantity": 2, "anime": "Demon Slayer", "category": "figures"},
		},
		"shippingInfo": map[string]interface{}{
			"firstName": "Rin",
			"lastName":  "Okumura",
			"email":     "rin@example.com",
		},
		"paymentInfo": map[string]interface{}{
			"cardholderName": "Rin Okumura",
			"cardNumber":     "**** **** **** 4242",
		},
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", decode(t, rr)["status"])
}

func TestGetProducts(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	parsed := decode(t, rr)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, float64(6), parsed["total"])
}

func TestGetProductsFiltered(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodGet, "/api/products?search=goku", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	parsed := decode(t, rr)
	assert.Equal(t, float64(1), parsed["total"])

	rr = performRequest(router, http.MethodGet, "/api/products?category=posters", nil, "")
	parsed = decode(t, rr)
	assert.Equal(t, float64(0), parsed["total"])
}

func TestGetProductNotFound(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodGet, "/api/products/999", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, false, decode(t, rr)["success"])
}

func TestGetCategoriesAndAnime(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []interface{}{"figures"}, decode(t, rr)["data"])

	rr = performRequest(router, http.MethodGet, "/api/anime", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["data"], 6)
}

func TestCartFlow(t *testing.T) {
	router := setupRouter()

	// unknown product
	rr := performRequest(router, http.MethodPost, "/api/cart", map[string]interface{}{"productId": 999}, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// out of stock (product 5 seeded with zero stock)
	rr = performRequest(router, http.MethodPost, "/api/cart", map[string]interface{}{"productId": 5}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// duplicate adds accumulate quantity
	rr = performRequest(router, http.MethodPost, "/api/cart", map[string]interface{}{"productId": 1, "quantity": 2}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	rr = performRequest(router, http.MethodPost, "/api/cart", map[string]interface{}{"productId": 1, "quantity": 3}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = performRequest(router, http.MethodGet, "/api/cart", nil, "")
	parsed := decode(t, rr)
	data := parsed["data"].([]interface{})
	require.Len(t, data, 1)
	item := data[0].(map[string]interface{})
	assert.Equal(t, float64(5), item["quantity"])
	assert.InDelta(t, 5*89.99, parsed["total"].(float64), 0.001)

	// rejected quantity leaves cart unchanged
	rr = performRequest(router, http.MethodPut, "/api/cart/1", map[string]interface{}{"quantity": 0}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = performRequest(router, http.MethodPut, "/api/cart/1", map[string]interface{}{"quantity": 4}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = performRequest(router, http.MethodDelete, "/api/cart/2", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = performRequest(router, http.MethodDelete, "/api/cart", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode(t, rr)["data"])
}

func TestCreateOrderValidation(t *testing.T) {
	router := setupRouter()

	body := checkoutBody()
	delete(body, "shippingInfo")

	rr := performRequest(router, http.MethodPost, "/api/orders", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Shipping information is required", decode(t, rr)["message"])
}

func TestCreateOrderAndFetch(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodPost, "/api/orders", checkoutBody(), "")
	require.Equal(t, http.StatusCreated, rr.Code)

	parsed := decode(t, rr)
	order := parsed["data"].(map[string]interface{})["order"].(map[string]interface{})
	assert.Equal(t, float64(1), order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Regexp(t, `^ORD-\d+-0001$`, order["orderNumber"])
	assert.InDelta(t, 179.98, order["total"].(float64), 0.001)

	// the trimmed projection omits the full detail, which stays fetchable
	rr = performRequest(router, http.MethodGet, "/api/orders/1", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	full := decode(t, rr)["data"].(map[string]interface{})
	items := full["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.InDelta(t, 179.98, line["subtotal"].(float64), 0.001)

	// stock decremented from 15 to 13
	rr = performRequest(router, http.MethodGet, "/api/products/1", nil, "")
	product := decode(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, float64(13), product["stock"])
}

func TestUpdateOrderStatus(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodPost, "/api/orders", checkoutBody(), "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = performRequest(router, http.MethodPut, "/api/orders/1/status", map[string]interface{}{"status": "shipped"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	order := decode(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, "shipped", order["status"])

	rr = performRequest(router, http.MethodPut, "/api/orders/1/status", map[string]interface{}{"status": "teleported"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = performRequest(router, http.MethodPut, "/api/orders/99/status", map[string]interface{}{"status": "shipped"}, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAuthFlow(t *testing.T) {
	router := setupRouter()

	signup := map[string]interface{}{
		"firstName": "Maka",
		"lastName":  "Albarn",
		"email":     "maka@example.com",
		"password":  "scythe-meister",
	}

	rr := performRequest(router, http.MethodPost, "/api/auth/signup", signup, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	data := decode(t, rr)["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)

	user := data["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["id"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	// duplicate email
	rr = performRequest(router, http.MethodPost, "/api/auth/signup", signup, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// wrong password
	rr = performRequest(router, http.MethodPost, "/api/auth/login",
		map[string]interface{}{"email": "maka@example.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = performRequest(router, http.MethodPost, "/api/auth/login",
		map[string]interface{}{"email": "maka@example.com", "password": "scythe-meister"}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	// profile update keeps omitted fields
	rr = performRequest(router, http.MethodPut, "/api/auth/profile",
		map[string]interface{}{"phone": "555-0202"}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, "Maka", updated["firstName"])
	assert.Equal(t, "555-0202", updated["phone"])

	rr = performRequest(router, http.MethodPut, "/api/auth/change-password",
		map[string]interface{}{"currentPassword": "scythe-meister", "newPassword": "soul-resonance"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = performRequest(router, http.MethodPost, "/api/auth/logout", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUserOrdersRequireToken(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodGet, "/api/orders/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = performRequest(router, http.MethodGet, "/api/orders/user", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUserOrdersScopedToUser(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"firstName": "Maka", "lastName": "Albarn",
		"email": "maka@example.com", "password": "scythe-meister",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	token := decode(t, rr)["data"].(map[string]interface{})["token"].(string)

	body := checkoutBody()
	body["userId"] = 1
	rr = performRequest(router, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	// anonymous order must not appear in the user's history
	rr = performRequest(router, http.MethodPost, "/api/orders", checkoutBody(), "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = performRequest(router, http.MethodGet, "/api/orders/user", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	orders := decode(t, rr)["data"].([]interface{})
	require.Len(t, orders, 1)
	assert.Equal(t, float64(1), orders[0].(map[string]interface{})["userId"])
}

func TestUnknownRoute(t *testing.T) {
	router := setupRouter()

	rr := performRequest(router, http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Route not found", decode(t, rr)["message"])
}

func TestCheckoutDefaultSummaryOverHTTP(t *testing.T) {
	router := setupRouter()

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": 1, "name": "Nezuko Kamado Figure", "price": 40, "quantity": 2},
		},
		"shippingInfo": map[string]interface{}{
			"firstName": "Rin", "lastName": "Okumura", "email": "rin@example.com",
		},
		"paymentInfo": map[string]interface{}{
			"cardholderName": "Rin Okumura", "cardNumber": "**** **** **** 4242",
		},
	}

	rr := performRequest(router, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = performRequest(router, http.MethodGet, "/api/orders/1", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	summary := decode(t, rr)["data"].(map[string]interface{})["orderSummary"].(map[string]interface{})
	assert.Equal(t, float64(80), summary["subtotal"])
	assert.Equal(t, float64(0), summary["shipping"])
	assert.Equal(t, float64(0), summary["tax"])
	assert.Equal(t, float64(80), summary["total"])
}
