package mock

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/service/cart"
	"github.com/viant/storefront/service/order"
	"github.com/viant/storefront/service/product"
	"net/http"
	"testing"
)

func call(t *testing.T, server *HTTPTestServer, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, server.URL+path, payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, server *HTTPTestServer, email, password string) *authResponse {
	t.Helper()
	resp := &authResponse{}
	status := call(t, server, http.MethodPost, "/auth/login", "", &loginRequest{Email: email, Password: password}, resp)
	require.Equal(t, http.StatusOK, status)
	return resp
}

func TestBackend_Auth(t *testing.T) {
	server := NewHTTPTestServer()
	defer server.Close()

	var testCases = []struct {
		description string
		method      string
		path        string
		body        interface{}
		expect      int
	}{
		{description: "register", method: http.MethodPost, path: "/auth/register", body: &registerRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"}, expect: http.StatusCreated},
		{description: "duplicate register", method: http.MethodPost, path: "/auth/register", body: &registerRequest{Name: "Ann", Email: "ANN@example.com", Password: "pw"}, expect: http.StatusConflict},
		{description: "missing fields", method: http.MethodPost, path: "/auth/register", body: &registerRequest{Email: "bob@example.com"}, expect: http.StatusBadRequest},
		{description: "login", method: http.MethodPost, path: "/auth/login", body: &loginRequest{Email: "ann@example.com", Password: "pw"}, expect: http.StatusOK},
		{description: "bad password", method: http.MethodPost, path: "/auth/login", body: &loginRequest{Email: "ann@example.com", Password: "nope"}, expect: http.StatusUnauthorized},
		{description: "unknown email", method: http.MethodPost, path: "/auth/login", body: &loginRequest{Email: "zed@example.com", Password: "pw"}, expect: http.StatusUnauthorized},
		{description: "cart without token", method: http.MethodGet, path: "/cart", expect: http.StatusUnauthorized},
	}
	for _, testCase := range testCases {
		status := call(t, server, testCase.method, testCase.path, "", testCase.body, nil)
		assert.Equal(t, testCase.expect, status, testCase.description)
	}
}

func TestBackend_Revoke(t *testing.T) {
	server := NewHTTPTestServer()
	defer server.Close()
	admin := login(t, server, DefaultAdminEmail, DefaultAdminPassword)
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/cart", admin.AccessToken, nil, nil))
	server.Revoke()
	assert.Equal(t, http.StatusUnauthorized, call(t, server, http.MethodGet, "/cart", admin.AccessToken, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, server, http.MethodGet, "/cart", "garbage", nil, nil))
}

func TestBackend_AdminOnly(t *testing.T) {
	server := NewHTTPTestServer()
	defer server.Close()
	registered := &authResponse{}
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/auth/register", "", &registerRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"}, registered))
	assert.Equal(t, RoleCustomer, registered.User.Role)
	assert.Equal(t, http.StatusForbidden, call(t, server, http.MethodGet, "/admin/users", registered.AccessToken, nil, nil))

	admin := login(t, server, DefaultAdminEmail, DefaultAdminPassword)
	var users []*userView
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/admin/users", admin.AccessToken, nil, &users))
	assert.Len(t, users, 2)
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodDelete, "/admin/users/"+registered.User.ID, admin.AccessToken, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, server, http.MethodGet, "/cart", registered.AccessToken, nil, nil))
}

func TestBackend_Catalog(t *testing.T) {
	server := NewHTTPTestServer(WithProducts(
		&product.Product{ID: "p1", Title: "Red Mug", Category: "kitchen", PriceCents: 1250, Stock: 3},
		&product.Product{ID: "p2", Title: "Blue Mug", Category: "kitchen", PriceCents: 1100, Stock: 0},
		&product.Product{ID: "p3", Title: "Lamp", Category: "home", PriceCents: 4999, Stock: 1},
	))
	defer server.Close()

	var testCases = []struct {
		description string
		query       string
		expectIDs   []string
		expectTotal int
	}{
		{description: "all by title", query: "", expectIDs: []string{"p2", "p3", "p1"}, expectTotal: 3},
		{description: "search", query: "?search=mug", expectIDs: []string{"p2", "p1"}, expectTotal: 2},
		{description: "category", query: "?category=home", expectIDs: []string{"p3"}, expectTotal: 1},
		{description: "paging", query: "?skip=1&limit=1", expectIDs: []string{"p3"}, expectTotal: 3},
		{description: "skip past end", query: "?skip=10", expectIDs: []string{}, expectTotal: 3},
	}
	for _, testCase := range testCases {
		list := &productList{}
		require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/products"+testCase.query, "", nil, list), testCase.description)
		var ids = []string{}
		for _, p := range list.Products {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, testCase.expectIDs, ids, testCase.description)
		assert.Equal(t, testCase.expectTotal, list.Total, testCase.description)
	}

	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodGet, "/products/missing", "", nil, nil))
	admin := login(t, server, DefaultAdminEmail, DefaultAdminPassword)
	created := &product.Product{}
	assert.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/products", admin.AccessToken, &product.New{Title: "Chair", Category: "home", PriceCents: 9900, Stock: 2}, created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPost, "/products", admin.AccessToken, &product.New{Category: "home"}, nil))
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodDelete, "/products/"+created.ID, admin.AccessToken, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodDelete, "/products/"+created.ID, admin.AccessToken, nil, nil))
}

func TestBackend_CartAndOrders(t *testing.T) {
	server := NewHTTPTestServer(WithProducts(&product.Product{ID: "p1", Title: "Red Mug", PriceCents: 1250, Stock: 5}))
	defer server.Close()
	admin := login(t, server, DefaultAdminEmail, DefaultAdminPassword)
	token := admin.AccessToken

	userCart := &cart.Cart{}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "/cart/add", token, &cart.Line{ProductID: "p1", Quantity: 1}, userCart))
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "/cart/add", token, &cart.Line{ProductID: "p1", Quantity: 2}, userCart))
	require.Len(t, userCart.Items, 1)
	assert.Equal(t, 3, userCart.Items[0].Quantity)
	assert.EqualValues(t, 1250, userCart.Items[0].PriceAtAdd)
	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPost, "/cart/add", token, &cart.Line{ProductID: "p1", Quantity: 9}, nil))
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodPost, "/cart/add", token, &cart.Line{ProductID: "zz", Quantity: 1}, nil))
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodPut, "/cart/update", token, &cart.Line{ProductID: "zz", Quantity: 1}, nil))
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPut, "/cart/update", token, &cart.Line{ProductID: "p1", Quantity: 2}, userCart))
	assert.EqualValues(t, 2500, userCart.Total())

	placed := &order.Order{}
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/orders/create", token, &order.New{Items: userCart.Items, ShippingAddress: "Default Address"}, placed))
	assert.EqualValues(t, 2500, placed.TotalCents)
	assert.Equal(t, string(order.StatusPending), placed.Status)
	assert.Equal(t, PaymentPending, placed.PaymentStatus)
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/cart", token, nil, userCart))
	assert.True(t, userCart.IsEmpty())

	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPost, "/payments/mock", token, &order.Payment{OrderID: placed.ID, Amount: 1}, nil))
	payment := &order.Payment{}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "/payments/mock", token, &order.Payment{OrderID: placed.ID, Amount: 2500}, payment))
	assert.Equal(t, "succeeded", payment.Status)
	assert.Equal(t, http.StatusConflict, call(t, server, http.MethodPost, "/payments/mock", token, &order.Payment{OrderID: placed.ID, Amount: 2500}, nil))

	var mine []*order.Order
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/orders/my", token, nil, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, string(order.StatusConfirmed), mine[0].Status)
	assert.Equal(t, PaymentPaid, mine[0].PaymentStatus)

	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPut, "/admin/orders/"+placed.ID+"/status", token, &statusRequest{Status: "lost"}, nil))
	updated := &order.Order{}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPut, "/admin/orders/"+placed.ID+"/status", token, &statusRequest{Status: "Shipped"}, updated))
	assert.Equal(t, string(order.StatusShipped), updated.Status)

	require.Equal(t, http.StatusOK, call(t, server, http.MethodDelete, "/cart/remove", token, &removeRequest{ProductID: "p1"}, userCart))
	assert.True(t, userCart.IsEmpty())
}
