package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/mock"
	"github.com/viant/storefront/service/auth"
	"github.com/viant/storefront/service/product"
	"github.com/viant/storefront/session"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type recordingNavigator struct {
	mu        sync.Mutex
	redirects []gateway.Redirect
}

func (n *recordingNavigator) Navigate(_ context.Context, redirect gateway.Redirect) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redirects = append(n.redirects, redirect)
}

func (n *recordingNavigator) last() gateway.Redirect {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.redirects) == 0 {
		return gateway.Redirect{}
	}
	return n.redirects[len(n.redirects)-1]
}

func newTestClient(t *testing.T, baseURL string, store session.Store) (*Client, *recordingNavigator) {
	t.Helper()
	options := &Options{SessionURL: MemorySession}
	options.UseBaseURL(baseURL)
	navigator := &recordingNavigator{}
	client, err := New(context.Background(), options, WithStore(store), WithNavigator(navigator))
	require.NoError(t, err)
	return client, navigator
}

func seededServer(t *testing.T) *mock.HTTPTestServer {
	server := mock.NewHTTPTestServer(
		mock.WithProducts(
			&product.Product{ID: "p1", Title: "Red Mug", Category: "kitchen", PriceCents: 1250, Stock: 5},
			&product.Product{ID: "p2", Title: "Lamp", Category: "home", PriceCents: 4999, Stock: 2},
		),
		mock.WithAccount(session.User{ID: "u1", Name: "Ann", Email: "ann@example.com"}, "pw"),
	)
	t.Cleanup(server.Close)
	return server
}

func TestClient_LoginEstablishesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"t1","refreshToken":"r1","user":{"name":"A"}}`))
	}))
	defer server.Close()
	store := session.NewMemoryStore()
	client, navigator := newTestClient(t, server.URL, store)

	user, err := client.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)

	ctx := context.Background()
	token, _ := store.LookupToken(ctx)
	refreshToken, _ := store.LookupRefreshToken(ctx)
	stored, ok := store.LookupUser(ctx)
	assert.Equal(t, "t1", token)
	assert.Equal(t, "r1", refreshToken)
	assert.True(t, ok)
	assert.Equal(t, &session.User{Name: "A"}, stored)
	assert.Equal(t, gateway.Redirect{Route: gateway.RouteHome, Delay: HomeRedirectDelay}, navigator.last())
}

func TestClient_AddToCartWithoutSession(t *testing.T) {
	server := seededServer(t)
	client, navigator := newTestClient(t, server.URL, session.NewMemoryStore())

	err := client.AddToCart(context.Background(), "p1", 1)
	assert.True(t, errors.Is(err, gateway.ErrLoginRequired))
	assert.Equal(t, gateway.RouteLogin, navigator.last().Route)
	assert.EqualValues(t, 0, server.Hits())
}

func TestClient_GuardedActionsWithoutSession(t *testing.T) {
	server := seededServer(t)
	client, _ := newTestClient(t, server.URL, session.NewMemoryStore())
	ctx := context.Background()

	var testCases = []struct {
		description string
		call        func() error
	}{
		{description: "cart", call: func() error { _, err := client.Cart(ctx); return err }},
		{description: "update cart", call: func() error { _, err := client.UpdateCart(ctx, "p1", 2); return err }},
		{description: "remove from cart", call: func() error { _, err := client.RemoveFromCart(ctx, "p1"); return err }},
		{description: "checkout", call: func() error { _, err := client.Checkout(ctx, ""); return err }},
		{description: "orders", call: func() error { _, err := client.Orders(ctx); return err }},
		{description: "admin products", call: func() error { _, err := client.AdminProducts(ctx); return err }},
		{description: "add product", call: func() error { _, err := client.AddProduct(ctx, &product.New{}); return err }},
		{description: "delete product", call: func() error { return client.DeleteProduct(ctx, "p1") }},
		{description: "admin users", call: func() error { _, err := client.AdminUsers(ctx); return err }},
		{description: "delete user", call: func() error { return client.DeleteUser(ctx, "u1") }},
		{description: "admin orders", call: func() error { _, err := client.AdminOrders(ctx); return err }},
		{description: "update order status", call: func() error { return client.UpdateOrderStatus(ctx, "o1", "shipped") }},
	}
	for _, testCase := range testCases {
		assert.True(t, errors.Is(testCase.call(), gateway.ErrLoginRequired), testCase.description)
	}
	assert.EqualValues(t, 0, server.Hits())
}

func TestClient_ShoppingFlow(t *testing.T) {
	server := seededServer(t)
	store := session.NewMemoryStore()
	client, navigator := newTestClient(t, server.URL, store)
	ctx := context.Background()

	list, err := client.Products(ctx, "mug", "")
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "p1", list.Products[0].ID)

	_, err = client.Login(ctx, "ann@example.com", "pw")
	require.NoError(t, err)
	nav := client.Navigation(ctx)
	assert.True(t, nav.Logout)
	assert.False(t, nav.Admin)
	assert.False(t, nav.Login)

	_, err = client.Checkout(ctx, "")
	assert.True(t, errors.Is(err, ErrEmptyCart))

	require.NoError(t, client.AddToCart(ctx, "p1", 0))
	require.NoError(t, client.AddToCart(ctx, "p2", 1))
	view, err := client.UpdateCart(ctx, "p1", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2*1250+4999, view.Total)
	view, err = client.RemoveFromCart(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.EqualValues(t, 2500, view.Lines[0].Subtotal)

	receipt, err := client.Checkout(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultShippingAddress, receipt.Order.ShippingAddress)
	assert.EqualValues(t, 2500, receipt.Payment.Amount)
	assert.Equal(t, gateway.RouteOrders, navigator.last().Route)

	orders, err := client.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mock.PaymentPaid, orders[0].PaymentStatus)

	view, err = client.Cart(ctx)
	require.NoError(t, err)
	assert.True(t, view.IsEmpty())
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	server := seededServer(t)
	store := session.NewMemoryStore()
	client, navigator := newTestClient(t, server.URL, store)
	ctx := context.Background()

	_, err := client.Login(ctx, "ann@example.com", "pw")
	require.NoError(t, err)
	server.Revoke()

	_, err = client.Cart(ctx)
	assert.True(t, errors.Is(err, gateway.ErrUnauthorized))
	assert.Equal(t, gateway.RouteLogin, navigator.last().Route)
	current := client.Session(ctx)
	assert.Equal(t, session.Anonymous, current.State())
	assert.Empty(t, current.RefreshToken())
	assert.True(t, current.User.IsEmpty())
	assert.Equal(t, &Navigation{Login: true, Register: true}, client.Navigation(ctx))
}

func TestClient_Logout(t *testing.T) {
	var testCases = []struct {
		description string
		revoke      bool
	}{
		{description: "server accepts logout"},
		{description: "server rejects logout", revoke: true},
	}
	for _, testCase := range testCases {
		server := seededServer(t)
		store := session.NewMemoryStore()
		client, navigator := newTestClient(t, server.URL, store)
		ctx := context.Background()
		_, err := client.Login(ctx, "ann@example.com", "pw")
		require.NoError(t, err, testCase.description)
		if testCase.revoke {
			server.Revoke()
		}
		require.NoError(t, client.Logout(ctx), testCase.description)
		assert.Equal(t, session.Anonymous, client.Session(ctx).State(), testCase.description)
		assert.Equal(t, gateway.RouteHome, navigator.last().Route, testCase.description)
	}
}

func TestClient_LogoutSendsRefreshToken(t *testing.T) {
	var testCases = []struct {
		description  string
		refreshToken string
	}{
		{description: "refresh token held", refreshToken: "r1"},
		{description: "no refresh token", refreshToken: ""},
	}
	for _, testCase := range testCases {
		var mu sync.Mutex
		var bodies []map[string]string
		var authorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/logout", r.URL.Path, testCase.description)
			body := map[string]string{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body), testCase.description)
			mu.Lock()
			bodies = append(bodies, body)
			authorization = r.Header.Get("Authorization")
			mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"logged out"}`))
		}))
		store := session.NewMemoryStore(session.WithTokens("t1", testCase.refreshToken))
		client, navigator := newTestClient(t, server.URL, store)
		ctx := context.Background()

		require.NoError(t, client.Logout(ctx), testCase.description)
		server.Close()
		mu.Lock()
		require.Len(t, bodies, 1, testCase.description)
		assert.Equal(t, map[string]string{"refreshToken": testCase.refreshToken}, bodies[0], testCase.description)
		assert.Equal(t, "Bearer t1", authorization, testCase.description)
		mu.Unlock()
		assert.Equal(t, session.Anonymous, client.Session(ctx).State(), testCase.description)
		assert.Equal(t, gateway.RouteHome, navigator.last().Route, testCase.description)
	}
}

func TestClient_RegisterAndWhoami(t *testing.T) {
	server := seededServer(t)
	client, _ := newTestClient(t, server.URL, session.NewMemoryStore())
	ctx := context.Background()

	_, err := client.Register(ctx, &auth.Registration{Name: "Bob", Email: "bob@example.com", Password: "a", ConfirmPassword: "b"})
	assert.True(t, errors.Is(err, auth.ErrPasswordMismatch))
	assert.EqualValues(t, 0, server.Hits())

	user, err := client.Register(ctx, &auth.Registration{Name: "Bob", Email: "bob@example.com", Password: "a", ConfirmPassword: "a"})
	require.NoError(t, err)
	assert.Equal(t, mock.RoleCustomer, user.Role)

	identity := client.Whoami(ctx)
	assert.Equal(t, session.Authenticated, identity.State)
	require.NotNil(t, identity.Claims)
	assert.Equal(t, "bob@example.com", identity.Claims.Email)
	assert.Equal(t, user.ID, identity.Claims.Subject)
}

func TestClient_Admin(t *testing.T) {
	server := seededServer(t)
	client, _ := newTestClient(t, server.URL, session.NewMemoryStore())
	ctx := context.Background()
	_, err := client.Login(ctx, mock.DefaultAdminEmail, mock.DefaultAdminPassword)
	require.NoError(t, err)
	assert.True(t, client.Navigation(ctx).Admin)

	created, err := client.AddProduct(ctx, &product.New{Title: "Chair", Category: "home", PriceCents: 9900, Stock: 1})
	require.NoError(t, err)
	list, err := client.AdminProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Products, 3)
	require.NoError(t, client.DeleteProduct(ctx, created.ID))

	users, err := client.AdminUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	require.NoError(t, client.DeleteUser(ctx, "u1"))

	require.NoError(t, client.AddToCart(ctx, "p1", 1))
	receipt, err := client.Checkout(ctx, "1 Main St")
	require.NoError(t, err)
	require.NoError(t, client.UpdateOrderStatus(ctx, receipt.Order.ID, "DELIVERED"))
	orders, err := client.AdminOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "delivered", orders[0].Status)
	assert.Error(t, client.UpdateOrderStatus(ctx, receipt.Order.ID, "lost"))
}
