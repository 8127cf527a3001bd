package cart_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/mock"
	"github.com/viant/storefront/service"
	"github.com/viant/storefront/service/auth"
	"github.com/viant/storefront/service/cart"
	"github.com/viant/storefront/service/product"
	"github.com/viant/storefront/session"
	"testing"
)

func loggedIn(t *testing.T, server *mock.HTTPTestServer, store session.Store) {
	t.Helper()
	ctx := context.Background()
	gw := gateway.New(gateway.WithStore(store))
	result, err := auth.NewClient(server.URL, gw).Login(ctx, &auth.Credentials{Email: mock.DefaultAdminEmail, Password: mock.DefaultAdminPassword})
	require.NoError(t, err)
	require.NoError(t, session.Establish(ctx, store, result.Token(), &result.User))
}

func TestClient_Lifecycle(t *testing.T) {
	server := mock.NewHTTPTestServer(mock.WithProducts(
		&product.Product{ID: "p1", Title: "Red Mug", PriceCents: 1250, Stock: 5},
		&product.Product{ID: "p2", Title: "Lamp", PriceCents: 4999, Stock: 1},
	))
	defer server.Close()
	store := session.NewMemoryStore()
	loggedIn(t, server, store)
	client := cart.NewClient(server.URL, gateway.New(gateway.WithStore(store)))
	ctx := context.Background()

	current, err := client.Get(ctx)
	require.NoError(t, err)
	assert.True(t, current.IsEmpty())

	require.NoError(t, client.Add(ctx, &cart.Line{ProductID: "p1", Quantity: 2}))
	require.NoError(t, client.Add(ctx, &cart.Line{ProductID: "p2", Quantity: 1}))
	require.NoError(t, client.Update(ctx, &cart.Line{ProductID: "p1", Quantity: 3}))
	current, err = client.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, current.Items, 2)
	assert.EqualValues(t, 3*1250+4999, current.Total())

	require.NoError(t, client.Remove(ctx, "p2"))
	current, err = client.Get(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3750, current.Total())
}

func TestClient_Validation(t *testing.T) {
	server := mock.NewHTTPTestServer()
	defer server.Close()
	client := cart.NewClient(server.URL, gateway.New())
	ctx := context.Background()

	var testCases = []struct {
		description string
		call        func() error
	}{
		{description: "zero quantity", call: func() error { return client.Add(ctx, &cart.Line{ProductID: "p1"}) }},
		{description: "negative update", call: func() error { return client.Update(ctx, &cart.Line{ProductID: "p1", Quantity: -1}) }},
		{description: "missing product", call: func() error { return client.Remove(ctx, "") }},
	}
	for _, testCase := range testCases {
		assert.True(t, service.IsValidation(testCase.call()), testCase.description)
	}
	assert.EqualValues(t, 0, server.Hits())
}

func TestClient_Unauthorized(t *testing.T) {
	server := mock.NewHTTPTestServer()
	defer server.Close()
	store := session.NewMemoryStore(session.WithTokens("stale", "r1"), session.WithUser(&session.User{Name: "A"}))
	client := cart.NewClient(server.URL, gateway.New(gateway.WithStore(store)))

	_, err := client.Get(context.Background())
	assert.True(t, errors.Is(err, gateway.ErrUnauthorized))
	snapshot := session.Snapshot(context.Background(), store)
	assert.Equal(t, session.Anonymous, snapshot.State())
	assert.True(t, snapshot.User.IsEmpty())
}
