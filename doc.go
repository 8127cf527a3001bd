// Package storefront provides a client for a storefront backed by four HTTP
// services: auth, products, cart and orders.
//
// The package glues the session store, the authenticating gateway and the
// per-service clients into page level actions such as Login, AddToCart,
// Checkout or the admin listings. Every action returns a typed view. The
// client never navigates by itself: it asks its gateway.Navigator and, for a
// missing or rejected session, returns gateway.ErrLoginRequired or
// gateway.ErrUnauthorized.
//
// Options can be populated from CLI flags, a YAML file and STOREFRONT_*
// environment variables:
//
//	options := &storefront.Options{}
//	_ = options.Init(ctx)
//	client, _ := storefront.New(ctx, options, storefront.WithNavigator(nav))
//	user, err := client.Login(ctx, email, password)
package storefront
