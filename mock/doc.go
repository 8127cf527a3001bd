// Package mock provides an in-memory storefront backend that serves the auth,
// products, cart and orders endpoints from one echo router.
//
// The backend issues HS256 access tokens, checks bearer tokens on protected
// routes and can revoke every issued token to simulate session expiry.
package mock
