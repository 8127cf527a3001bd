// Package service holds what the storefront service clients share: boundary
// validation errors and endpoint URL helpers. The clients themselves live in
// the auth, product, cart and order sub packages.
package service
