// Package session holds the client-side login state of a storefront user: the
// access token, the refresh token and the user profile.
//
// The state is kept behind the Store interface so that callers can choose where
// it lives. An in-memory store is the default and matches a single interactive
// process; FileStore keeps the session across CLI invocations (optionally
// encrypted) and RedisStore lets several hosts share one login.
//
// Stores do not track expiry. A session ends when it is cleared, either on
// logout or when a backend answers 401.
package session
