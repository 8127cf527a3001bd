// Package gateway implements the authenticated request path shared by every
// storefront service client.
//
// The RoundTripper attaches `Content-Type: application/json` and, when the
// session store holds an access token, `Authorization: Bearer <token>`. A 401
// answer is terminal: the session is cleared, the injected Navigator is asked
// to show the login entry point and ErrUnauthorized is returned. Any other
// status is handed back untouched; callers decide what a failure means.
//
// There is no retry, backoff or timeout beyond the caller's context.
package gateway
