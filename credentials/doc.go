// Package credentials supplies bearer tokens to the Summit API client.
//
// The client never stores a token: every request resolves the credential
// through a TokenSource, so session refresh stays where it belongs, in the
// identity provider's SDK. A source that cannot produce a token reports
// ErrNoSession, which aborts the request before any network I/O.
//
// # Usage
//
//	// Fixed token (tests, scripts, service accounts).
//	src := credentials.Static(token)
//
//	// Token re-read from the environment on every call.
//	src := credentials.FromEnv("SUMMIT_API_TOKEN")
//
//	// Closure over an identity provider session.
//	src := credentials.TokenSourceFunc(func(ctx context.Context) (string, error) {
//	    return session.IDToken(ctx)
//	})
//
//	// Reject JWTs that are already expired instead of burning a request.
//	src = credentials.ExpiryChecked(src, 30*time.Second)
package credentials
