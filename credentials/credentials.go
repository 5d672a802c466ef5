package credentials

import (
	"context"
	"errors"
	"os"
)

// ErrNoSession indicates that no credential is available for the caller.
var ErrNoSession = errors.New("credentials: no active session")

// ErrSessionExpired indicates the resolved credential is past its expiry.
var ErrSessionExpired = errors.New("credentials: session expired")

// TokenSource supplies the bearer token attached to outgoing requests.
// Token is called once per request and must be safe for concurrent use.
type TokenSource interface {
	// Token returns the current bearer token, or an error when no usable
	// session exists.
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Static returns a TokenSource that always yields the given token.
// An empty token resolves to ErrNoSession.
func Static(token string) TokenSource {
	return staticSource(token)
}

type staticSource string

func (s staticSource) Token(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoSession
	}
	return string(s), nil
}

// FromEnv returns a TokenSource that reads the named environment variable
// on every call, so a rotated token takes effect without rebuilding the
// client. An unset or empty variable resolves to ErrNoSession.
func FromEnv(key string) TokenSource {
	return envSource(key)
}

type envSource string

func (e envSource) Token(context.Context) (string, error) {
	token := os.Getenv(string(e))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// IsUnauthenticated reports whether err means the caller has no usable
// session (missing or expired).
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrNoSession) || errors.Is(err, ErrSessionExpired)
}
