package credentials

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryChecked wraps src so that tokens parseable as JWTs are rejected
// with ErrSessionExpired once their exp claim is within leeway of the
// current time. The signature is not verified; the wrapper only reads the
// claim to fail fast instead of spending a request on a predictable 401.
//
// Tokens that are not JWTs, or that carry no exp claim, pass through
// unchanged. The wrapper is stateless: each call inspects the freshly
// resolved token.
func ExpiryChecked(src TokenSource, leeway time.Duration) TokenSource {
	return &expiryChecked{src: src, leeway: leeway}
}

type expiryChecked struct {
	src    TokenSource
	leeway time.Duration
}

func (e *expiryChecked) Token(ctx context.Context) (string, error) {
	token, err := e.src.Token(ctx)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Not a JWT. Let the backend decide.
		return token, nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return token, nil
	}
	if time.Until(exp.Time) <= e.leeway {
		return "", fmt.Errorf("%w: token expired at %s", ErrSessionExpired, exp.Time.Format(time.RFC3339))
	}
	return token, nil
}
