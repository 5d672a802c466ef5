package summit

import (
	"context"
	"net/http"

	"github.com/summitpt/summit-go/transport"
)

// AuthService verifies bearer tokens against the backend.
type AuthService struct {
	client *Client
}

// Verify checks the caller's token server-side and returns the resolved
// identity. A missing profile reports not found; a bad token reports auth.
func (s *AuthService) Verify(ctx context.Context) (*Session, error) {
	return do[*Session](ctx, s.client, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/verify",
	})
}
