package summit

import (
	"context"
	"fmt"
	"net/url"
)

// UsersService manages user accounts and profiles.
type UsersService struct {
	client *Client
}

// List returns every user account (HR/admin only).
func (s *UsersService) List(ctx context.Context) ([]User, error) {
	env, err := get[usersEnvelope](ctx, s.client, "/users", nil)
	if err != nil {
		return nil, err
	}
	return env.Users, nil
}

// Me returns the caller's own profile.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	return get[*User](ctx, s.client, "/users/me", nil)
}

// Create registers a new user account (HR/admin only). The UID must match
// an existing identity in the auth provider.
func (s *UsersService) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*CreateUserResult](ctx, s.client, "/users", req)
}

// Update changes a user's profile fields (HR/admin only). Only fields set
// on req are sent; nil fields are left untouched on the backend.
func (s *UsersService) Update(ctx context.Context, uid string, req UpdateUserRequest) (*Ack, error) {
	return put[*Ack](ctx, s.client, "/users/"+url.PathEscape(uid), req)
}

// UpdateStatus activates or deactivates a user account (HR/admin only).
// Status must be UserStatusActive or UserStatusInactive.
func (s *UsersService) UpdateStatus(ctx context.Context, uid, status string) (*Ack, error) {
	body := userStatusUpdate{Status: status}
	if err := validatePayload(body); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/users/%s/status", url.PathEscape(uid))
	return put[*Ack](ctx, s.client, path, body)
}
