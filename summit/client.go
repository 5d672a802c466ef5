package summit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/summitpt/summit-go/transport"
)

// Version is the library version reported in the User-Agent header.
const Version = "0.3.0"

// Client is the Summit PT Clinic API client. Endpoint wrappers are grouped
// by resource: c.Attendance.TimeIn(...), c.Users.List(...), and so on.
// All requests use Content-Type: application/json and Accept: application/json.
type Client struct {
	transport *transport.Client

	// Auth verifies tokens and resolves the caller's identity.
	Auth *AuthService
	// Attendance covers time-in/time-out and attendance listings.
	Attendance *AttendanceService
	// Leave files and reviews leave requests.
	Leave *LeaveService
	// Overtime files and reviews overtime requests.
	Overtime *OvertimeService
	// Reports submits and reviews weekly reports.
	Reports *ReportsService
	// Payroll generates and lists payroll records.
	Payroll *PayrollService
	// Users administers user accounts.
	Users *UsersService
}

// New creates a Summit API client.
// JSON headers are applied automatically.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Ensure JSON headers
	if cfg.Headers == nil {
		cfg.Headers = make(map[string]string)
	}
	if _, ok := cfg.Headers["Content-Type"]; !ok {
		cfg.Headers["Content-Type"] = "application/json"
	}
	if _, ok := cfg.Headers["Accept"]; !ok {
		cfg.Headers["Accept"] = "application/json"
	}

	t, err := transport.New(transport.Config{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		Credentials: cfg.Credentials,
		Headers:     cfg.Headers,
		UserAgent:   cfg.UserAgent,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{transport: t}
	c.Auth = &AuthService{client: c}
	c.Attendance = &AttendanceService{client: c}
	c.Leave = &LeaveService{client: c}
	c.Overtime = &OvertimeService{client: c}
	c.Reports = &ReportsService{client: c}
	c.Payroll = &PayrollService{client: c}
	c.Users = &UsersService{client: c}
	return c, nil
}

// Transport returns the underlying transport client, for requests outside
// the typed surface.
func (c *Client) Transport() *transport.Client {
	return c.transport
}

// ServiceInfo returns the backend's root banner. No authentication needed.
func (c *Client) ServiceInfo(ctx context.Context) (*ServiceInfo, error) {
	return do[*ServiceInfo](ctx, c, transport.Request{
		Method: http.MethodGet,
		Path:   "/",
		NoAuth: true,
	})
}

// Health reports backend liveness. No authentication needed.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	return do[*HealthStatus](ctx, c, transport.Request{
		Method: http.MethodGet,
		Path:   "/health",
		NoAuth: true,
	})
}

// get issues a GET request and decodes the response into T.
func get[T any](ctx context.Context, c *Client, path string, query map[string]string) (T, error) {
	return do[T](ctx, c, transport.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// post issues a POST request with a JSON body and decodes the response into T.
func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, transport.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// put issues a PUT request with a JSON body and decodes the response into T.
func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, transport.Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// do executes req and decodes the JSON response body into T.
func do[T any](ctx context.Context, c *Client, req transport.Request) (T, error) {
	var out T
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &out); err != nil {
			return out, fmt.Errorf("summit: decode response: %w", err)
		}
	}
	return out, nil
}
