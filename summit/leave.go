package summit

import (
	"context"
	"fmt"
	"net/url"
)

// LeaveService files leave requests and handles supervisor review.
type LeaveService struct {
	client *Client
}

// File submits a leave request for the caller. It starts out Pending.
func (s *LeaveService) File(ctx context.Context, req LeaveRequest) (*SubmitResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*SubmitResult](ctx, s.client, "/leave", req)
}

// Mine lists the caller's leave requests.
func (s *LeaveService) Mine(ctx context.Context) ([]LeaveRecord, error) {
	env, err := get[recordsEnvelope[LeaveRecord]](ctx, s.client, "/leave/me", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// All lists every employee's leave requests, newest first (supervisor only).
func (s *LeaveService) All(ctx context.Context) ([]LeaveRecord, error) {
	env, err := get[recordsEnvelope[LeaveRecord]](ctx, s.client, "/leave/all", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// UpdateStatus approves or rejects a leave request (supervisor only).
// Status must be StatusApproved or StatusRejected. Approval deducts the
// employee's leave balance server-side.
func (s *LeaveService) UpdateStatus(ctx context.Context, uid, leaveID, status string) (*Ack, error) {
	body := reviewStatusUpdate{Status: status}
	if err := validatePayload(body); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/leave/%s/%s/status", url.PathEscape(uid), url.PathEscape(leaveID))
	return put[*Ack](ctx, s.client, path, body)
}
