package summit

import (
	"context"
	"fmt"
	"net/url"
)

// OvertimeService files overtime requests and handles supervisor review.
type OvertimeService struct {
	client *Client
}

// File submits an overtime request for the caller. It starts out Pending.
func (s *OvertimeService) File(ctx context.Context, req OvertimeRequest) (*SubmitResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*SubmitResult](ctx, s.client, "/overtime", req)
}

// Mine lists the caller's overtime requests.
func (s *OvertimeService) Mine(ctx context.Context) ([]OvertimeRecord, error) {
	env, err := get[recordsEnvelope[OvertimeRecord]](ctx, s.client, "/overtime/me", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// All lists every employee's overtime requests, newest first (supervisor
// only).
func (s *OvertimeService) All(ctx context.Context) ([]OvertimeRecord, error) {
	env, err := get[recordsEnvelope[OvertimeRecord]](ctx, s.client, "/overtime/all", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// UpdateStatus approves or rejects an overtime request (supervisor only).
// Status must be StatusApproved or StatusRejected.
func (s *OvertimeService) UpdateStatus(ctx context.Context, uid, overtimeID, status string) (*Ack, error) {
	body := reviewStatusUpdate{Status: status}
	if err := validatePayload(body); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/overtime/%s/%s/status", url.PathEscape(uid), url.PathEscape(overtimeID))
	return put[*Ack](ctx, s.client, path, body)
}
