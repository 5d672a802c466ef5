package summit

import (
	"context"
	"fmt"
	"net/url"
)

// ReportsService submits weekly accomplishment reports and handles manager
// review.
type ReportsService struct {
	client *Client
}

// Submit files a report for the caller. It starts out Pending.
func (s *ReportsService) Submit(ctx context.Context, req ReportRequest) (*SubmitResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*SubmitResult](ctx, s.client, "/reports", req)
}

// Mine lists the caller's reports.
func (s *ReportsService) Mine(ctx context.Context) ([]ReportRecord, error) {
	env, err := get[recordsEnvelope[ReportRecord]](ctx, s.client, "/reports/me", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// All lists every employee's reports, newest first (manager only).
func (s *ReportsService) All(ctx context.Context) ([]ReportRecord, error) {
	env, err := get[recordsEnvelope[ReportRecord]](ctx, s.client, "/reports/all", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// UpdateStatus approves or rejects a report (manager only). Status must
// be StatusApproved or StatusRejected.
func (s *ReportsService) UpdateStatus(ctx context.Context, uid, reportID, status string) (*Ack, error) {
	body := reviewStatusUpdate{Status: status}
	if err := validatePayload(body); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/reports/%s/%s/status", url.PathEscape(uid), url.PathEscape(reportID))
	return put[*Ack](ctx, s.client, path, body)
}
