package summit

import (
	"context"
	"net/url"
)

// PayrollService generates payroll entries and lists payroll history.
type PayrollService struct {
	client *Client
}

// Generate creates a payroll entry for an employee over a pay period
// (HR/admin only). Optional overrides for overtime hours, overtime type and
// hourly rate are omitted from the request unless set; the backend applies
// its own defaults for missing values.
func (s *PayrollService) Generate(ctx context.Context, req PayrollRequest) (*PayrollResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*PayrollResult](ctx, s.client, "/payroll", req)
}

// Mine lists the caller's payroll entries, newest first.
func (s *PayrollService) Mine(ctx context.Context) ([]PayrollRecord, error) {
	env, err := get[recordsEnvelope[PayrollRecord]](ctx, s.client, "/payroll/me", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// ForEmployee lists one employee's payroll entries, newest first (HR/admin
// only).
func (s *PayrollService) ForEmployee(ctx context.Context, uid string) ([]PayrollRecord, error) {
	env, err := get[recordsEnvelope[PayrollRecord]](ctx, s.client, "/payroll/"+url.PathEscape(uid), nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}
