package summit

import (
	"context"
)

// AttendanceService covers time tracking: clock in/out, listings, and the
// supervisor bulk time-out.
type AttendanceService struct {
	client *Client
}

// TimeIn clocks the caller in for today. The backend rejects a second
// time-in on the same day.
func (s *AttendanceService) TimeIn(ctx context.Context, req TimeInRequest) (*TimeInResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*TimeInResult](ctx, s.client, "/attendance/time-in", req)
}

// TimeOut clocks the caller out and stores the computed hours.
func (s *AttendanceService) TimeOut(ctx context.Context, req TimeOutRequest) (*TimeOutResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*TimeOutResult](ctx, s.client, "/attendance/time-out", req)
}

// Mine lists the caller's attendance records.
func (s *AttendanceService) Mine(ctx context.Context) ([]AttendanceRecord, error) {
	env, err := get[recordsEnvelope[AttendanceRecord]](ctx, s.client, "/attendance/me", nil)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// All lists attendance across employees (admin only). A non-empty date
// (YYYY-MM-DD) narrows the listing to that day; an empty date returns the
// full history.
func (s *AttendanceService) All(ctx context.Context, date string) ([]AttendanceRecord, error) {
	var query map[string]string
	if date != "" {
		query = map[string]string{"date": date}
	}
	env, err := get[recordsEnvelope[AttendanceRecord]](ctx, s.client, "/attendance/all", query)
	if err != nil {
		return nil, err
	}
	return env.Records, nil
}

// BulkTimeOut clocks out every listed employee that has an open time-in on
// the given date (supervisor only). A nil EmployeeUIDs is sent as an empty
// list.
func (s *AttendanceService) BulkTimeOut(ctx context.Context, req BulkTimeOutRequest) (*BulkTimeOutResult, error) {
	if req.EmployeeUIDs == nil {
		req.EmployeeUIDs = []string{}
	}
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return post[*BulkTimeOutResult](ctx, s.client, "/attendance/bulk-timeout", req)
}
